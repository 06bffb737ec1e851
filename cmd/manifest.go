package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/yaml"

	"github.com/giantswarm/k8sobjects/pkg/client"
	"github.com/giantswarm/k8sobjects/pkg/model"
)

// loadManifest reads a YAML or JSON manifest file and decodes it into the
// document model matching its kind tag.
func loadManifest(path string) (client.Kind, model.Object, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return client.Kind{}, nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return parseManifest(raw)
}

func parseManifest(raw []byte) (client.Kind, model.Object, error) {
	data, err := yaml.YAMLToJSON(raw)
	if err != nil {
		return client.Kind{}, nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	var tm metav1.TypeMeta
	if err := json.Unmarshal(data, &tm); err != nil {
		return client.Kind{}, nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	if tm.Kind == "" {
		return client.Kind{}, nil, fmt.Errorf("manifest has no kind")
	}

	kind, err := client.KindFor(tm.Kind)
	if err != nil {
		return client.Kind{}, nil, err
	}

	obj := kind.New()
	if err := model.Decode(data, obj); err != nil {
		return client.Kind{}, nil, err
	}
	if obj.GetMetadata().Name == "" {
		return client.Kind{}, nil, fmt.Errorf("manifest has no metadata.name")
	}
	return kind, obj, nil
}
