package client

import (
	"fmt"
	"sort"
	"strings"

	"github.com/giantswarm/k8sobjects/pkg/model"
)

// Kind describes a resource kind served by the control plane: its URL
// segment, API group membership, and document-model constructor. Object
// clients are parameterized by a Kind instead of subclassing.
type Kind struct {
	// Name is the kind tag, e.g. "StatefulSet".
	Name string

	// Group is the API group; empty for the core group.
	Group string

	// Version is the API version within the group.
	Version string

	// Path is the plural URL segment, e.g. "statefulsets".
	Path string

	// New constructs an empty document model for this kind.
	New func() model.Object
}

// APIVersion returns the apiVersion tag for the kind.
func (k Kind) APIVersion() string {
	if k.Group == "" {
		return k.Version
	}
	return k.Group + "/" + k.Version
}

// The kinds this client knows how to address.
var (
	KindHorizontalPodAutoscaler = Kind{
		Name:    model.KindHorizontalPodAutoscaler,
		Group:   "autoscaling",
		Version: "v1",
		Path:    "horizontalpodautoscalers",
		New:     func() model.Object { return model.NewHorizontalPodAutoscaler() },
	}

	KindStatefulSet = Kind{
		Name:    model.KindStatefulSet,
		Group:   "apps",
		Version: "v1",
		Path:    "statefulsets",
		New:     func() model.Object { return model.NewStatefulSet() },
	}

	KindDeployment = Kind{
		Name:    model.KindDeployment,
		Group:   "apps",
		Version: "v1",
		Path:    "deployments",
		New:     func() model.Object { return model.NewDeployment() },
	}

	KindReplicationController = Kind{
		Name:    model.KindReplicationController,
		Version: "v1",
		Path:    "replicationcontrollers",
		New:     func() model.Object { return model.NewReplicationController() },
	}

	KindService = Kind{
		Name:    model.KindService,
		Version: "v1",
		Path:    "services",
		New:     func() model.Object { return model.NewService() },
	}

	KindPod = Kind{
		Name:    model.KindPod,
		Version: "v1",
		Path:    "pods",
		New:     func() model.Object { return model.NewPod() },
	}

	KindSecret = Kind{
		Name:    model.KindSecret,
		Version: "v1",
		Path:    "secrets",
		New:     func() model.Object { return model.NewSecret() },
	}
)

// kindAliases maps lower-cased kind names and kubectl-style short names to
// their Kind.
var kindAliases = map[string]Kind{
	"horizontalpodautoscaler":  KindHorizontalPodAutoscaler,
	"horizontalpodautoscalers": KindHorizontalPodAutoscaler,
	"hpa":                      KindHorizontalPodAutoscaler,
	"statefulset":              KindStatefulSet,
	"statefulsets":             KindStatefulSet,
	"sts":                      KindStatefulSet,
	"deployment":               KindDeployment,
	"deployments":              KindDeployment,
	"deploy":                   KindDeployment,
	"replicationcontroller":    KindReplicationController,
	"replicationcontrollers":   KindReplicationController,
	"rc":                       KindReplicationController,
	"service":                  KindService,
	"services":                 KindService,
	"svc":                      KindService,
	"pod":                      KindPod,
	"pods":                     KindPod,
	"po":                       KindPod,
	"secret":                   KindSecret,
	"secrets":                  KindSecret,
}

// Kinds returns every supported kind, ordered by name.
func Kinds() []Kind {
	kinds := []Kind{
		KindDeployment,
		KindHorizontalPodAutoscaler,
		KindPod,
		KindReplicationController,
		KindSecret,
		KindService,
		KindStatefulSet,
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i].Name < kinds[j].Name })
	return kinds
}

// KindFor resolves a kind name or short alias. The lookup is
// case-insensitive.
func KindFor(alias string) (Kind, error) {
	if k, ok := kindAliases[strings.ToLower(alias)]; ok {
		return k, nil
	}

	valid := make([]string, 0, len(kindAliases))
	for _, k := range Kinds() {
		valid = append(valid, k.Name)
	}
	return Kind{}, fmt.Errorf("unknown resource kind %q (valid kinds: %s)", alias, strings.Join(valid, ", "))
}
