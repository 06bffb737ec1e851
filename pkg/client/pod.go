package client

import (
	"context"
	"fmt"

	corev1 "k8s.io/api/core/v1"

	"github.com/giantswarm/k8sobjects/pkg/config"
	"github.com/giantswarm/k8sobjects/pkg/model"
	"github.com/giantswarm/k8sobjects/pkg/transport"
)

// Pod is the typed client for pod resources.
type Pod struct {
	*ObjectClient
}

// NewPod builds a typed client for one pod.
func NewPod(cfg *config.Config, tr transport.Interface, name string) (*Pod, error) {
	oc, err := NewObjectClient(cfg, tr, KindPod, name)
	if err != nil {
		return nil, err
	}
	return &Pod{ObjectClient: oc}, nil
}

// Document returns the held model as its concrete type.
func (p *Pod) Document() *model.Pod {
	return p.Model().(*model.Pod)
}

// Create creates the pod and re-fetches it so the in-memory document
// reflects server-assigned fields.
func (p *Pod) Create(ctx context.Context) error {
	if err := p.ObjectClient.Create(ctx); err != nil {
		return err
	}
	return p.Get(ctx)
}

// Update replaces the remote spec and re-fetches the resulting document.
func (p *Pod) Update(ctx context.Context) error {
	if err := p.ObjectClient.Update(ctx); err != nil {
		return err
	}
	return p.Get(ctx)
}

// List returns typed clients for every pod in the namespace whose name
// contains pattern, in server order.
func (p *Pod) List(ctx context.Context, pattern string) ([]*Pod, error) {
	items, err := p.ObjectClient.List(ctx, pattern)
	if err != nil {
		return nil, err
	}

	out := make([]*Pod, 0, len(items))
	for _, item := range items {
		doc := model.NewPod()
		if err := model.Decode(item, doc); err != nil {
			return nil, fmt.Errorf("list %s: %w", p.ObjectKind().Name, err)
		}
		obj, err := NewPod(p.Config(), p.Transport(), doc.Metadata.Name)
		if err != nil {
			return nil, err
		}
		if err := obj.SetModel(doc); err != nil {
			return nil, err
		}
		out = append(out, obj)
	}
	return out, nil
}

func (p *Pod) spec() *corev1.PodSpec {
	doc := p.Document()
	if doc.Spec == nil {
		doc.Spec = &corev1.PodSpec{}
	}
	return doc.Spec
}

// AddContainer appends a container to the pod spec.
func (p *Pod) AddContainer(container corev1.Container) {
	spec := p.spec()
	spec.Containers = append(spec.Containers, container)
}

// Containers returns the declared containers.
func (p *Pod) Containers() []corev1.Container {
	if p.Document().Spec == nil {
		return nil
	}
	return p.Document().Spec.Containers
}

// Phase returns the observed pod phase, or the empty string before the
// status is reported.
func (p *Pod) Phase() corev1.PodPhase {
	if p.Document().Status == nil {
		return ""
	}
	return p.Document().Status.Phase
}
