package client

import (
	"context"
	"fmt"

	appsv1 "k8s.io/api/apps/v1"

	"github.com/giantswarm/k8sobjects/pkg/config"
	"github.com/giantswarm/k8sobjects/pkg/model"
	"github.com/giantswarm/k8sobjects/pkg/transport"
)

// StatefulSet is the typed client for stateful set resources.
type StatefulSet struct {
	*ObjectClient
}

// NewStatefulSet builds a typed client for one stateful set.
func NewStatefulSet(cfg *config.Config, tr transport.Interface, name string) (*StatefulSet, error) {
	oc, err := NewObjectClient(cfg, tr, KindStatefulSet, name)
	if err != nil {
		return nil, err
	}
	return &StatefulSet{ObjectClient: oc}, nil
}

// Document returns the held model as its concrete type.
func (s *StatefulSet) Document() *model.StatefulSet {
	return s.Model().(*model.StatefulSet)
}

// Create creates the stateful set and re-fetches it so the in-memory
// document reflects server-assigned fields.
func (s *StatefulSet) Create(ctx context.Context) error {
	if err := s.ObjectClient.Create(ctx); err != nil {
		return err
	}
	return s.Get(ctx)
}

// Update replaces the remote spec and re-fetches the resulting document.
func (s *StatefulSet) Update(ctx context.Context) error {
	if err := s.ObjectClient.Update(ctx); err != nil {
		return err
	}
	return s.Get(ctx)
}

// List returns typed clients for every stateful set in the namespace whose
// name contains pattern, in server order.
func (s *StatefulSet) List(ctx context.Context, pattern string) ([]*StatefulSet, error) {
	items, err := s.ObjectClient.List(ctx, pattern)
	if err != nil {
		return nil, err
	}

	out := make([]*StatefulSet, 0, len(items))
	for _, item := range items {
		doc := model.NewStatefulSet()
		if err := model.Decode(item, doc); err != nil {
			return nil, fmt.Errorf("list %s: %w", s.ObjectKind().Name, err)
		}
		obj, err := NewStatefulSet(s.Config(), s.Transport(), doc.Metadata.Name)
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

func (s *StatefulSet) spec() *appsv1.StatefulSetSpec {
	doc := s.Document()
	if doc.Spec == nil {
		doc.Spec = &appsv1.StatefulSetSpec{}
	}
	return doc.Spec
}

// Replicas returns the declared replica count, or nil when unset.
func (s *StatefulSet) Replicas() *int32 {
	if s.Document().Spec == nil {
		return nil
	}
	return s.Document().Spec.Replicas
}

// SetReplicas sets the declared replica count.
func (s *StatefulSet) SetReplicas(n int32) {
	s.spec().Replicas = &n
}

// ServiceName returns the governing service name.
func (s *StatefulSet) ServiceName() string {
	if s.Document().Spec == nil {
		return ""
	}
	return s.Document().Spec.ServiceName
}

// SetServiceName sets the governing service name.
func (s *StatefulSet) SetServiceName(name string) {
	s.spec().ServiceName = name
}

// ReadyReplicas returns the observed ready replica count.
func (s *StatefulSet) ReadyReplicas() int32 {
	if s.Document().Status == nil {
		return 0
	}
	return s.Document().Status.ReadyReplicas
}
