package client

import (
	"context"
	"fmt"

	corev1 "k8s.io/api/core/v1"

	"github.com/giantswarm/k8sobjects/pkg/config"
	"github.com/giantswarm/k8sobjects/pkg/model"
	"github.com/giantswarm/k8sobjects/pkg/transport"
)

// Service is the typed client for service resources.
type Service struct {
	*ObjectClient
}

// NewService builds a typed client for one service.
func NewService(cfg *config.Config, tr transport.Interface, name string) (*Service, error) {
	oc, err := NewObjectClient(cfg, tr, KindService, name)
	if err != nil {
		return nil, err
	}
	return &Service{ObjectClient: oc}, nil
}

// Document returns the held model as its concrete type.
func (s *Service) Document() *model.Service {
	return s.Model().(*model.Service)
}

// Create creates the service and re-fetches it so the in-memory document
// reflects server-assigned fields such as the cluster IP.
func (s *Service) Create(ctx context.Context) error {
	if err := s.ObjectClient.Create(ctx); err != nil {
		return err
	}
	return s.Get(ctx)
}

// Update replaces the remote spec and re-fetches the resulting document.
func (s *Service) Update(ctx context.Context) error {
	if err := s.ObjectClient.Update(ctx); err != nil {
		return err
	}
	return s.Get(ctx)
}

// List returns typed clients for every service in the namespace whose name
// contains pattern, in server order.
func (s *Service) List(ctx context.Context, pattern string) ([]*Service, error) {
	items, err := s.ObjectClient.List(ctx, pattern)
	if err != nil {
		return nil, err
	}

	out := make([]*Service, 0, len(items))
	for _, item := range items {
		doc := model.NewService()
		if err := model.Decode(item, doc); err != nil {
			return nil, fmt.Errorf("list %s: %w", s.ObjectKind().Name, err)
		}
		obj, err := NewService(s.Config(), s.Transport(), doc.Metadata.Name)
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

func (s *Service) spec() *corev1.ServiceSpec {
	doc := s.Document()
	if doc.Spec == nil {
		doc.Spec = &corev1.ServiceSpec{}
	}
	return doc.Spec
}

// Type returns the declared service type.
func (s *Service) Type() corev1.ServiceType {
	if s.Document().Spec == nil {
		return ""
	}
	return s.Document().Spec.Type
}

// SetType sets the service type.
func (s *Service) SetType(t corev1.ServiceType) {
	s.spec().Type = t
}

// Ports returns the declared service ports.
func (s *Service) Ports() []corev1.ServicePort {
	if s.Document().Spec == nil {
		return nil
	}
	return s.Document().Spec.Ports
}

// AddPort appends a service port to the spec.
func (s *Service) AddPort(port corev1.ServicePort) {
	spec := s.spec()
	spec.Ports = append(spec.Ports, port)
}

// Selector returns the pod selector.
func (s *Service) Selector() map[string]string {
	if s.Document().Spec == nil {
		return nil
	}
	return s.Document().Spec.Selector
}

// SetSelector sets the pod selector.
func (s *Service) SetSelector(selector map[string]string) {
	s.spec().Selector = selector
}

// ClusterIP returns the server-assigned cluster IP, populated after create.
func (s *Service) ClusterIP() string {
	if s.Document().Spec == nil {
		return ""
	}
	return s.Document().Spec.ClusterIP
}
