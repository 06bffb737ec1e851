package client

import (
	"context"
	"fmt"

	corev1 "k8s.io/api/core/v1"

	"github.com/giantswarm/k8sobjects/pkg/config"
	"github.com/giantswarm/k8sobjects/pkg/model"
	"github.com/giantswarm/k8sobjects/pkg/transport"
)

// Secret is the typed client for secret resources.
type Secret struct {
	*ObjectClient
}

// NewSecret builds a typed client for one secret.
func NewSecret(cfg *config.Config, tr transport.Interface, name string) (*Secret, error) {
	oc, err := NewObjectClient(cfg, tr, KindSecret, name)
	if err != nil {
		return nil, err
	}
	return &Secret{ObjectClient: oc}, nil
}

// Document returns the held model as its concrete type.
func (s *Secret) Document() *model.Secret {
	return s.Model().(*model.Secret)
}

// Create creates the secret and re-fetches it so the in-memory document
// reflects server-assigned fields.
func (s *Secret) Create(ctx context.Context) error {
	if err := s.ObjectClient.Create(ctx); err != nil {
		return err
	}
	return s.Get(ctx)
}

// Update replaces the remote document and re-fetches the result.
func (s *Secret) Update(ctx context.Context) error {
	if err := s.ObjectClient.Update(ctx); err != nil {
		return err
	}
	return s.Get(ctx)
}

// List returns typed clients for every secret in the namespace whose name
// contains pattern, in server order.
func (s *Secret) List(ctx context.Context, pattern string) ([]*Secret, error) {
	items, err := s.ObjectClient.List(ctx, pattern)
	if err != nil {
		return nil, err
	}

	out := make([]*Secret, 0, len(items))
	for _, item := range items {
		doc := model.NewSecret()
		if err := model.Decode(item, doc); err != nil {
			return nil, fmt.Errorf("list %s: %w", s.ObjectKind().Name, err)
		}
		obj, err := NewSecret(s.Config(), s.Transport(), doc.Metadata.Name)
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

// Type returns the secret type.
func (s *Secret) Type() corev1.SecretType {
	return s.Document().Type
}

// Data returns the value stored under key, or nil when absent.
func (s *Secret) Data(key string) []byte {
	return s.Document().Data[key]
}

// SetData stores a value under key.
func (s *Secret) SetData(key string, value []byte) {
	doc := s.Document()
	if doc.Data == nil {
		doc.Data = map[string][]byte{}
	}
	doc.Data[key] = value
}
