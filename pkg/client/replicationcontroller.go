package client

import (
	"context"
	"fmt"

	corev1 "k8s.io/api/core/v1"

	"github.com/giantswarm/k8sobjects/pkg/config"
	"github.com/giantswarm/k8sobjects/pkg/model"
	"github.com/giantswarm/k8sobjects/pkg/transport"
)

// ReplicationController is the typed client for replication controller
// resources.
type ReplicationController struct {
	*ObjectClient
}

// NewReplicationController builds a typed client for one replication
// controller.
func NewReplicationController(cfg *config.Config, tr transport.Interface, name string) (*ReplicationController, error) {
	oc, err := NewObjectClient(cfg, tr, KindReplicationController, name)
	if err != nil {
		return nil, err
	}
	return &ReplicationController{ObjectClient: oc}, nil
}

// Document returns the held model as its concrete type.
func (r *ReplicationController) Document() *model.ReplicationController {
	return r.Model().(*model.ReplicationController)
}

// Create creates the replication controller and re-fetches it so the
// in-memory document reflects server-assigned fields.
func (r *ReplicationController) Create(ctx context.Context) error {
	if err := r.ObjectClient.Create(ctx); err != nil {
		return err
	}
	return r.Get(ctx)
}

// Update replaces the remote spec and re-fetches the resulting document.
func (r *ReplicationController) Update(ctx context.Context) error {
	if err := r.ObjectClient.Update(ctx); err != nil {
		return err
	}
	return r.Get(ctx)
}

// List returns typed clients for every replication controller in the
// namespace whose name contains pattern, in server order.
func (r *ReplicationController) List(ctx context.Context, pattern string) ([]*ReplicationController, error) {
	items, err := r.ObjectClient.List(ctx, pattern)
	if err != nil {
		return nil, err
	}

	out := make([]*ReplicationController, 0, len(items))
	for _, item := range items {
		doc := model.NewReplicationController()
		if err := model.Decode(item, doc); err != nil {
			return nil, fmt.Errorf("list %s: %w", r.ObjectKind().Name, err)
		}
		obj, err := NewReplicationController(r.Config(), r.Transport(), doc.Metadata.Name)
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

func (r *ReplicationController) spec() *corev1.ReplicationControllerSpec {
	doc := r.Document()
	if doc.Spec == nil {
		doc.Spec = &corev1.ReplicationControllerSpec{}
	}
	return doc.Spec
}

// Replicas returns the declared replica count, or nil when unset.
func (r *ReplicationController) Replicas() *int32 {
	if r.Document().Spec == nil {
		return nil
	}
	return r.Document().Spec.Replicas
}

// SetReplicas sets the declared replica count.
func (r *ReplicationController) SetReplicas(n int32) {
	r.spec().Replicas = &n
}

// ReadyReplicas returns the observed ready replica count.
func (r *ReplicationController) ReadyReplicas() int32 {
	if r.Document().Status == nil {
		return 0
	}
	return r.Document().Status.ReadyReplicas
}
