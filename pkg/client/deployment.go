package client

import (
	"context"
	"fmt"

	appsv1 "k8s.io/api/apps/v1"

	"github.com/giantswarm/k8sobjects/pkg/config"
	"github.com/giantswarm/k8sobjects/pkg/model"
	"github.com/giantswarm/k8sobjects/pkg/transport"
)

// Deployment is the typed client for deployment resources.
type Deployment struct {
	*ObjectClient
}

// NewDeployment builds a typed client for one deployment.
func NewDeployment(cfg *config.Config, tr transport.Interface, name string) (*Deployment, error) {
	oc, err := NewObjectClient(cfg, tr, KindDeployment, name)
	if err != nil {
		return nil, err
	}
	return &Deployment{ObjectClient: oc}, nil
}

// Document returns the held model as its concrete type.
func (d *Deployment) Document() *model.Deployment {
	return d.Model().(*model.Deployment)
}

// Create creates the deployment and re-fetches it so the in-memory document
// reflects server-assigned fields.
func (d *Deployment) Create(ctx context.Context) error {
	if err := d.ObjectClient.Create(ctx); err != nil {
		return err
	}
	return d.Get(ctx)
}

// Update replaces the remote spec and re-fetches the resulting document.
func (d *Deployment) Update(ctx context.Context) error {
	if err := d.ObjectClient.Update(ctx); err != nil {
		return err
	}
	return d.Get(ctx)
}

// List returns typed clients for every deployment in the namespace whose
// name contains pattern, in server order.
func (d *Deployment) List(ctx context.Context, pattern string) ([]*Deployment, error) {
	items, err := d.ObjectClient.List(ctx, pattern)
	if err != nil {
		return nil, err
	}

	out := make([]*Deployment, 0, len(items))
	for _, item := range items {
		doc := model.NewDeployment()
		if err := model.Decode(item, doc); err != nil {
			return nil, fmt.Errorf("list %s: %w", d.ObjectKind().Name, err)
		}
		obj, err := NewDeployment(d.Config(), d.Transport(), doc.Metadata.Name)
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

func (d *Deployment) spec() *appsv1.DeploymentSpec {
	doc := d.Document()
	if doc.Spec == nil {
		doc.Spec = &appsv1.DeploymentSpec{}
	}
	return doc.Spec
}

// Replicas returns the declared replica count, or nil when unset.
func (d *Deployment) Replicas() *int32 {
	if d.Document().Spec == nil {
		return nil
	}
	return d.Document().Spec.Replicas
}

// SetReplicas sets the declared replica count.
func (d *Deployment) SetReplicas(n int32) {
	d.spec().Replicas = &n
}

// ReadyReplicas returns the observed ready replica count.
func (d *Deployment) ReadyReplicas() int32 {
	if d.Document().Status == nil {
		return 0
	}
	return d.Document().Status.ReadyReplicas
}
