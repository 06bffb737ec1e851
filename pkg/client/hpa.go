package client

import (
	"context"
	"fmt"

	autoscalingv1 "k8s.io/api/autoscaling/v1"

	"github.com/giantswarm/k8sobjects/pkg/config"
	"github.com/giantswarm/k8sobjects/pkg/model"
	"github.com/giantswarm/k8sobjects/pkg/transport"
)

// HorizontalPodAutoscaler manipulates the declared spec of a remote
// autoscaler. The scaling loop itself runs in the control plane; this client
// only reads and writes the resource document.
type HorizontalPodAutoscaler struct {
	*ObjectClient
}

// NewHorizontalPodAutoscaler builds a typed client for one autoscaler.
func NewHorizontalPodAutoscaler(cfg *config.Config, tr transport.Interface, name string) (*HorizontalPodAutoscaler, error) {
	oc, err := NewObjectClient(cfg, tr, KindHorizontalPodAutoscaler, name)
	if err != nil {
		return nil, err
	}
	return &HorizontalPodAutoscaler{ObjectClient: oc}, nil
}

// Document returns the held model as its concrete type.
func (h *HorizontalPodAutoscaler) Document() *model.HorizontalPodAutoscaler {
	return h.Model().(*model.HorizontalPodAutoscaler)
}

// Create creates the autoscaler and re-fetches it so the in-memory document
// reflects server-assigned fields.
func (h *HorizontalPodAutoscaler) Create(ctx context.Context) error {
	if err := h.ObjectClient.Create(ctx); err != nil {
		return err
	}
	return h.Get(ctx)
}

// Update replaces the remote spec and re-fetches the resulting document.
func (h *HorizontalPodAutoscaler) Update(ctx context.Context) error {
	if err := h.ObjectClient.Update(ctx); err != nil {
		return err
	}
	return h.Get(ctx)
}

// List returns typed clients for every autoscaler in the namespace whose
// name contains pattern (all of them when pattern is empty), in server order.
func (h *HorizontalPodAutoscaler) List(ctx context.Context, pattern string) ([]*HorizontalPodAutoscaler, error) {
	items, err := h.ObjectClient.List(ctx, pattern)
	if err != nil {
		return nil, err
	}

	out := make([]*HorizontalPodAutoscaler, 0, len(items))
	for _, item := range items {
		doc := model.NewHorizontalPodAutoscaler()
		if err := model.Decode(item, doc); err != nil {
			return nil, fmt.Errorf("list %s: %w", h.ObjectKind().Name, err)
		}
		obj, err := NewHorizontalPodAutoscaler(h.Config(), h.Transport(), doc.Metadata.Name)
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

// spec returns the document spec, allocating it on first use so the setters
// work on an empty document.
func (h *HorizontalPodAutoscaler) spec() *autoscalingv1.HorizontalPodAutoscalerSpec {
	doc := h.Document()
	if doc.Spec == nil {
		doc.Spec = &autoscalingv1.HorizontalPodAutoscalerSpec{}
	}
	return doc.Spec
}

// MinReplicas returns the declared lower scaling bound, or nil when unset.
func (h *HorizontalPodAutoscaler) MinReplicas() *int32 {
	if h.Document().Spec == nil {
		return nil
	}
	return h.Document().Spec.MinReplicas
}

// SetMinReplicas sets the lower scaling bound.
func (h *HorizontalPodAutoscaler) SetMinReplicas(n int32) {
	h.spec().MinReplicas = &n
}

// MaxReplicas returns the declared upper scaling bound.
func (h *HorizontalPodAutoscaler) MaxReplicas() int32 {
	if h.Document().Spec == nil {
		return 0
	}
	return h.Document().Spec.MaxReplicas
}

// SetMaxReplicas sets the upper scaling bound.
func (h *HorizontalPodAutoscaler) SetMaxReplicas(n int32) {
	h.spec().MaxReplicas = n
}

// TargetCPUUtilization returns the CPU utilization target percentage, or nil
// when unset.
func (h *HorizontalPodAutoscaler) TargetCPUUtilization() *int32 {
	if h.Document().Spec == nil {
		return nil
	}
	return h.Document().Spec.TargetCPUUtilizationPercentage
}

// SetTargetCPUUtilization sets the CPU utilization target percentage.
func (h *HorizontalPodAutoscaler) SetTargetCPUUtilization(pct int32) {
	h.spec().TargetCPUUtilizationPercentage = &pct
}

// ScaleTargetRef returns the workload the autoscaler acts on.
func (h *HorizontalPodAutoscaler) ScaleTargetRef() autoscalingv1.CrossVersionObjectReference {
	if h.Document().Spec == nil {
		return autoscalingv1.CrossVersionObjectReference{}
	}
	return h.Document().Spec.ScaleTargetRef
}

// SetScaleTargetRef sets the workload the autoscaler acts on.
func (h *HorizontalPodAutoscaler) SetScaleTargetRef(ref autoscalingv1.CrossVersionObjectReference) {
	h.spec().ScaleTargetRef = ref
}

// CurrentReplicas returns the observed replica count from status, or zero
// when the status has not been reported yet.
func (h *HorizontalPodAutoscaler) CurrentReplicas() int32 {
	if h.Document().Status == nil {
		return 0
	}
	return h.Document().Status.CurrentReplicas
}
