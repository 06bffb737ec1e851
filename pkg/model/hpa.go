package model

import (
	autoscalingv1 "k8s.io/api/autoscaling/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// KindHorizontalPodAutoscaler is the kind tag for autoscaler documents.
const KindHorizontalPodAutoscaler = "HorizontalPodAutoscaler"

// APIVersionAutoscaling is the apiVersion tag for autoscaler documents.
const APIVersionAutoscaling = "autoscaling/v1"

// HorizontalPodAutoscaler is the wire document for an autoscaler resource.
// It only declares the desired scaling bounds; the scaling loop itself runs
// in the control plane.
type HorizontalPodAutoscaler struct {
	metav1.TypeMeta `json:",inline"`
	Metadata        metav1.ObjectMeta                            `json:"metadata,omitempty"`
	Spec            *autoscalingv1.HorizontalPodAutoscalerSpec   `json:"spec,omitempty"`
	Status          *autoscalingv1.HorizontalPodAutoscalerStatus `json:"status,omitempty"`
}

// NewHorizontalPodAutoscaler returns an empty autoscaler document with its
// type tags set.
func NewHorizontalPodAutoscaler() *HorizontalPodAutoscaler {
	return &HorizontalPodAutoscaler{
		TypeMeta: metav1.TypeMeta{
			Kind:       KindHorizontalPodAutoscaler,
			APIVersion: APIVersionAutoscaling,
		},
	}
}

// GetKind implements Object.
func (h *HorizontalPodAutoscaler) GetKind() string { return h.Kind }

// GetAPIVersion implements Object.
func (h *HorizontalPodAutoscaler) GetAPIVersion() string { return h.APIVersion }

// GetMetadata implements Object.
func (h *HorizontalPodAutoscaler) GetMetadata() *metav1.ObjectMeta { return &h.Metadata }
