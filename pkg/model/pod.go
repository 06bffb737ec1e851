package model

import (
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// KindPod is the kind tag for pod documents.
const KindPod = "Pod"

// Pod is the wire document for a pod resource.
type Pod struct {
	metav1.TypeMeta `json:",inline"`
	Metadata        metav1.ObjectMeta `json:"metadata,omitempty"`
	Spec            *corev1.PodSpec   `json:"spec,omitempty"`
	Status          *corev1.PodStatus `json:"status,omitempty"`
}

// NewPod returns an empty pod document with its type tags set.
func NewPod() *Pod {
	return &Pod{
		TypeMeta: metav1.TypeMeta{
			Kind:       KindPod,
			APIVersion: APIVersionCore,
		},
	}
}

// GetKind implements Object.
func (p *Pod) GetKind() string { return p.Kind }

// GetAPIVersion implements Object.
func (p *Pod) GetAPIVersion() string { return p.APIVersion }

// GetMetadata implements Object.
func (p *Pod) GetMetadata() *metav1.ObjectMeta { return &p.Metadata }
