package model

import (
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// KindReplicationController is the kind tag for replication controller documents.
const KindReplicationController = "ReplicationController"

// APIVersionCore is the apiVersion tag for core group documents.
const APIVersionCore = "v1"

// ReplicationController is the wire document for a replication controller
// resource.
type ReplicationController struct {
	metav1.TypeMeta `json:",inline"`
	Metadata        metav1.ObjectMeta                   `json:"metadata,omitempty"`
	Spec            *corev1.ReplicationControllerSpec   `json:"spec,omitempty"`
	Status          *corev1.ReplicationControllerStatus `json:"status,omitempty"`
}

// NewReplicationController returns an empty replication controller document
// with its type tags set.
func NewReplicationController() *ReplicationController {
	return &ReplicationController{
		TypeMeta: metav1.TypeMeta{
			Kind:       KindReplicationController,
			APIVersion: APIVersionCore,
		},
	}
}

// GetKind implements Object.
func (r *ReplicationController) GetKind() string { return r.Kind }

// GetAPIVersion implements Object.
func (r *ReplicationController) GetAPIVersion() string { return r.APIVersion }

// GetMetadata implements Object.
func (r *ReplicationController) GetMetadata() *metav1.ObjectMeta { return &r.Metadata }
