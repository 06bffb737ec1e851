package model

import (
	appsv1 "k8s.io/api/apps/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// KindStatefulSet is the kind tag for stateful set documents.
const KindStatefulSet = "StatefulSet"

// APIVersionApps is the apiVersion tag for the apps group documents.
const APIVersionApps = "apps/v1"

// StatefulSet is the wire document for a stateful set resource.
type StatefulSet struct {
	metav1.TypeMeta `json:",inline"`
	Metadata        metav1.ObjectMeta         `json:"metadata,omitempty"`
	Spec            *appsv1.StatefulSetSpec   `json:"spec,omitempty"`
	Status          *appsv1.StatefulSetStatus `json:"status,omitempty"`
}

// NewStatefulSet returns an empty stateful set document with its type tags set.
func NewStatefulSet() *StatefulSet {
	return &StatefulSet{
		TypeMeta: metav1.TypeMeta{
			Kind:       KindStatefulSet,
			APIVersion: APIVersionApps,
		},
	}
}

// GetKind implements Object.
func (s *StatefulSet) GetKind() string { return s.Kind }

// GetAPIVersion implements Object.
func (s *StatefulSet) GetAPIVersion() string { return s.APIVersion }

// GetMetadata implements Object.
func (s *StatefulSet) GetMetadata() *metav1.ObjectMeta { return &s.Metadata }
