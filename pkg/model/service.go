package model

import (
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// KindService is the kind tag for service documents.
const KindService = "Service"

// Service is the wire document for a service resource.
type Service struct {
	metav1.TypeMeta `json:",inline"`
	Metadata        metav1.ObjectMeta     `json:"metadata,omitempty"`
	Spec            *corev1.ServiceSpec   `json:"spec,omitempty"`
	Status          *corev1.ServiceStatus `json:"status,omitempty"`
}

// NewService returns an empty service document with its type tags set.
func NewService() *Service {
	return &Service{
		TypeMeta: metav1.TypeMeta{
			Kind:       KindService,
			APIVersion: APIVersionCore,
		},
	}
}

// GetKind implements Object.
func (s *Service) GetKind() string { return s.Kind }

// GetAPIVersion implements Object.
func (s *Service) GetAPIVersion() string { return s.APIVersion }

// GetMetadata implements Object.
func (s *Service) GetMetadata() *metav1.ObjectMeta { return &s.Metadata }
