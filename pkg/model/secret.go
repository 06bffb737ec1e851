package model

import (
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// KindSecret is the kind tag for secret documents.
const KindSecret = "Secret"

// Secret is the wire document for a secret resource. Secrets carry no
// spec/status split; data lives directly on the document.
type Secret struct {
	metav1.TypeMeta `json:",inline"`
	Metadata        metav1.ObjectMeta `json:"metadata,omitempty"`
	Data            map[string][]byte `json:"data,omitempty"`
	StringData      map[string]string `json:"stringData,omitempty"`
	Type            corev1.SecretType `json:"type,omitempty"`
}

// NewSecret returns an empty secret document with its type tags set.
func NewSecret() *Secret {
	return &Secret{
		TypeMeta: metav1.TypeMeta{
			Kind:       KindSecret,
			APIVersion: APIVersionCore,
		},
		Type: corev1.SecretTypeOpaque,
	}
}

// GetKind implements Object.
func (s *Secret) GetKind() string { return s.Kind }

// GetAPIVersion implements Object.
func (s *Secret) GetAPIVersion() string { return s.APIVersion }

// GetMetadata implements Object.
func (s *Secret) GetMetadata() *metav1.ObjectMeta { return &s.Metadata }
