package model

import (
	appsv1 "k8s.io/api/apps/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// KindDeployment is the kind tag for deployment documents.
const KindDeployment = "Deployment"

// Deployment is the wire document for a deployment resource.
type Deployment struct {
	metav1.TypeMeta `json:",inline"`
	Metadata        metav1.ObjectMeta        `json:"metadata,omitempty"`
	Spec            *appsv1.DeploymentSpec   `json:"spec,omitempty"`
	Status          *appsv1.DeploymentStatus `json:"status,omitempty"`
}

// NewDeployment returns an empty deployment document with its type tags set.
func NewDeployment() *Deployment {
	return &Deployment{
		TypeMeta: metav1.TypeMeta{
			Kind:       KindDeployment,
			APIVersion: APIVersionApps,
		},
	}
}

// GetKind implements Object.
func (d *Deployment) GetKind() string { return d.Kind }

// GetAPIVersion implements Object.
func (d *Deployment) GetAPIVersion() string { return d.APIVersion }

// GetMetadata implements Object.
func (d *Deployment) GetMetadata() *metav1.ObjectMeta { return &d.Metadata }
