package model

import (
	"encoding/json"
	"fmt"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// KindDeleteOptions is the kind tag for the delete-options payload.
const KindDeleteOptions = "DeleteOptions"

// NewDeleteOptions returns the standard payload sent with DELETE calls.
func NewDeleteOptions() *metav1.DeleteOptions {
	return &metav1.DeleteOptions{
		TypeMeta: metav1.TypeMeta{
			Kind:       KindDeleteOptions,
			APIVersion: APIVersionCore,
		},
	}
}

// MarshalDeleteOptions serializes the delete-options payload.
func MarshalDeleteOptions(opts *metav1.DeleteOptions) ([]byte, error) {
	data, err := json.Marshal(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize delete options: %w", err)
	}
	return data, nil
}
