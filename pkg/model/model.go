package model

import (
	"encoding/json"
	"errors"
	"fmt"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// ErrKindMismatch indicates that a wire document carried a kind tag that does
// not match the model it was decoded into. Check with errors.Is().
var ErrKindMismatch = errors.New("document kind mismatch")

// Object is implemented by every document model in this package.
type Object interface {
	// GetKind returns the resource kind tag of the document.
	GetKind() string

	// GetAPIVersion returns the apiVersion tag of the document.
	GetAPIVersion() string

	// GetMetadata returns a mutable reference to the document metadata.
	GetMetadata() *metav1.ObjectMeta
}

// KindMismatchError provides context about a rejected document.
type KindMismatchError struct {
	Expected string
	Got      string
}

// Error implements the error interface.
func (e *KindMismatchError) Error() string {
	return fmt.Sprintf("expected document of kind %q, got %q", e.Expected, e.Got)
}

// Unwrap returns the underlying sentinel error for use with errors.Is().
func (e *KindMismatchError) Unwrap() error {
	return ErrKindMismatch
}

// Marshal serializes a document model back to its wire representation.
func Marshal(obj Object) ([]byte, error) {
	data, err := json.Marshal(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize %s document: %w", obj.GetKind(), err)
	}
	return data, nil
}

// Decode populates a document model from a parsed wire document.
//
// The document's kind tag is validated against the target model before any
// fields are populated; a mismatch fails with a KindMismatchError and leaves
// the target untouched. A document without a kind tag is accepted, matching
// the API server's behavior for sub-documents.
func Decode(data []byte, into Object) error {
	var tm metav1.TypeMeta
	if err := json.Unmarshal(data, &tm); err != nil {
		return fmt.Errorf("failed to parse document type tags: %w", err)
	}
	if tm.Kind != "" && tm.Kind != into.GetKind() {
		return &KindMismatchError{Expected: into.GetKind(), Got: tm.Kind}
	}
	if err := json.Unmarshal(data, into); err != nil {
		return fmt.Errorf("failed to decode %s document: %w", into.GetKind(), err)
	}
	return nil
}
