package model

import (
	"encoding/json"
	"fmt"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// List is the envelope returned by collection GETs. Items are kept raw so the
// caller decides which document type to decode them into; server ordering is
// preserved.
type List struct {
	metav1.TypeMeta `json:",inline"`
	Metadata        metav1.ListMeta   `json:"metadata,omitempty"`
	Items           []json.RawMessage `json:"items"`
}

// ParseList decodes a collection response body.
func ParseList(data []byte) (*List, error) {
	var list List
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to parse list document: %w", err)
	}
	return &list, nil
}

// ItemMetadata extracts the metadata of a raw list item without decoding the
// full document.
func ItemMetadata(item json.RawMessage) (metav1.ObjectMeta, error) {
	var probe struct {
		Metadata metav1.ObjectMeta `json:"metadata"`
	}
	if err := json.Unmarshal(item, &probe); err != nil {
		return metav1.ObjectMeta{}, fmt.Errorf("failed to parse list item metadata: %w", err)
	}
	return probe.Metadata, nil
}

// ItemName returns the metadata.name of a raw list item, or the empty string
// when the item has no parseable metadata.
func ItemName(item json.RawMessage) string {
	meta, err := ItemMetadata(item)
	if err != nil {
		return ""
	}
	return meta.Name
}
