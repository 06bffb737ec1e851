// Package model contains the wire document models for the resource kinds
// supported by this client.
//
// Every model embeds metav1.TypeMeta and carries metadata, spec, and status
// the way the Kubernetes API serializes them. Spec and status fields use the
// exact k8s.io/api variant for the kind, so assigning the wrong variant is a
// compile error; for documents arriving off the wire, Decode rejects any
// document whose kind tag does not match the target model.
//
// Models are constructed empty with kind and apiVersion defaults and then
// populated from a parsed document. Serialization back to the wire format is
// plain JSON via Marshal.
package model
