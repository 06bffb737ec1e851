package instrumentation

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracerName is the default tracer name for the k8sobjects package.
const TracerName = "github.com/giantswarm/k8sobjects"

// Span attribute keys for control plane requests.
const (
	// SpanAttrMethod is the HTTP verb of the request.
	SpanAttrMethod = "http.request.method"

	// SpanAttrPath is the resource path of the request.
	SpanAttrPath = "url.path"

	// SpanAttrStatusCode is the HTTP status of the response.
	SpanAttrStatusCode = "http.response.status_code"

	// SpanAttrNamespace is the Kubernetes namespace.
	SpanAttrNamespace = "k8s.namespace"

	// SpanAttrResourceType is the Kubernetes resource kind.
	SpanAttrResourceType = "k8s.resource_type"

	// SpanAttrOperation is the lifecycle operation (get, list, create, ...).
	SpanAttrOperation = "k8s.operation"
)

// SpanAttributeBuilder helps construct span attributes with consistent
// naming.
type SpanAttributeBuilder struct {
	attrs []attribute.KeyValue
}

// NewSpanAttributeBuilder creates a new SpanAttributeBuilder.
func NewSpanAttributeBuilder() *SpanAttributeBuilder {
	return &SpanAttributeBuilder{
		attrs: make([]attribute.KeyValue, 0, 6),
	}
}

// WithRequest adds the HTTP method and path attributes.
func (b *SpanAttributeBuilder) WithRequest(method, path string) *SpanAttributeBuilder {
	b.attrs = append(b.attrs,
		attribute.String(SpanAttrMethod, method),
		attribute.String(SpanAttrPath, path),
	)
	return b
}

// WithStatusCode adds the response status attribute.
func (b *SpanAttributeBuilder) WithStatusCode(statusCode int) *SpanAttributeBuilder {
	b.attrs = append(b.attrs, attribute.Int(SpanAttrStatusCode, statusCode))
	return b
}

// WithNamespace adds the Kubernetes namespace attribute when non-empty.
func (b *SpanAttributeBuilder) WithNamespace(namespace string) *SpanAttributeBuilder {
	if namespace != "" {
		b.attrs = append(b.attrs, attribute.String(SpanAttrNamespace, namespace))
	}
	return b
}

// WithOperation adds operation and resource kind attributes.
func (b *SpanAttributeBuilder) WithOperation(operation, resourceType string) *SpanAttributeBuilder {
	if operation != "" {
		b.attrs = append(b.attrs, attribute.String(SpanAttrOperation, operation))
	}
	if resourceType != "" {
		b.attrs = append(b.attrs, attribute.String(SpanAttrResourceType, resourceType))
	}
	return b
}

// Build returns the accumulated attributes.
func (b *SpanAttributeBuilder) Build() []attribute.KeyValue {
	return b.attrs
}

// RecordSpanError marks a span as failed and records the error on it.
func RecordSpanError(span trace.Span, err error) {
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
