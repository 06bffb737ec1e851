package instrumentation

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/giantswarm/k8sobjects/pkg/transport"
)

// Middleware wraps a transport and records a span and request metrics for
// every round trip.
type Middleware struct {
	next     transport.Interface
	provider *Provider
}

// NewMiddleware decorates next with telemetry. When the provider is disabled
// the middleware is a passthrough.
func NewMiddleware(next transport.Interface, provider *Provider) *Middleware {
	return &Middleware{next: next, provider: provider}
}

func (m *Middleware) Do(ctx context.Context, req transport.Request) (transport.Response, error) {
	if !m.provider.Enabled() {
		return m.next.Do(ctx, req)
	}

	ctx, span := m.provider.Tracer().Start(ctx,
		fmt.Sprintf("%s %s", req.Method, req.Path),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(NewSpanAttributeBuilder().WithRequest(req.Method, req.Path).Build()...),
	)
	defer span.End()

	start := time.Now()
	resp, err := m.next.Do(ctx, req)
	duration := time.Since(start)

	if err != nil {
		RecordSpanError(span, err)
		m.provider.Metrics().RecordRequest(ctx, req.Method, 0, duration)
		return resp, err
	}

	span.SetAttributes(NewSpanAttributeBuilder().WithStatusCode(resp.StatusCode).Build()...)
	m.provider.Metrics().RecordRequest(ctx, req.Method, resp.StatusCode, duration)
	return resp, nil
}
