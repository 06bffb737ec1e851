package instrumentation

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric attribute keys. Resource names never appear here: they are
// unbounded and would blow up series cardinality.
const (
	attrMethod = "method"
	attrStatus = "status"
)

// statusTransportError is the status label recorded when a request failed
// below the HTTP layer and no status code exists.
const statusTransportError = "transport_error"

// Metrics provides methods for recording client request metrics.
type Metrics struct {
	requestsTotal   metric.Int64Counter
	requestDuration metric.Float64Histogram
}

// NewMetrics creates a Metrics instance with all instruments initialized.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	m := &Metrics{}

	var err error

	m.requestsTotal, err = meter.Int64Counter(
		"k8s_client_requests_total",
		metric.WithDescription("Total number of requests sent to the control plane"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create k8s_client_requests_total counter: %w", err)
	}

	m.requestDuration, err = meter.Float64Histogram(
		"k8s_client_request_duration_seconds",
		metric.WithDescription("Control plane request duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.001, 0.01, 0.1, 0.5, 1.0, 2.5, 5.0, 10.0),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create k8s_client_request_duration_seconds histogram: %w", err)
	}

	return m, nil
}

// RecordRequest records one control plane request. A statusCode of zero
// marks a transport-level failure.
func (m *Metrics) RecordRequest(ctx context.Context, method string, statusCode int, duration time.Duration) {
	if m == nil || m.requestsTotal == nil || m.requestDuration == nil {
		return
	}

	status := statusTransportError
	if statusCode > 0 {
		status = strconv.Itoa(statusCode)
	}

	attrs := metric.WithAttributes(
		attribute.String(attrMethod, method),
		attribute.String(attrStatus, status),
	)

	m.requestsTotal.Add(ctx, 1, attrs)
	m.requestDuration.Record(ctx, duration.Seconds(), attrs)
}
