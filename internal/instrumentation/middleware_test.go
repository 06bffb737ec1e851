package instrumentation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tracecodes "go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/giantswarm/k8sobjects/pkg/transport"
)

type stubTransport struct {
	requests []transport.Request
	response transport.Response
	err      error
}

func (s *stubTransport) Do(_ context.Context, req transport.Request) (transport.Response, error) {
	s.requests = append(s.requests, req)
	return s.response, s.err
}

// testProvider builds an enabled Provider backed by in-memory recorders.
func testProvider(t *testing.T) (*Provider, *tracetest.SpanRecorder, *sdkmetric.ManualReader) {
	t.Helper()

	reader := sdkmetric.NewManualReader()
	meterProvider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = meterProvider.Shutdown(context.Background()) })

	metrics, err := NewMetrics(meterProvider.Meter("test"))
	require.NoError(t, err)

	recorder := tracetest.NewSpanRecorder()
	tracerProvider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = tracerProvider.Shutdown(context.Background()) })

	p := &Provider{
		enabled: true,
		metrics: metrics,
		tracer:  tracerProvider.Tracer(TracerName),
	}
	return p, recorder, reader
}

func TestMiddlewareDisabledPassthrough(t *testing.T) {
	next := &stubTransport{response: transport.Response{StatusCode: 200}}
	mw := NewMiddleware(next, nil)

	resp, err := mw.Do(context.Background(), transport.Request{Method: "GET", Path: "/api/v1/namespaces/default/pods"})
	require.NoError(t, err)

	assert.Equal(t, 200, resp.StatusCode)
	assert.Len(t, next.requests, 1)
}

func TestMiddlewareRecordsSpanAndMetrics(t *testing.T) {
	provider, recorder, reader := testProvider(t)
	next := &stubTransport{response: transport.Response{StatusCode: 200}}
	mw := NewMiddleware(next, provider)

	_, err := mw.Do(context.Background(), transport.Request{Method: "GET", Path: "/api/v1/namespaces/default/pods/web"})
	require.NoError(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "GET /api/v1/namespaces/default/pods/web", spans[0].Name())

	foundStatus := false
	for _, attr := range spans[0].Attributes() {
		if string(attr.Key) == SpanAttrStatusCode {
			foundStatus = true
			assert.Equal(t, int64(200), attr.Value.AsInt64())
		}
	}
	assert.True(t, foundStatus, "expected status code span attribute")

	collected := collectMetrics(t, reader)
	assert.Contains(t, collected, "k8s_client_requests_total")
}

func TestMiddlewareRecordsTransportError(t *testing.T) {
	provider, recorder, _ := testProvider(t)
	next := &stubTransport{err: errors.New("connection refused")}
	mw := NewMiddleware(next, provider)

	_, err := mw.Do(context.Background(), transport.Request{Method: "GET", Path: "/api/v1/namespaces/default/pods"})
	require.Error(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, tracecodes.Error, spans[0].Status().Code)
}
