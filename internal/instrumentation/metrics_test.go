package instrumentation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// collectMetrics flushes the manual reader and returns all recorded metrics.
func collectMetrics(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Metrics {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	out := map[string]metricdata.Metrics{}
	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			out[m.Name] = m
		}
	}
	return out
}

func TestRecordRequest(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer provider.Shutdown(context.Background())

	metrics, err := NewMetrics(provider.Meter("test"))
	require.NoError(t, err)

	metrics.RecordRequest(context.Background(), "GET", 200, 50*time.Millisecond)
	metrics.RecordRequest(context.Background(), "GET", 200, 75*time.Millisecond)
	metrics.RecordRequest(context.Background(), "POST", 409, 10*time.Millisecond)

	collected := collectMetrics(t, reader)

	counter, ok := collected["k8s_client_requests_total"].Data.(metricdata.Sum[int64])
	require.True(t, ok, "expected int64 sum for request counter")
	require.Len(t, counter.DataPoints, 2)

	byStatus := map[string]int64{}
	for _, dp := range counter.DataPoints {
		status, _ := dp.Attributes.Value(attribute.Key(attrStatus))
		byStatus[status.AsString()] = dp.Value
	}
	assert.Equal(t, int64(2), byStatus["200"])
	assert.Equal(t, int64(1), byStatus["409"])

	histogram, ok := collected["k8s_client_request_duration_seconds"].Data.(metricdata.Histogram[float64])
	require.True(t, ok, "expected float64 histogram for request duration")
	assert.Len(t, histogram.DataPoints, 2)
}

func TestRecordRequestTransportError(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer provider.Shutdown(context.Background())

	metrics, err := NewMetrics(provider.Meter("test"))
	require.NoError(t, err)

	metrics.RecordRequest(context.Background(), "GET", 0, time.Millisecond)

	collected := collectMetrics(t, reader)
	counter, ok := collected["k8s_client_requests_total"].Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, counter.DataPoints, 1)

	status, _ := counter.DataPoints[0].Attributes.Value(attribute.Key(attrStatus))
	assert.Equal(t, statusTransportError, status.AsString())
}

func TestRecordRequestNilSafe(t *testing.T) {
	var metrics *Metrics

	assert.NotPanics(t, func() {
		metrics.RecordRequest(context.Background(), "GET", 200, time.Millisecond)
	})
}
