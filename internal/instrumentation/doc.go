// Package instrumentation provides opt-in OpenTelemetry metrics and tracing
// for the k8sobjects client.
//
// Instrumentation is disabled by default and activates via environment
// variables (INSTRUMENTATION_ENABLED=true) or the CLI's --telemetry flag.
// When enabled, a Provider owns the OpenTelemetry meter and tracer providers
// and their exporters:
//
//   - Metrics: "prometheus" (pull via the handler returned by
//     MetricsHandler), "otlp" (push over HTTP), or "stdout".
//   - Traces: "otlp", "stdout", or "none".
//
// The Middleware type wraps a transport.Interface and records one counter
// increment, one duration sample, and one client span per request. Request
// paths are used as span attributes; resource names inside them are
// inherently high-cardinality, so they are never used as metric labels -
// metrics are labeled by method and status code only.
package instrumentation
