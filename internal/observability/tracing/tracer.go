// Package tracing provides OpenTelemetry tracing for incoming HTTP
// requests.
package tracing

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// tracer is the global tracer instance for the application.
var tracer = otel.Tracer("artigos-api")

// GetTracer returns the tracer used to create spans.
func GetTracer() trace.Tracer {
	return tracer
}
