// Package tracer wires OpenTelemetry tracing for the inventory query service.
//
// NewClient installs a global TracerProvider and W3C trace-context propagator.
// With EnableExport set, spans are batched to an OTLP/HTTP collector (endpoint
// taken from Config.Endpoint or the standard OTEL_EXPORTER_OTLP_* variables);
// otherwise spans are created and propagated but never exported, which keeps
// trace ids available for log correlation in every environment.
//
// Typical use around a unit of work:
//
//	ctx, span := t.StartSpan(ctx, "executor.Execute")
//	defer span.End()
//	t.SetAttributes(span, map[string]interface{}{"intent": "count"})
//	if err != nil {
//	    t.RecordErrorOnSpan(span, err)
//	}
package tracer
