// Package logger provides structured logging for the inventory query service.
//
// Logger wraps a zap.Logger with a small, uniform call shape used everywhere in
// the codebase:
//
//	log.Info("plan built", nil, map[string]interface{}{"intent": "count"})
//	log.Error("query failed", err, map[string]interface{}{"intent": p.Intent})
//
// Every entry is JSON, timestamped in ISO8601 and carries the process id and
// service name. When tracing is enabled, the *WithContext variants add the
// trace_id and span_id of the active OpenTelemetry span, so log lines can be
// joined with traces.
//
// Packages that log depend on a local Logger interface with these methods rather
// than on *Logger, which keeps them testable with NewNop.
//
// # Configuration
//
//	ZAP_LOGGER_LEVEL=info        # debug, info, warning, error
//	LOGGER_ENABLE_TRACING=true   # add trace/span ids in *WithContext calls
//
// # FX Module Integration
//
//	app := fx.New(
//	    logger.FXModule, // provides *logger.Logger, syncs on stop
//	    // other modules...
//	)
package logger
