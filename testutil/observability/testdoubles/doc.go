// Package testdoubles provides test doubles (spies) for the orchestrator's observability interfaces.
//
// This package contains spy implementations for:
//   - ContextualLogger: ContextualLoggerSpy captures context-aware log calls
//   - MetricsCollector: MetricsCollectorSpy captures duration, counter and value calls
//   - ContextualMetricsCollector: ContextualMetricsCollectorSpy also captures the context of each call
//   - TracingCollector: TracingCollectorSpy captures spans with their parent span
//   - slog.Handler: LogHandlerSpy captures records of a plain *slog.Logger
//
// These test doubles enable testing of the logging, metrics and tracing instrumentation
// without requiring actual telemetry backends.
package testdoubles
