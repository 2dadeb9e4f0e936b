package orchestrator

import (
	"context"
	"fmt"
	"time"
)

const (
	// DispatchDurationMetric tracks how long a single capability dispatch takes.
	DispatchDurationMetric = "orchestrator_dispatch_duration_seconds"

	// DispatchCallsMetric tracks total capability dispatches.
	DispatchCallsMetric = "orchestrator_dispatch_calls_total"

	// InvalidVariantMetric tracks dispatches that failed because of an unknown variant.
	InvalidVariantMetric = "orchestrator_invalid_variants_total"

	// SkippedActionMetric tracks commands with an unrecognized action.
	SkippedActionMetric = "orchestrator_skipped_actions_total"

	// RunDurationMetric tracks the duration of a complete run.
	RunDurationMetric = "orchestrator_run_duration_seconds"

	// ExecutedCommandsMetric records how many commands a run executed.
	ExecutedCommandsMetric = "orchestrator_executed_commands"

	// StatusSuccess indicates a successful dispatch.
	StatusSuccess = "success"

	// StatusError indicates a failed dispatch.
	StatusError = "error"

	// StatusInvalidVariant indicates a dispatch with an unknown variant.
	StatusInvalidVariant = "invalid_variant"

	// OutcomeSerialized indicates that a run ended with a serialize command.
	OutcomeSerialized = "serialized"

	// OutcomeNoValue indicates that a run ended without a serialize command.
	OutcomeNoValue = "no_value"

	// OutcomeFailed indicates that a run was aborted by an error.
	OutcomeFailed = "failed"

	// VariantUnknown replaces the variant label of invalid variants to keep label cardinality bounded.
	VariantUnknown = "unknown"

	// SpanNameRun names the span around a complete run.
	SpanNameRun = "orchestrator.run"

	// SpanNameDispatch names the span around a single capability dispatch, a child of the run span.
	SpanNameDispatch = "orchestrator.dispatch"

	// LogMsgRunStarted is logged when a run begins.
	LogMsgRunStarted = "run started"

	// LogMsgRunCompleted is logged when a run ends without error.
	LogMsgRunCompleted = "run completed"

	// LogMsgRunFailed is logged when a run is aborted by an error.
	LogMsgRunFailed = "run failed"

	// LogMsgCommandDispatched is logged for every executed command.
	LogMsgCommandDispatched = "command dispatched"

	// LogMsgActionSkipped is logged for commands with an unrecognized action.
	LogMsgActionSkipped = "unknown action skipped"

	// LogAttrRunID identifies the run in logs.
	LogAttrRunID = "run_id"

	// LogAttrCapability identifies the capability (display, print, serialize).
	LogAttrCapability = "capability"

	// LogAttrVariant identifies the variant key of a command.
	LogAttrVariant = "variant"

	// LogAttrAction identifies the action of a command.
	LogAttrAction = "action"

	// LogAttrPosition is the zero-based position of a command within the run.
	LogAttrPosition = "position"

	// LogAttrCommandCount is the number of commands handed to a run.
	LogAttrCommandCount = "command_count"

	// LogAttrStatus indicates the dispatch status.
	LogAttrStatus = "status"

	// LogAttrOutcome classifies how a run ended.
	LogAttrOutcome = "outcome"

	// LogAttrDurationMS indicates the processing duration in milliseconds.
	LogAttrDurationMS = "duration_ms"

	// LogAttrError contains error details.
	LogAttrError = "error"
)

// Logger interface for basic logging, satisfied by *slog.Logger.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// ContextualLogger interface for context-aware logging with automatic trace correlation,
// also satisfied by *slog.Logger.
type ContextualLogger interface {
	DebugContext(ctx context.Context, msg string, args ...any)
	InfoContext(ctx context.Context, msg string, args ...any)
	WarnContext(ctx context.Context, msg string, args ...any)
	ErrorContext(ctx context.Context, msg string, args ...any)
}

// MetricsCollector interface for collecting dispatch metrics.
type MetricsCollector interface {
	RecordDuration(metric string, duration time.Duration, labels map[string]string)
	IncrementCounter(metric string, labels map[string]string)
	RecordValue(metric string, value float64, labels map[string]string)
}

// ContextualMetricsCollector extends MetricsCollector with context-aware methods.
// The Runner prefers these methods when the collector implements them.
type ContextualMetricsCollector interface {
	MetricsCollector
	RecordDurationContext(ctx context.Context, metric string, duration time.Duration, labels map[string]string)
	IncrementCounterContext(ctx context.Context, metric string, labels map[string]string)
	RecordValueContext(ctx context.Context, metric string, value float64, labels map[string]string)
}

// SpanContext represents an active tracing span that can be finished and updated with attributes.
type SpanContext interface {
	SetStatus(status string)
	AddAttribute(key, value string)
}

// TracingCollector interface for collecting tracing information from runs and dispatches.
// Like MetricsCollector it carries no dependencies, so any tracing backend can be bridged.
type TracingCollector interface {
	StartSpan(ctx context.Context, name string, attrs map[string]string) (context.Context, SpanContext)
	FinishSpan(spanCtx SpanContext, status string, attrs map[string]string)
}

// ToMilliseconds converts a time.Duration to float64 milliseconds with precision.
func ToMilliseconds(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1e6
}

// BuildDispatchLabels creates standard metric labels for a capability dispatch.
func BuildDispatchLabels(capability, variant, status string) map[string]string {
	return map[string]string{
		LogAttrCapability: capability,
		LogAttrVariant:    variant,
		LogAttrStatus:     status,
	}
}

type observer struct {
	logger           Logger
	contextualLogger ContextualLogger
	metricsCollector MetricsCollector
	tracingCollector TracingCollector
}

func (o observer) logDebug(ctx context.Context, msg string, args ...any) {
	if o.contextualLogger != nil {
		o.contextualLogger.DebugContext(ctx, msg, args...)
	} else if o.logger != nil {
		o.logger.Debug(msg, args...)
	}
}

func (o observer) logInfo(ctx context.Context, msg string, args ...any) {
	if o.contextualLogger != nil {
		o.contextualLogger.InfoContext(ctx, msg, args...)
	} else if o.logger != nil {
		o.logger.Info(msg, args...)
	}
}

func (o observer) logWarn(ctx context.Context, msg string, args ...any) {
	if o.contextualLogger != nil {
		o.contextualLogger.WarnContext(ctx, msg, args...)
	} else if o.logger != nil {
		o.logger.Warn(msg, args...)
	}
}

func (o observer) logError(ctx context.Context, msg string, args ...any) {
	if o.contextualLogger != nil {
		o.contextualLogger.ErrorContext(ctx, msg, args...)
	} else if o.logger != nil {
		o.logger.Error(msg, args...)
	}
}

func (o observer) recordDuration(ctx context.Context, metric string, duration time.Duration, labels map[string]string) {
	if o.metricsCollector == nil {
		return
	}

	if contextualCollector, ok := o.metricsCollector.(ContextualMetricsCollector); ok {
		contextualCollector.RecordDurationContext(ctx, metric, duration, labels)
		return
	}

	o.metricsCollector.RecordDuration(metric, duration, labels)
}

func (o observer) incrementCounter(ctx context.Context, metric string, labels map[string]string) {
	if o.metricsCollector == nil {
		return
	}

	if contextualCollector, ok := o.metricsCollector.(ContextualMetricsCollector); ok {
		contextualCollector.IncrementCounterContext(ctx, metric, labels)
		return
	}

	o.metricsCollector.IncrementCounter(metric, labels)
}

func (o observer) recordValue(ctx context.Context, metric string, value float64, labels map[string]string) {
	if o.metricsCollector == nil {
		return
	}

	if contextualCollector, ok := o.metricsCollector.(ContextualMetricsCollector); ok {
		contextualCollector.RecordValueContext(ctx, metric, value, labels)
		return
	}

	o.metricsCollector.RecordValue(metric, value, labels)
}

// recordDispatch records the metrics of one capability dispatch.
func (o observer) recordDispatch(ctx context.Context, capability, variant, status string, duration time.Duration) {
	if status == StatusInvalidVariant {
		variant = VariantUnknown
	}

	labels := BuildDispatchLabels(capability, variant, status)
	o.recordDuration(ctx, DispatchDurationMetric, duration, labels)
	o.incrementCounter(ctx, DispatchCallsMetric, labels)

	if status == StatusInvalidVariant {
		o.incrementCounter(ctx, InvalidVariantMetric, map[string]string{LogAttrCapability: capability})
	}
}

// recordRun records the metrics of a complete run.
func (o observer) recordRun(ctx context.Context, outcome string, executed int, duration time.Duration) {
	labels := map[string]string{LogAttrOutcome: outcome}
	o.recordDuration(ctx, RunDurationMetric, duration, labels)
	o.recordValue(ctx, ExecutedCommandsMetric, float64(executed), labels)
}

func (o observer) startSpan(ctx context.Context, name string, attrs map[string]string) (context.Context, SpanContext) {
	if o.tracingCollector != nil {
		return o.tracingCollector.StartSpan(ctx, name, attrs)
	}

	return ctx, nil
}

func (o observer) finishSpan(span SpanContext, status string, attrs map[string]string) {
	if o.tracingCollector == nil || span == nil {
		return
	}

	span.SetStatus(status)
	for key, value := range attrs {
		span.AddAttribute(key, value)
	}

	o.tracingCollector.FinishSpan(span, status, attrs)
}

func formatMilliseconds(d time.Duration) string {
	return fmt.Sprintf("%.2f", ToMilliseconds(d))
}
