package testdoubles

import (
	"context"
	"sync"
	"time"

	"github.com/AntonStoeckl/book-capabilities-go/orchestrator"
)

// ContextualMetricsCollectorSpy is a ContextualMetricsCollector implementation for testing.
// The *Context methods record into the embedded MetricsCollectorSpy and capture the context of each call.
type ContextualMetricsCollectorSpy struct {
	*MetricsCollectorSpy
	contexts    []context.Context
	mu          sync.Mutex
	recordCalls bool
}

// NewContextualMetricsCollectorSpy creates a new ContextualMetricsCollectorSpy.
// Set recordCalls to true to capture all metrics calls for inspection in tests.
func NewContextualMetricsCollectorSpy(recordCalls bool) *ContextualMetricsCollectorSpy {
	return &ContextualMetricsCollectorSpy{
		MetricsCollectorSpy: NewMetricsCollectorSpy(recordCalls),
		recordCalls:         recordCalls,
	}
}

// RecordDurationContext implements the ContextualMetricsCollector interface.
func (s *ContextualMetricsCollectorSpy) RecordDurationContext(
	ctx context.Context,
	metric string,
	duration time.Duration,
	labels map[string]string,
) {

	s.recordContext(ctx)
	s.RecordDuration(metric, duration, labels)
}

// IncrementCounterContext implements the ContextualMetricsCollector interface.
func (s *ContextualMetricsCollectorSpy) IncrementCounterContext(
	ctx context.Context,
	metric string,
	labels map[string]string,
) {

	s.recordContext(ctx)
	s.IncrementCounter(metric, labels)
}

// RecordValueContext implements the ContextualMetricsCollector interface.
func (s *ContextualMetricsCollectorSpy) RecordValueContext(
	ctx context.Context,
	metric string,
	value float64,
	labels map[string]string,
) {

	s.recordContext(ctx)
	s.RecordValue(metric, value, labels)
}

func (s *ContextualMetricsCollectorSpy) recordContext(ctx context.Context) {
	if !s.recordCalls {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.contexts = append(s.contexts, ctx)
}

// GetContexts returns the contexts of all *Context calls, in call order.
func (s *ContextualMetricsCollectorSpy) GetContexts() []context.Context {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]context.Context(nil), s.contexts...)
}

// Reset clears all captured metric records and contexts.
func (s *ContextualMetricsCollectorSpy) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.contexts = s.contexts[:0]
	s.MetricsCollectorSpy.Reset()
}

// Compile-time check to ensure ContextualMetricsCollectorSpy implements ContextualMetricsCollector interface.
var _ orchestrator.ContextualMetricsCollector = (*ContextualMetricsCollectorSpy)(nil)
