package orchestrator

import (
	"errors"

	"github.com/AntonStoeckl/book-capabilities-go/book"
	"github.com/AntonStoeckl/book-capabilities-go/display"
	"github.com/AntonStoeckl/book-capabilities-go/printing"
	"github.com/AntonStoeckl/book-capabilities-go/serialize"
)

var (
	// ErrNilDisplayer is returned when WithDisplayer receives nil.
	ErrNilDisplayer = errors.New("nil displayer supplied")

	// ErrNilPrinter is returned when WithPrinter receives nil.
	ErrNilPrinter = errors.New("nil printer supplied")

	// ErrNilSerializer is returned when WithSerializer receives nil.
	ErrNilSerializer = errors.New("nil serializer supplied")
)

// DisplaysBooks is the Display capability as seen by the Runner.
type DisplaysBooks interface {
	Display(b book.Book, kind display.Kind) error
}

// PrintsBooks is the Print capability as seen by the Runner.
type PrintsBooks interface {
	Print(b book.Book, kind printing.Kind) error
}

// SerializesBooks is the Serialize capability as seen by the Runner.
type SerializesBooks interface {
	Serialize(b book.Book, format serialize.Format) (string, error)
}

// Option defines a functional option for configuring a Runner.
type Option func(*Runner) error

// WithDisplayer replaces the default display.Displayer.
func WithDisplayer(displayer DisplaysBooks) Option {
	return func(r *Runner) error {
		if displayer == nil {
			return ErrNilDisplayer
		}

		r.displayer = displayer

		return nil
	}
}

// WithPrinter replaces the default printing.Printer.
func WithPrinter(printer PrintsBooks) Option {
	return func(r *Runner) error {
		if printer == nil {
			return ErrNilPrinter
		}

		r.printer = printer

		return nil
	}
}

// WithSerializer replaces the default serialize.Serializer.
func WithSerializer(serializer SerializesBooks) Option {
	return func(r *Runner) error {
		if serializer == nil {
			return ErrNilSerializer
		}

		r.serializer = serializer

		return nil
	}
}

// WithLogger sets the logger for the Runner.
//
// Debug level: every dispatched command
// Info level: run start and completion
// Warn level: skipped commands with an unknown action
// Error level: the error that aborted a run.
func WithLogger(logger Logger) Option {
	return func(r *Runner) error {
		r.observer.logger = logger
		return nil
	}
}

// WithContextualLogger sets a context-aware logger, it takes precedence over WithLogger.
func WithContextualLogger(logger ContextualLogger) Option {
	return func(r *Runner) error {
		r.observer.contextualLogger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector for the Runner.
func WithMetrics(collector MetricsCollector) Option {
	return func(r *Runner) error {
		r.observer.metricsCollector = collector
		return nil
	}
}

// WithTracing sets the tracing collector for the Runner.
// Each run gets a span named SpanNameRun and each dispatch a child span named SpanNameDispatch.
func WithTracing(collector TracingCollector) Option {
	return func(r *Runner) error {
		r.observer.tracingCollector = collector
		return nil
	}
}
