package orchestrator

import (
	"context"
	"errors"
	"io"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/book-capabilities-go/book"
	"github.com/AntonStoeckl/book-capabilities-go/display"
	"github.com/AntonStoeckl/book-capabilities-go/printing"
	"github.com/AntonStoeckl/book-capabilities-go/serialize"
	"github.com/AntonStoeckl/book-capabilities-go/variant"
)

// Runner executes command sequences against a book.
// A Runner holds no per-run state and can be reused for any number of books.
type Runner struct {
	displayer  DisplaysBooks
	printer    PrintsBooks
	serializer SerializesBooks
	observer   observer
}

// NewRunner creates a Runner whose default display and print capabilities write to out.
// A nil out falls back to standard output.
func NewRunner(out io.Writer, opts ...Option) (*Runner, error) {
	runner := &Runner{
		displayer:  display.NewDisplayer(out),
		printer:    printing.NewPrinter(out),
		serializer: serialize.NewSerializer(),
	}

	for _, opt := range opts {
		if err := opt(runner); err != nil {
			return nil, err
		}
	}

	return runner, nil
}

// Run is a shortcut for running commands with a default Runner writing to standard output.
func Run(ctx context.Context, b book.Book, commands Commands) (Result, error) {
	runner, err := NewRunner(nil)
	if err != nil {
		return NoResult(), err
	}

	return runner.Run(ctx, b, commands)
}

// Run processes commands strictly in order against b.
//
// The first serialize command ends the run, its text is returned and all later commands are ignored.
// If there is no serialize command the Result has no value.
// Capability errors are returned unchanged and abort the run.
func (r *Runner) Run(ctx context.Context, b book.Book, commands Commands) (Result, error) {
	runStart := time.Now()
	runID := uuid.New().String()
	executed := 0

	ctx, span := r.observer.startSpan(ctx, SpanNameRun, map[string]string{
		LogAttrRunID:        runID,
		LogAttrCommandCount: strconv.Itoa(len(commands)),
	})

	r.observer.logInfo(ctx, LogMsgRunStarted, LogAttrRunID, runID, LogAttrCommandCount, len(commands))

	for position, command := range commands {
		switch command.Action {
		case ActionDisplay:
			executed++
			err := r.dispatch(ctx, runID, position, command, func() error {
				return r.displayer.Display(b, display.Kind(command.Variant))
			})

			if err != nil {
				return r.fail(ctx, span, runID, executed, runStart, err)
			}

		case ActionPrint:
			executed++
			err := r.dispatch(ctx, runID, position, command, func() error {
				return r.printer.Print(b, printing.Kind(command.Variant))
			})

			if err != nil {
				return r.fail(ctx, span, runID, executed, runStart, err)
			}

		case ActionSerialize:
			executed++
			var serialized string
			err := r.dispatch(ctx, runID, position, command, func() error {
				var serializeErr error
				serialized, serializeErr = r.serializer.Serialize(b, serialize.Format(command.Variant))

				return serializeErr
			})

			if err != nil {
				return r.fail(ctx, span, runID, executed, runStart, err)
			}

			r.complete(ctx, span, runID, OutcomeSerialized, executed, runStart)

			return SerializedResult(serialized), nil

		default:
			r.observer.logWarn(
				ctx,
				LogMsgActionSkipped,
				LogAttrRunID, runID,
				LogAttrPosition, position,
				LogAttrAction, string(command.Action),
			)
			r.observer.incrementCounter(ctx, SkippedActionMetric, nil)
		}
	}

	r.complete(ctx, span, runID, OutcomeNoValue, executed, runStart)

	return NoResult(), nil
}

func (r *Runner) dispatch(
	ctx context.Context,
	runID string,
	position int,
	command Command,
	apply func() error,
) error {

	ctx, span := r.observer.startSpan(ctx, SpanNameDispatch, map[string]string{
		LogAttrRunID:      runID,
		LogAttrPosition:   strconv.Itoa(position),
		LogAttrCapability: string(command.Action),
		LogAttrVariant:    command.Variant,
	})

	start := time.Now()
	err := apply()
	duration := time.Since(start)

	status := StatusSuccess
	switch {
	case errors.Is(err, variant.ErrInvalidVariant):
		status = StatusInvalidVariant
	case err != nil:
		status = StatusError
	}

	r.observer.recordDispatch(ctx, string(command.Action), command.Variant, status, duration)
	r.observer.logDebug(
		ctx,
		LogMsgCommandDispatched,
		LogAttrRunID, runID,
		LogAttrPosition, position,
		LogAttrCapability, string(command.Action),
		LogAttrVariant, command.Variant,
		LogAttrStatus, status,
		LogAttrDurationMS, ToMilliseconds(duration),
	)

	spanAttrs := map[string]string{LogAttrDurationMS: formatMilliseconds(duration)}
	if err != nil {
		spanAttrs[LogAttrError] = err.Error()
	}
	r.observer.finishSpan(span, status, spanAttrs)

	return err
}

func (r *Runner) complete(
	ctx context.Context,
	span SpanContext,
	runID string,
	outcome string,
	executed int,
	runStart time.Time,
) {

	duration := time.Since(runStart)

	r.observer.recordRun(ctx, outcome, executed, duration)
	r.observer.logInfo(
		ctx,
		LogMsgRunCompleted,
		LogAttrRunID, runID,
		LogAttrOutcome, outcome,
		LogAttrDurationMS, ToMilliseconds(duration),
	)
	r.observer.finishSpan(span, StatusSuccess, map[string]string{
		LogAttrOutcome:    outcome,
		LogAttrDurationMS: formatMilliseconds(duration),
	})
}

func (r *Runner) fail(
	ctx context.Context,
	span SpanContext,
	runID string,
	executed int,
	runStart time.Time,
	err error,
) (Result, error) {

	duration := time.Since(runStart)

	r.observer.recordRun(ctx, OutcomeFailed, executed, duration)
	r.observer.logError(
		ctx,
		LogMsgRunFailed,
		LogAttrRunID, runID,
		LogAttrError, err.Error(),
		LogAttrDurationMS, ToMilliseconds(duration),
	)
	r.observer.finishSpan(span, StatusError, map[string]string{
		LogAttrOutcome:    OutcomeFailed,
		LogAttrError:      err.Error(),
		LogAttrDurationMS: formatMilliseconds(duration),
	})

	return NoResult(), err
}
