// Package orchestrator sequences capability commands against one book.
//
// A Runner processes an ordered list of (action, variant) commands strictly in order:
//   - "display" and "print" write to the Runner's output stream
//   - the first "serialize" stops the run and its text becomes the Result,
//     commands after it are never executed
//   - without any "serialize" the Result holds no value, which is different from an empty string
//   - actions other than these three are skipped
//
// Capability errors are returned unchanged and abort the remaining commands. There is no retry
// and no partial recovery.
//
// The capability services are handed to the Runner explicitly via options; the Book itself carries
// no services. The Runner is the 'imperative shell' around the capabilities: it adds structured
// logging, metrics and tracing spans through dependency-free interfaces, so any *slog.Logger or
// OpenTelemetry bridge can be plugged in.
//
// Common usage pattern:
//
//	runner, err := orchestrator.NewRunner(os.Stdout, orchestrator.WithLogger(slog.Default()))
//	if err != nil {
//		// handle error
//	}
//
//	result, err := runner.Run(ctx, book.BuildBook("Sample Book", "This is some sample content."), []orchestrator.Command{
//		orchestrator.BuildCommand(orchestrator.ActionDisplay, "reverse"),
//		orchestrator.BuildCommand(orchestrator.ActionSerialize, "xml"),
//	})
//	if err != nil {
//		// handle error
//	}
//
//	if serialized, ok := result.Value(); ok {
//		fmt.Println(serialized)
//	}
package orchestrator
