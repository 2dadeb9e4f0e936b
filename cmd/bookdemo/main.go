package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/AntonStoeckl/book-capabilities-go/book"
	"github.com/AntonStoeckl/book-capabilities-go/orchestrator"
)

func main() {
	if err := run(context.Background(), os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stdout io.Writer, stderr io.Writer) error {
	cfg, err := LoadConfigFromEnv()
	if err != nil {
		return err
	}

	logger, err := cfg.NewLogger(stderr)
	if err != nil {
		return err
	}

	runner, err := orchestrator.NewRunner(stdout, orchestrator.WithContextualLogger(logger))
	if err != nil {
		return err
	}

	sampleBook := book.BuildBook("Sample Book", "This is some sample content.")
	result, err := runner.Run(ctx, sampleBook, orchestrator.Commands{
		orchestrator.BuildCommand(orchestrator.ActionDisplay, "reverse"),
		orchestrator.BuildCommand(orchestrator.ActionSerialize, "xml"),
	})
	if err != nil {
		return err
	}

	if serialized, ok := result.Value(); ok {
		_, err = fmt.Fprintln(stdout, serialized)
	}

	return err
}
