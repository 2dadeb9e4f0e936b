// Package console writes capability output to a line-oriented text stream.
package console

import (
	"fmt"
	"io"
	"os"
)

// Stdout returns the default output stream of the capabilities.
func Stdout() io.Writer {
	return os.Stdout
}

// WriteLines writes every line followed by a newline and stops at the first write error.
func WriteLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}
