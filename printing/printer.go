package printing

import (
	"errors"
	"io"

	"github.com/AntonStoeckl/book-capabilities-go/book"
	"github.com/AntonStoeckl/book-capabilities-go/internal/console"
	"github.com/AntonStoeckl/book-capabilities-go/internal/textutil"
	"github.com/AntonStoeckl/book-capabilities-go/variant"
)

const capability = "print"

// ErrPrintFailed is returned when the output stream rejects a write.
var ErrPrintFailed = errors.New("printing the book failed")

// Kind selects how a book is printed.
type Kind string

const (
	// Console prints the title header and the content verbatim.
	Console Kind = "console"

	// Reverse prints the title header and the content reversed.
	Reverse Kind = "reverse"
)

// Registry maps a Kind to the lines it renders for a book.
type Registry = variant.Registry[Kind, book.Book, []string]

var defaultRegistry = variant.MustNewRegistry(capability, map[Kind]variant.Operation[book.Book, []string]{
	Console: renderConsole,
	Reverse: renderReverse,
})

// DefaultRegistry returns the shared, read-only registry with all built-in kinds.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

func renderConsole(b book.Book) ([]string, error) {
	return []string{
		"Printing the book: " + b.Title + "...",
		b.Content,
	}, nil
}

func renderReverse(b book.Book) ([]string, error) {
	return []string{
		"Printing the book in reverse: " + b.Title + "...",
		textutil.Reverse(b.Content),
	}, nil
}

// Printer writes labelled books to an output stream.
type Printer struct {
	registry *Registry
	out      io.Writer
}

// NewPrinter creates a Printer writing to out with the DefaultRegistry.
// A nil out falls back to standard output.
func NewPrinter(out io.Writer) *Printer {
	return NewPrinterWithRegistry(out, defaultRegistry)
}

// NewPrinterWithRegistry creates a Printer with an explicit Registry.
func NewPrinterWithRegistry(out io.Writer, registry *Registry) *Printer {
	if out == nil {
		out = console.Stdout()
	}

	return &Printer{
		registry: registry,
		out:      out,
	}
}

// Print writes the header line and the content of b in the given kind.
func (p *Printer) Print(b book.Book, kind Kind) error {
	lines, err := p.registry.Dispatch(kind, b)
	if err != nil {
		return err
	}

	if err = console.WriteLines(p.out, lines); err != nil {
		return errors.Join(ErrPrintFailed, err)
	}

	return nil
}
