package display

import (
	"errors"
	"io"

	"github.com/AntonStoeckl/book-capabilities-go/book"
	"github.com/AntonStoeckl/book-capabilities-go/internal/console"
	"github.com/AntonStoeckl/book-capabilities-go/internal/textutil"
	"github.com/AntonStoeckl/book-capabilities-go/variant"
)

const capability = "display"

// ErrDisplayFailed is returned when the output stream rejects a write.
var ErrDisplayFailed = errors.New("displaying the book failed")

// Kind selects how a book is displayed.
type Kind string

const (
	// Console displays the content verbatim.
	Console Kind = "console"

	// Reverse displays the content reversed.
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
	return []string{b.Content}, nil
}

func renderReverse(b book.Book) ([]string, error) {
	return []string{textutil.Reverse(b.Content)}, nil
}

// Displayer writes books to an output stream using the kinds of its Registry.
type Displayer struct {
	registry *Registry
	out      io.Writer
}

// NewDisplayer creates a Displayer writing to out with the DefaultRegistry.
// A nil out falls back to standard output.
func NewDisplayer(out io.Writer) *Displayer {
	return NewDisplayerWithRegistry(out, defaultRegistry)
}

// NewDisplayerWithRegistry creates a Displayer with an explicit Registry.
func NewDisplayerWithRegistry(out io.Writer, registry *Registry) *Displayer {
	if out == nil {
		out = console.Stdout()
	}

	return &Displayer{
		registry: registry,
		out:      out,
	}
}

// Display writes b to the output stream in the given kind.
// An unknown kind is returned as is, so errors.Is(err, variant.ErrInvalidVariant) holds.
func (d *Displayer) Display(b book.Book, kind Kind) error {
	lines, err := d.registry.Dispatch(kind, b)
	if err != nil {
		return err
	}

	if err = console.WriteLines(d.out, lines); err != nil {
		return errors.Join(ErrDisplayFailed, err)
	}

	return nil
}
