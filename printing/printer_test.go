package printing_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/book-capabilities-go/book"
	"github.com/AntonStoeckl/book-capabilities-go/printing"
	"github.com/AntonStoeckl/book-capabilities-go/variant"
)

type writerSpy struct {
	failAfter int
	writes    int
	buf       bytes.Buffer
}

func (w *writerSpy) Write(p []byte) (int, error) {
	if w.writes >= w.failAfter {
		return 0, errors.New("disk full")
	}

	w.writes++

	return w.buf.Write(p)
}

func Test_Print(t *testing.T) {
	testCases := []struct {
		name     string
		kind     printing.Kind
		expected string
	}{
		{
			name:     "console",
			kind:     printing.Console,
			expected: "Printing the book: Sample Book...\nThis is some sample content.\n",
		},
		{
			name:     "reverse",
			kind:     printing.Reverse,
			expected: "Printing the book in reverse: Sample Book...\n.tnetnoc elpmas emos si sihT\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// arrange
			out := new(bytes.Buffer)
			printer := printing.NewPrinter(out)
			b := book.BuildBook("Sample Book", "This is some sample content.")

			// act
			err := printer.Print(b, tc.kind)

			// assert
			require.NoError(t, err)
			assert.Equal(t, tc.expected, out.String())
			assert.Equal(t, "Sample Book", b.Title)
			assert.Equal(t, "This is some sample content.", b.Content)
		})
	}
}

func Test_Print_Reverse_DoesNotReverseTheTitle(t *testing.T) {
	// arrange
	out := new(bytes.Buffer)
	printer := printing.NewPrinter(out)

	// act
	err := printer.Print(book.BuildBook("Straße", "über"), printing.Reverse)

	// assert
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Printing the book in reverse: Straße...", lines[0])
	assert.Equal(t, "rebü", lines[1])
}

func Test_Print_UnknownKind_Fails(t *testing.T) {
	// arrange
	out := new(bytes.Buffer)
	printer := printing.NewPrinter(out)

	// act
	err := printer.Print(book.BuildBook("Sample Book", "content"), "pdf")

	// assert
	assert.ErrorIs(t, err, variant.ErrInvalidVariant)
	assert.EqualError(t, err, "Unknown print type: pdf")
	assert.Empty(t, out.String())
}

func Test_Print_WriteFailure_IsReported(t *testing.T) {
	// arrange
	out := &writerSpy{failAfter: 1}
	printer := printing.NewPrinter(out)

	// act
	err := printer.Print(book.BuildBook("Sample Book", "content"), printing.Console)

	// assert
	assert.ErrorIs(t, err, printing.ErrPrintFailed)
	assert.Equal(t, "Printing the book: Sample Book...\n", out.buf.String(), "the header was written before the failure")
}

func Test_DefaultRegistry_ContainsBuiltInKinds(t *testing.T) {
	assert.Equal(t, []printing.Kind{printing.Console, printing.Reverse}, printing.DefaultRegistry().Keys())
	assert.Equal(t, "print", printing.DefaultRegistry().Capability())
}
