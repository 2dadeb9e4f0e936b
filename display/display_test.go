package display_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/book-capabilities-go/book"
	"github.com/AntonStoeckl/book-capabilities-go/display"
	"github.com/AntonStoeckl/book-capabilities-go/variant"
)

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func sampleBook() book.Book {
	return book.BuildBook("Sample Book", "This is some sample content.")
}

func Test_Display_Console_WritesContentVerbatim(t *testing.T) {
	// arrange
	out := new(bytes.Buffer)
	displayer := display.NewDisplayer(out)
	b := sampleBook()

	// act
	err := displayer.Display(b, display.Console)

	// assert
	require.NoError(t, err)
	assert.Equal(t, "This is some sample content.\n", out.String())
	assert.Equal(t, sampleBook(), b, "displaying must not alter the book")
}

func Test_Display_Reverse_WritesReversedContent(t *testing.T) {
	// arrange
	out := new(bytes.Buffer)
	displayer := display.NewDisplayer(out)

	// act
	err := displayer.Display(sampleBook(), display.Reverse)

	// assert
	require.NoError(t, err)
	assert.Equal(t, ".tnetnoc elpmas emos si sihT\n", out.String())
}

func Test_Display_Reverse_TwiceRecoversTheOriginalContent(t *testing.T) {
	// arrange
	original := book.BuildBook("Ünïcödé", "naïve café 📚 日本語")
	out := new(bytes.Buffer)
	displayer := display.NewDisplayer(out)

	// act
	require.NoError(t, displayer.Display(original, display.Reverse))
	reversed := book.BuildBook(original.Title, trimNewline(out.String()))
	out.Reset()
	require.NoError(t, displayer.Display(reversed, display.Reverse))

	// assert
	assert.Equal(t, original.Content+"\n", out.String())
}

func Test_Display_UnknownKind_Fails(t *testing.T) {
	testCases := []struct {
		kind            display.Kind
		expectedMessage string
	}{
		{kind: "json", expectedMessage: "Unknown display type: json"},
		{kind: "Console", expectedMessage: "Unknown display type: Console"},
		{kind: "", expectedMessage: "Unknown display type: "},
	}

	for _, tc := range testCases {
		t.Run(string(tc.kind), func(t *testing.T) {
			// arrange
			out := new(bytes.Buffer)
			displayer := display.NewDisplayer(out)

			// act
			err := displayer.Display(sampleBook(), tc.kind)

			// assert
			assert.ErrorIs(t, err, variant.ErrInvalidVariant)
			assert.EqualError(t, err, tc.expectedMessage)
			assert.Empty(t, out.String(), "nothing should be written for an unknown kind")
		})
	}
}

func Test_Display_WriteFailure_IsReported(t *testing.T) {
	// arrange
	displayer := display.NewDisplayer(brokenWriter{})

	// act
	err := displayer.Display(sampleBook(), display.Console)

	// assert
	assert.ErrorIs(t, err, display.ErrDisplayFailed)
	assert.NotErrorIs(t, err, variant.ErrInvalidVariant)
}

func Test_Display_WithCustomRegistry(t *testing.T) {
	// arrange
	registry := variant.MustNewRegistry("display", map[display.Kind]variant.Operation[book.Book, []string]{
		"title": func(b book.Book) ([]string, error) { return []string{b.Title}, nil },
	})
	out := new(bytes.Buffer)
	displayer := display.NewDisplayerWithRegistry(out, registry)

	// act
	err := displayer.Display(sampleBook(), "title")
	consoleErr := displayer.Display(sampleBook(), display.Console)

	// assert
	require.NoError(t, err)
	assert.Equal(t, "Sample Book\n", out.String())
	assert.EqualError(t, consoleErr, "Unknown display type: console")
}

func Test_DefaultRegistry_ContainsBuiltInKinds(t *testing.T) {
	assert.Equal(t, []display.Kind{display.Console, display.Reverse}, display.DefaultRegistry().Keys())
}

func trimNewline(s string) string {
	return s[:len(s)-1]
}
