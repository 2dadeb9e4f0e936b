package console_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/book-capabilities-go/internal/console"
)

type failingWriter struct {
	calls int
}

func (w *failingWriter) Write([]byte) (int, error) {
	w.calls++

	return 0, errors.New("stream closed")
}

func Test_WriteLines_WritesEveryLineWithNewline(t *testing.T) {
	// arrange
	out := new(bytes.Buffer)

	// act
	err := console.WriteLines(out, []string{"first", "", "third"})

	// assert
	assert.NoError(t, err)
	assert.Equal(t, "first\n\nthird\n", out.String())
}

func Test_WriteLines_StopsAtFirstError(t *testing.T) {
	// arrange
	out := new(failingWriter)

	// act
	err := console.WriteLines(out, []string{"first", "second"})

	// assert
	assert.EqualError(t, err, "stream closed")
	assert.Equal(t, 1, out.calls)
}
