package serialize

import (
	"errors"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/book-capabilities-go/book"
)

// ErrJSONSerializationFailed is returned when the JSON stream reports an error.
var ErrJSONSerializationFailed = errors.New("json serialization failed")

var jsonAPI = jsoniter.Config{EscapeHTML: false}.Froze()

// ToJSON renders b as {"title": "...", "content": "..."}.
// Invalid UTF-8 sequences are written as U+FFFD.
func ToJSON(b book.Book) (string, error) {
	stream := jsonAPI.BorrowStream(nil)
	defer jsonAPI.ReturnStream(stream)

	stream.WriteRaw(`{"title": `)
	stream.WriteString(strings.ToValidUTF8(b.Title, "\uFFFD"))
	stream.WriteRaw(`, "content": `)
	stream.WriteString(strings.ToValidUTF8(b.Content, "\uFFFD"))
	stream.WriteRaw(`}`)

	if stream.Error != nil {
		return "", errors.Join(ErrJSONSerializationFailed, stream.Error)
	}

	return string(stream.Buffer()), nil
}
