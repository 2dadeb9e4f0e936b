package serialize

import (
	"encoding/xml"
	"errors"

	"github.com/AntonStoeckl/book-capabilities-go/book"
)

// ErrXMLSerializationFailed is returned when the XML encoder fails.
var ErrXMLSerializationFailed = errors.New("xml serialization failed")

type xmlBook struct {
	XMLName xml.Name `xml:"book"`
	Title   string   `xml:"title"`
	Content string   `xml:"content"`
}

// ToXML renders b as <book><title>...</title><content>...</content></book>.
func ToXML(b book.Book) (string, error) {
	out, err := xml.Marshal(xmlBook{
		Title:   b.Title,
		Content: b.Content,
	})

	if err != nil {
		return "", errors.Join(ErrXMLSerializationFailed, err)
	}

	return string(out), nil
}
