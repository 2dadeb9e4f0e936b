package serialize

import (
	"github.com/AntonStoeckl/book-capabilities-go/book"
	"github.com/AntonStoeckl/book-capabilities-go/variant"
)

const capability = "serialize"

// Format selects the serialization format.
type Format string

const (
	// JSON renders the book as a JSON object.
	JSON Format = "json"

	// XML renders the book as an XML document.
	XML Format = "xml"
)

// Registry maps a Format to the operation producing the serialized text.
type Registry = variant.Registry[Format, book.Book, string]

var defaultRegistry = variant.MustNewRegistry(capability, map[Format]variant.Operation[book.Book, string]{
	JSON: ToJSON,
	XML:  ToXML,
})

// DefaultRegistry returns the shared, read-only registry with all built-in formats.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Serializer turns books into text.
type Serializer struct {
	registry *Registry
}

// NewSerializer creates a Serializer with the DefaultRegistry.
func NewSerializer() *Serializer {
	return NewSerializerWithRegistry(defaultRegistry)
}

// NewSerializerWithRegistry creates a Serializer with an explicit Registry.
func NewSerializerWithRegistry(registry *Registry) *Serializer {
	return &Serializer{registry: registry}
}

// Serialize returns b rendered in the given format.
func (s *Serializer) Serialize(b book.Book, format Format) (string, error) {
	return s.registry.Dispatch(format, b)
}
