package orchestrator_test

import (
	"github.com/AntonStoeckl/book-capabilities-go/book"
	"github.com/AntonStoeckl/book-capabilities-go/serialize"
)

type serializerStub struct {
	serialized string
	err        error
}

func (s serializerStub) Serialize(_ book.Book, _ serialize.Format) (string, error) {
	return s.serialized, s.err
}
