// Package variant provides a generic keyed dispatch for "one of several fixed behaviors".
//
// A Registry maps a typed string key to an Operation. It is built once, copied on
// construction, and never changed afterward, so a single Registry can be shared by
// any number of callers without synchronization.
//
// Dispatching an unknown key fails with an *InvalidVariantError. Its message is a
// stable contract of the form:
//
//	Unknown {capability} type: {key}
//
// Common usage pattern:
//
//	type Kind string
//
//	registry := variant.MustNewRegistry("display", map[Kind]variant.Operation[book.Book, []string]{
//		"console": func(b book.Book) ([]string, error) { return []string{b.Content}, nil },
//	})
//
//	lines, err := registry.Dispatch(Kind(userInput), someBook)
//	if errors.Is(err, variant.ErrInvalidVariant) {
//		// handle unknown key
//	}
package variant
