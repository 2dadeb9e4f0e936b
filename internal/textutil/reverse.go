// Package textutil contains small text helpers shared by the capabilities.
package textutil

import "slices"

// Reverse returns s reversed by Unicode code point.
// Invalid UTF-8 bytes are replaced by utf8.RuneError.
func Reverse(s string) string {
	runes := []rune(s)
	slices.Reverse(runes)

	return string(runes)
}
