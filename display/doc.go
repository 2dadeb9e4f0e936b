// Package display implements the Display capability: writing a book's content to a console stream.
//
// Supported kinds:
//   - "console": the content verbatim
//   - "reverse": the content reversed by Unicode code point
//
// Any other kind fails with a variant.InvalidVariantError: "Unknown display type: {kind}".
package display
