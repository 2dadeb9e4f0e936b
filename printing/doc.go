// Package printing implements the Print capability: a labelled header line followed by the content.
//
// Supported kinds:
//   - "console": "Printing the book: {title}..." then the content
//   - "reverse": "Printing the book in reverse: {title}..." then the reversed content
//
// Any other kind fails with a variant.InvalidVariantError: "Unknown print type: {kind}".
package printing
