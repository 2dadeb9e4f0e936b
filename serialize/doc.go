// Package serialize implements the Serialize capability: rendering a book as JSON or XML text.
//
// Output formats:
//
//	json: {"title": "<escaped>", "content": "<escaped>"}
//	xml:  <book><title><escaped></title><content><escaped></content></book>
//
// Both formats keep the title before the content and round-trip through any conformant parser.
// JSON is written without HTML escaping, so '<', '>' and '&' stay literal. XML is written without a
// declaration prologue and without whitespace between the tags.
//
// Any other format fails with a variant.InvalidVariantError: "Unknown serialize type: {format}".
// Serializing has no side effects.
package serialize
