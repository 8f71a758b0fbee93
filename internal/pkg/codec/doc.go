// Package codec wraps JSON values in base64 text.
//
// EncodeBase64 renders a value the way JSON.stringify does (compact, no HTML
// escaping, no trailing newline) and encodes it with padded standard base64.
// DecodeBase64 reverses it into the generic Go JSON model: nil, bool,
// float64, string, []any and map[string]any.
package codec
