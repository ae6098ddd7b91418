// Package json exports scene graph components to a nested mapping and to JSON text.
//
// ExportVisitor produces map[string]interface{} values, Marshal and Encoder
// write the same structure as JSON with a stable key order.
package json
