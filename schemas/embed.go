// Package schemas holds the JSON Schemas for wikiwally's wire formats.
package schemas

import _ "embed"

// Payload is the JSON Schema for types.Payload.
//
//go:embed payload.schema.json
var Payload string
