// Package openapi derives field option files from OpenAPI component schemas.
// Each property of the chosen schema becomes one field; kin-openapi does the
// parsing and reference resolution.
package openapi
