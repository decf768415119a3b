/*
Package store data models.

Nested structures (tags, parameters, request body, responses, sample code)
are stored as JSON text columns; SQLite has no native array or map column
types. Decoding with empty-default fallback happens in the search layer.
*/
package store

import "database/sql"

// EndpointRow is one REST operation as stored in api_endpoints.
//
// (path, method) is unique; operation_id, when present, is an alternate
// unique key for the same row.
type EndpointRow struct {
	// Path is the templated request path, e.g. /api/{serviceId}/auth/token.
	Path string

	// Method is the upper-cased HTTP verb.
	Method string

	// OperationID is the optional stable identifier from the OpenAPI
	// document.
	OperationID sql.NullString

	// Summary and Description are human text; Description may be long
	// multi-paragraph markdown.
	Summary     string
	Description string

	// Tags is a JSON array of category labels.
	Tags string

	// Parameters is a JSON array of parameter descriptors.
	Parameters string

	// RequestBody is an optional JSON object.
	RequestBody sql.NullString

	// Responses is a JSON object keyed by status code string.
	Responses string

	// SampleLanguages is a JSON array of languages with sample code.
	SampleLanguages string

	// SampleCodes is a JSON object mapping language to source text.
	SampleCodes string

	// SearchContent is the precomputed flattened search text: path,
	// summary, description, operation id, method, tags and parameter
	// names joined by spaces. Case-preserving; matched case-insensitively.
	SearchContent string
}

// SchemaRow is one named data-type definition as stored in api_schemas.
type SchemaRow struct {
	// SchemaName is the unique component name.
	SchemaName string

	// SchemaType is the JSON schema type (object, array, string, ...).
	SchemaType string

	Title       string
	Description string

	// Properties is a JSON object mapping property name to a simplified
	// type descriptor.
	Properties string

	// RequiredFields is a JSON array of required property names.
	RequiredFields string

	// ExampleValue is an optional JSON example payload.
	ExampleValue sql.NullString

	// SearchContent is name + title + description + type + property names.
	SearchContent string
}

// EndpointFilters are the AND-ed predicates applied on top of the
// mode-specific text predicate.
type EndpointFilters struct {
	// Method is compared exactly after upper-casing.
	Method string

	// Tag is matched as a case-insensitive substring of the serialized
	// tag list.
	Tag string
}
