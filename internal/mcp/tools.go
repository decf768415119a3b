package mcp

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/watahani/authlete-mcp/internal/config"
	"github.com/watahani/authlete-mcp/internal/search"
)

// Sentinel strings returned as tool content. Tests and callers match on
// these, so keep them stable.
const (
	noAPIsFound       = "No APIs found matching the search criteria."
	noSchemasFound    = "No schemas found matching the search criteria."
	identifierMissing = "Either 'operation_id' or both 'path' and 'method' parameters are required."
	languageMissing   = "language parameter is required."
	schemaNameMissing = "schema_name parameter is required."
)

// execSearchAPIs runs search_apis and renders the outcome as text.
func (s *Server) execSearchAPIs(args arguments) string {
	query := search.Query{
		Text:             args.str("query"),
		PathQuery:        args.str("path_query"),
		DescriptionQuery: args.str("description_query"),
		TagFilter:        args.str("tag_filter"),
		MethodFilter:     args.str("method_filter"),
		Limit:            args.num("limit", search.DefaultSearchLimit),
	}

	results, err := s.engine.SearchAPIs(query)
	if err != nil {
		return renderError("Search error", err)
	}

	s.recorder.RecordSearch(query.Text+query.PathQuery+query.DescriptionQuery, "search_apis", len(results))

	if len(results) == 0 {
		return noAPIsFound
	}
	return marshalJSON(results)
}

// execGetAPIDetail runs get_api_detail with the presentation knobs.
func (s *Server) execGetAPIDetail(args arguments) string {
	operationID := args.str("operation_id")
	path := args.str("path")
	method := args.str("method")

	if operationID == "" && (path == "" || method == "") {
		return identifierMissing
	}

	detail, err := s.engine.APIDetail(search.DetailRequest{
		Path:             path,
		Method:           method,
		OperationID:      operationID,
		Language:         args.str("language"),
		DescriptionStyle: args.str("description_style"),
		LineStart:        args.num("line_start", 0),
		LineEnd:          args.num("line_end", 0),
		BodyStyle:        args.str("body_style"),
	})
	if err != nil {
		return renderError("Detail retrieval error", err)
	}
	if detail == nil {
		return fmt.Sprintf("API details not found: %s", identifier(operationID, method, path))
	}
	return marshalJSON(detail)
}

// execGetSampleCode returns raw sample code, not JSON.
func (s *Server) execGetSampleCode(args arguments) string {
	language := args.str("language")
	operationID := args.str("operation_id")
	path := args.str("path")
	method := args.str("method")

	if language == "" {
		return languageMissing
	}
	if operationID == "" && (path == "" || method == "") {
		return identifierMissing
	}

	detail, err := s.engine.APIDetail(search.DetailRequest{
		Path:        path,
		Method:      method,
		OperationID: operationID,
		Language:    language,
	})
	if err != nil {
		return renderError("Sample code retrieval error", err)
	}
	if detail == nil || detail.SampleCode == nil {
		return fmt.Sprintf("Sample code not found: %s (%s)", identifier(operationID, method, path), language)
	}
	return *detail.SampleCode
}

// execListSchemas runs list_schemas.
func (s *Server) execListSchemas(args arguments) string {
	query := args.str("query")
	schemaType := args.str("schema_type")
	limit := args.num("limit", search.DefaultSearchLimit)

	schemas, err := s.engine.SearchSchemas(query, schemaType, limit)
	if err != nil {
		return renderError("Schema search error", err)
	}

	s.recorder.RecordSearch(query, "list_schemas", len(schemas))

	if len(schemas) == 0 {
		return noSchemasFound
	}
	return marshalJSON(schemas)
}

// execGetSchemaDetail runs get_schema_detail.
func (s *Server) execGetSchemaDetail(args arguments) string {
	name := args.str("schema_name")
	if name == "" {
		return schemaNameMissing
	}

	detail, err := s.engine.GetSchemaDetail(name)
	if err != nil {
		return renderError("Schema detail retrieval error", err)
	}
	if detail == nil {
		return fmt.Sprintf("Schema not found: %s", name)
	}
	return marshalJSON(detail)
}

// identifier formats the endpoint identifier for not-found messages.
func identifier(operationID, method, path string) string {
	if operationID != "" {
		return operationID
	}
	return fmt.Sprintf("%s %s", method, path)
}

// renderError converts an engine error into tool text. A missing search
// database keeps its own actionable message; everything else is prefixed
// and logged.
func renderError(prefix string, err error) string {
	var notFound *config.DatabaseNotFoundError
	if errors.As(err, &notFound) {
		return notFound.Error()
	}

	log.Printf("%s: %v", prefix, err)
	return fmt.Sprintf("%s: %v", prefix, err)
}

func marshalJSON(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return renderError("Serialization error", err)
	}
	return string(data)
}
