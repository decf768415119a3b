package search

import (
	"encoding/json"
	"log"

	"github.com/watahani/authlete-mcp/internal/store"
)

// SchemaResult is the search projection of one schema record.
type SchemaResult struct {
	SchemaName  string  `json:"schema_name"`
	SchemaType  string  `json:"schema_type"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Score       float64 `json:"score"`
}

// SchemaDetail is the fully expanded schema projection.
type SchemaDetail struct {
	SchemaName     string         `json:"schema_name"`
	SchemaType     string         `json:"schema_type"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	Properties     map[string]any `json:"properties"`
	RequiredFields []string       `json:"required_fields"`
	Example        any            `json:"example"`
}

// WarmSchemaIndex loads every schema row into the full-text index. Called
// once after construction; a failure leaves the index empty and schema
// search falls back to substring scans.
func (e *Engine) WarmSchemaIndex() error {
	rows, err := e.store.AllSchemas(0)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	return e.schemas.Add(rows)
}

// SearchSchemas searches the schema table. With neither query nor type it
// returns all schemas ordered by name ascending (unlike endpoint search,
// no input is not an empty result here). A query prefers the full-text
// index's ranking; zero index hits fall back to an OR-of-tokens substring
// scan with the score fixed at 0.
func (e *Engine) SearchSchemas(query, schemaType string, limit int) ([]SchemaResult, error) {
	limit = clampSchemaLimit(limit)

	if query == "" && schemaType == "" {
		rows, err := e.store.AllSchemas(limit)
		if err != nil {
			return nil, err
		}
		return schemaResultsFromRows(rows), nil
	}

	if query == "" {
		rows, err := e.store.SchemasByType(schemaType, limit)
		if err != nil {
			return nil, err
		}
		return schemaResultsFromRows(rows), nil
	}

	hits, err := e.schemas.Search(query, schemaType, limit)
	if err != nil {
		// Index failure degrades to the substring scan, same as zero hits.
		log.Printf("Warning: schema index search failed, falling back to scan: %v", err)
		hits = nil
	}
	if len(hits) > 0 {
		results := make([]SchemaResult, 0, len(hits))
		for _, hit := range hits {
			results = append(results, SchemaResult{
				SchemaName:  hit.SchemaName,
				SchemaType:  defaultSchemaType(hit.SchemaType),
				Title:       hit.Title,
				Description: hit.Description,
				Score:       hit.Score,
			})
		}
		return results, nil
	}

	rows, err := e.store.SchemasByTokens(tokenize(query), schemaType, limit)
	if err != nil {
		return nil, err
	}
	return schemaResultsFromRows(rows), nil
}

// GetSchemaDetail looks up one schema by name. Returns (nil, nil) when
// absent. Serialized columns fall back to their empty defaults on parse
// failure, except example_value which falls back to the raw stored text.
func (e *Engine) GetSchemaDetail(name string) (*SchemaDetail, error) {
	row, err := e.store.SchemaByName(name)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, nil
	}

	detail := &SchemaDetail{
		SchemaName:     row.SchemaName,
		SchemaType:     defaultSchemaType(row.SchemaType),
		Title:          row.Title,
		Description:    row.Description,
		Properties:     decodeMap(row.Properties),
		RequiredFields: decodeStringList(row.RequiredFields),
	}

	if row.ExampleValue.Valid && row.ExampleValue.String != "" {
		var example any
		if err := json.Unmarshal([]byte(row.ExampleValue.String), &example); err != nil {
			// Not valid JSON; surface the raw text rather than dropping it.
			detail.Example = row.ExampleValue.String
		} else {
			detail.Example = example
		}
	}

	return detail, nil
}

// schemaResultsFromRows projects store rows at score 0 (the fallback and
// browse paths carry no ranking signal).
func schemaResultsFromRows(rows []store.SchemaRow) []SchemaResult {
	results := make([]SchemaResult, 0, len(rows))
	for _, row := range rows {
		results = append(results, SchemaResult{
			SchemaName:  row.SchemaName,
			SchemaType:  defaultSchemaType(row.SchemaType),
			Title:       row.Title,
			Description: row.Description,
			Score:       0,
		})
	}
	return results
}

func defaultSchemaType(schemaType string) string {
	if schemaType == "" {
		return "object"
	}
	return schemaType
}

// clampSchemaLimit applies the schema-search clamping rule: values are
// pulled into [1, MaxSearchLimit] rather than reset to the default.
func clampSchemaLimit(limit int) int {
	if limit < 1 {
		return 1
	}
	if limit > MaxSearchLimit {
		return MaxSearchLimit
	}
	return limit
}
