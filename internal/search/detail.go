package search

import (
	"encoding/json"
	"strings"

	"github.com/watahani/authlete-mcp/internal/store"
)

// DetailRequest identifies one endpoint, either by operation id or by the
// (path, method) pair, plus optional presentation knobs.
type DetailRequest struct {
	Path        string
	Method      string
	OperationID string

	// Language selects one sample-code entry. Empty means no sample code
	// is resolved.
	Language string

	// DescriptionStyle is one of full, none, line_range,
	// summary_and_headers. Empty and unknown values mean full.
	DescriptionStyle string

	// LineStart/LineEnd bound the line_range style (1-based, inclusive).
	LineStart int
	LineEnd   int

	// BodyStyle is one of full, none, schema_only. Empty and unknown
	// values mean full. Applies to both request body and responses.
	BodyStyle string
}

// Detail is the fully expanded endpoint projection.
type Detail struct {
	Path        string         `json:"path"`
	Method      string         `json:"method"`
	OperationID string         `json:"operation_id"`
	Summary     string         `json:"summary"`
	Description *string        `json:"description"`
	Tags        []string       `json:"tags"`
	Parameters  []any          `json:"parameters"`
	RequestBody any            `json:"request_body"`
	Responses   map[string]any `json:"responses"`
	SampleCode  *string        `json:"sample_code"`
}

// APIDetail looks up one endpoint and reconstructs its nested structures
// from the serialized columns. Returns (nil, nil) when no identifier is
// usable or no record matches; callers render that as "not found".
//
// A serialized column that fails to parse falls back to that field's empty
// default; one bad column never fails the whole lookup.
func (e *Engine) APIDetail(req DetailRequest) (*Detail, error) {
	var row *store.EndpointRow
	var err error

	switch {
	case req.OperationID != "":
		row, err = e.store.EndpointByOperationID(req.OperationID)
	case req.Path != "" && req.Method != "":
		row, err = e.store.EndpointByPathAndMethod(req.Path, strings.ToUpper(req.Method))
	default:
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, nil
	}

	detail := &Detail{
		Path:        row.Path,
		Method:      row.Method,
		OperationID: row.OperationID.String,
		Summary:     row.Summary,
		Tags:        decodeStringList(row.Tags),
		Parameters:  decodeList(row.Parameters),
		RequestBody: decodeValue(row.RequestBody.String),
		Responses:   decodeMap(row.Responses),
	}

	description := FilterDescription(row.Description, ParseDescriptionStyle(req.DescriptionStyle), req.LineStart, req.LineEnd)
	detail.Description = description

	bodyStyle := ParseBodyStyle(req.BodyStyle)
	detail.RequestBody = FilterBody(detail.RequestBody, bodyStyle)
	if filtered, ok := FilterBody(detail.Responses, bodyStyle).(map[string]any); ok {
		detail.Responses = filtered
	} else {
		detail.Responses = nil
	}

	if req.Language != "" {
		codes := decodeStringMap(row.SampleCodes)
		if code, ok := codes[req.Language]; ok {
			detail.SampleCode = &code
		}
	}

	return detail, nil
}

// decodeList parses a JSON array column; malformed or blank input yields
// an empty list.
func decodeList(raw string) []any {
	if raw == "" {
		return []any{}
	}
	var list []any
	if err := json.Unmarshal([]byte(raw), &list); err != nil || list == nil {
		return []any{}
	}
	return list
}

// decodeMap parses a JSON object column; malformed or blank input yields
// an empty map.
func decodeMap(raw string) map[string]any {
	if raw == "" {
		return map[string]any{}
	}
	var m map[string]any
	if err := json.Unmarshal([]byte(raw), &m); err != nil || m == nil {
		return map[string]any{}
	}
	return m
}

// decodeStringMap parses a JSON object of strings (the language to sample
// code mapping); malformed or blank input yields an empty map.
func decodeStringMap(raw string) map[string]string {
	if raw == "" {
		return map[string]string{}
	}
	var m map[string]string
	if err := json.Unmarshal([]byte(raw), &m); err != nil || m == nil {
		return map[string]string{}
	}
	return m
}

// decodeValue parses an optional JSON column into an arbitrary value;
// malformed or blank input yields nil.
func decodeValue(raw string) any {
	if raw == "" {
		return nil
	}
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return nil
	}
	return v
}
