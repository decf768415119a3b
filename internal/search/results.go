package search

import (
	"encoding/json"

	"github.com/watahani/authlete-mcp/internal/store"
)

// descriptionPreviewLen is how many characters of the description survive
// into a search result. Full descriptions can be multi-paragraph markdown;
// the search view is a preview, full text comes from the detail lookup.
const descriptionPreviewLen = 100

// Result is the search projection of one endpoint.
type Result struct {
	Path            string   `json:"path"`
	Method          string   `json:"method"`
	OperationID     string   `json:"operation_id"`
	Summary         string   `json:"summary"`
	Description     string   `json:"description"`
	Tags            []string `json:"tags"`
	SampleLanguages []string `json:"sample_languages"`
	Score           float64  `json:"score"`
}

// formatResult shapes a raw row into the public result form: nil containers
// become empty lists and the description is truncated to a preview.
func formatResult(row store.EndpointRow, score float64) Result {
	return Result{
		Path:            row.Path,
		Method:          row.Method,
		OperationID:     row.OperationID.String,
		Summary:         row.Summary,
		Description:     truncateDescription(row.Description),
		Tags:            decodeStringList(row.Tags),
		SampleLanguages: decodeStringList(row.SampleLanguages),
		Score:           score,
	}
}

// truncateDescription keeps the first descriptionPreviewLen characters and
// appends an ellipsis when anything was cut, so a truncated description is
// 103 characters long.
func truncateDescription(description string) string {
	runes := []rune(description)
	if len(runes) <= descriptionPreviewLen {
		return description
	}
	return string(runes[:descriptionPreviewLen]) + "..."
}

// decodeStringList parses a JSON array column, falling back to an empty
// (never nil) list when the column is blank or malformed.
func decodeStringList(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err != nil || list == nil {
		return []string{}
	}
	return list
}
