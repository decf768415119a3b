/*
Package search implements relevance-ranked search and detail retrieval over
the Authlete API endpoint catalogue.

Three mutually exclusive strategies retrieve candidates from the store:
natural-language (OR-of-tokens prefilter plus tier/bonus scoring), path
substring search, and description substring search. A separate, simpler
path serves the schema table, preferring a full-text index and falling back
to a substring scan.
*/
package search

import (
	"strings"

	"github.com/watahani/authlete-mcp/internal/store"
)

// DefaultSearchLimit is used when the caller supplies a limit outside
// [1, MaxSearchLimit].
const DefaultSearchLimit = 20

// MaxSearchLimit is the largest accepted result count.
const MaxSearchLimit = 100

// Engine owns the store handle and the schema full-text index. Construct
// one per process and share it; all methods are safe for concurrent use.
type Engine struct {
	store   *store.Store
	schemas *SchemaIndex
}

// New creates an Engine over the given store. The schema full-text index
// starts empty; WarmSchemaIndex populates it once the store is reachable.
func New(st *store.Store) (*Engine, error) {
	idx, err := NewSchemaIndex()
	if err != nil {
		return nil, err
	}
	return &Engine{store: st, schemas: idx}, nil
}

// Store exposes the underlying store, used by the benchmark command.
func (e *Engine) Store() *store.Store {
	return e.store
}

// Close releases the schema index. The store is closed by its owner.
func (e *Engine) Close() error {
	return e.schemas.Close()
}

// SearchAPIs runs one search according to the query's mode and returns
// ranked, formatted results. An empty query set returns an empty list
// without touching the store. Errors are store or index failures; "no
// matches" is a nil error with an empty list.
func (e *Engine) SearchAPIs(q Query) ([]Result, error) {
	limit := clampLimit(q.Limit)

	filters := store.EndpointFilters{
		Method: q.MethodFilter,
		Tag:    q.TagFilter,
	}

	switch q.mode() {
	case modeNatural:
		return e.naturalLanguageSearch(q.Text, filters, limit)
	case modePath:
		return e.pathSearch(q.PathQuery, filters, limit)
	case modeDescription:
		return e.descriptionSearch(q.DescriptionQuery, filters, limit)
	default:
		return []Result{}, nil
	}
}

// naturalLanguageSearch shortlists rows containing any query token, then
// ranks them with the tier/bonus scheme. The shortlist is deliberately
// looser than the scoring: one loose token match is enough for membership.
func (e *Engine) naturalLanguageSearch(text string, filters store.EndpointFilters, limit int) ([]Result, error) {
	phrase := strings.ToLower(text)
	tokens := tokenize(text)

	rows, err := e.store.EndpointsBySearchTokens(tokens, filters)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(rows))
	for _, row := range rows {
		results = append(results, formatResult(row, scoreNatural(row, phrase, tokens)))
	}

	sortResults(results)
	return truncate(results, limit), nil
}

func (e *Engine) pathSearch(pathQuery string, filters store.EndpointFilters, limit int) ([]Result, error) {
	rows, err := e.store.EndpointsByPathSubstring(pathQuery, filters)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(rows))
	for _, row := range rows {
		results = append(results, formatResult(row, scorePath(row, pathQuery)))
	}

	sortResults(results)
	return truncate(results, limit), nil
}

func (e *Engine) descriptionSearch(descQuery string, filters store.EndpointFilters, limit int) ([]Result, error) {
	rows, err := e.store.EndpointsByTextSubstring(descQuery, filters)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(rows))
	for _, row := range rows {
		results = append(results, formatResult(row, scoreDescription(row, descQuery)))
	}

	sortResults(results)
	return truncate(results, limit), nil
}

// clampLimit applies the endpoint-search clamping rule: out-of-range
// limits silently fall back to the default rather than being rejected.
func clampLimit(limit int) int {
	if limit < 1 || limit > MaxSearchLimit {
		return DefaultSearchLimit
	}
	return limit
}

func truncate(results []Result, limit int) []Result {
	if len(results) > limit {
		return results[:limit]
	}
	return results
}
