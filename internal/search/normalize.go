package search

import "strings"

// Query carries one search_apis invocation. At most one of Text, PathQuery
// and DescriptionQuery is honored, by strict priority: a non-blank Text
// wins, then PathQuery, then DescriptionQuery. The losers are ignored even
// when supplied.
type Query struct {
	// Text is the natural-language query.
	Text string

	// PathQuery matches against the endpoint path only.
	PathQuery string

	// DescriptionQuery matches against summary and description.
	DescriptionQuery string

	// TagFilter narrows results to endpoints whose tag list contains the
	// value as a case-insensitive substring.
	TagFilter string

	// MethodFilter narrows results to one HTTP method, compared exactly
	// after upper-casing.
	MethodFilter string

	// Limit caps the result count. Values outside [1, 100] fall back to
	// DefaultSearchLimit.
	Limit int
}

type searchMode int

const (
	modeNone searchMode = iota
	modeNatural
	modePath
	modeDescription
)

// mode selects the strategy for this query. Empty inputs across the board
// mean no search at all, which callers turn into an empty result set
// without touching the store.
func (q Query) mode() searchMode {
	switch {
	case strings.TrimSpace(q.Text) != "":
		return modeNatural
	case q.PathQuery != "":
		return modePath
	case q.DescriptionQuery != "":
		return modeDescription
	default:
		return modeNone
	}
}

// tokenize lower-cases free text and splits it on whitespace. Tokens are
// not deduplicated: a repeated word contributes its bonus once per
// occurrence.
func tokenize(text string) []string {
	return strings.Fields(strings.ToLower(text))
}

// containsFold reports whether needle appears anywhere inside haystack,
// case-insensitively. Substring semantics, not token-boundary: "cat"
// matches "category".
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
