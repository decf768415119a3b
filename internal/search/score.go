/*
Relevance scoring for the three search strategies.

Natural-language scoring is two-level: a coarse tier score for the whole
query phrase, plus a bonus per individual query word. The tier rewards
records whose high-value fields contain the exact phrase; the per-word sum
keeps records competitive when they contain every word but not the phrase.
The original system computed this inside a generated SQL CASE expression;
here it is plain control flow over rows already fetched from the store.
*/
package search

import (
	"sort"

	"github.com/watahani/authlete-mcp/internal/store"
)

// Tier scores for the full query phrase, mutually exclusive, first match
// wins.
const (
	tierSearchContent = 150
	tierSummary       = 120
	tierPath          = 100
	tierDescription   = 80
	tierNoPhrase      = 10
)

// Per-token bonuses. Only the highest applicable bonus counts per token,
// checked in this order.
const (
	bonusSummary       = 15
	bonusPath          = 12
	bonusDescription   = 8
	bonusSearchContent = 5
)

// scoreNatural computes tier + per-token bonuses for one candidate row.
// phrase is the full lower-cased query; tokens are its whitespace splits.
func scoreNatural(row store.EndpointRow, phrase string, tokens []string) float64 {
	var score float64

	switch {
	case containsFold(row.SearchContent, phrase):
		score = tierSearchContent
	case containsFold(row.Summary, phrase):
		score = tierSummary
	case containsFold(row.Path, phrase):
		score = tierPath
	case containsFold(row.Description, phrase):
		score = tierDescription
	default:
		score = tierNoPhrase
	}

	for _, token := range tokens {
		switch {
		case containsFold(row.Summary, token):
			score += bonusSummary
		case containsFold(row.Path, token):
			score += bonusPath
		case containsFold(row.Description, token):
			score += bonusDescription
		case containsFold(row.SearchContent, token):
			score += bonusSearchContent
		}
	}

	return score
}

// scorePath ranks path-mode candidates: exact path match, then substring
// match. The final 50 is a floor for rows the store returned without a
// path match; the prefilter already requires the substring, so it is not
// reachable in practice.
func scorePath(row store.EndpointRow, pathQuery string) float64 {
	switch {
	case row.Path == pathQuery:
		return 100
	case containsFold(row.Path, pathQuery):
		return 80
	default:
		return 50
	}
}

// scoreDescription ranks description-mode candidates. Rows reach here via
// the summary-or-description substring prefilter, so 30 is the score for
// rows matched only through the WHERE clause.
func scoreDescription(row store.EndpointRow, descQuery string) float64 {
	switch {
	case containsFold(row.Summary, descQuery):
		return 100
	case containsFold(row.Description, descQuery):
		return 90
	default:
		return 30
	}
}

// sortResults orders by score descending, ties broken by path ascending.
func sortResults(results []Result) {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Path < results[j].Path
	})
}
