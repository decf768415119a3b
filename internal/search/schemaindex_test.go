package search

import (
	"testing"

	"github.com/watahani/authlete-mcp/internal/store"
)

func newTestSchemaIndex(t *testing.T) *SchemaIndex {
	t.Helper()

	idx, err := NewSchemaIndex()
	if err != nil {
		t.Fatalf("failed to create index: %v", err)
	}
	t.Cleanup(func() { idx.Close() })

	rows := []store.SchemaRow{
		{
			SchemaName:    "AccessToken",
			SchemaType:    "object",
			Title:         "Access Token",
			Description:   "An issued access token.",
			SearchContent: "AccessToken Access Token An issued access token. object accessToken",
		},
		{
			SchemaName:    "GrantType",
			SchemaType:    "string",
			Title:         "Grant Type",
			Description:   "Supported grant types.",
			SearchContent: "GrantType Grant Type Supported grant types. string",
		},
	}
	if err := idx.Add(rows); err != nil {
		t.Fatalf("failed to index rows: %v", err)
	}

	return idx
}

func TestSchemaIndexSearch(t *testing.T) {
	idx := newTestSchemaIndex(t)

	hits, err := idx.Search("access token", "", 10)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(hits) != 1 {
		t.Fatalf("expected 1 hit, got %d", len(hits))
	}

	hit := hits[0]
	if hit.SchemaName != "AccessToken" {
		t.Errorf("schema name = %s", hit.SchemaName)
	}
	if hit.SchemaType != "object" {
		t.Errorf("schema type = %s", hit.SchemaType)
	}
	if hit.Title != "Access Token" {
		t.Errorf("title = %s", hit.Title)
	}
	if hit.Score <= 0 {
		t.Errorf("score = %v", hit.Score)
	}
}

func TestSchemaIndexSearch_TypeFilter(t *testing.T) {
	idx := newTestSchemaIndex(t)

	// "grant" hits GrantType; the object filter must exclude it.
	hits, err := idx.Search("grant", "object", 10)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(hits) != 0 {
		t.Errorf("type filter leaked: %+v", hits)
	}

	hits, err = idx.Search("grant", "string", 10)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(hits) != 1 || hits[0].SchemaName != "GrantType" {
		t.Errorf("unexpected hits: %+v", hits)
	}
}

func TestSchemaIndexSearch_NoMatch(t *testing.T) {
	idx := newTestSchemaIndex(t)

	hits, err := idx.Search("nonexistent", "", 10)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(hits) != 0 {
		t.Errorf("expected no hits, got %+v", hits)
	}
}

func TestSchemaIndexCount(t *testing.T) {
	idx := newTestSchemaIndex(t)

	count, err := idx.Count()
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
}
