package history

import (
	"database/sql"
	"path/filepath"
	"testing"
)

func TestRecordSearch(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")
	r := NewRecorder(dbPath)
	defer r.Close()

	r.RecordSearch("revoke token", "search_apis", 3)
	r.RecordSearch("client", "list_schemas", 0)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to open history database: %v", err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM search_history").Scan(&count); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 events, got %d", count)
	}

	// Queries are stored hashed, never as plain text.
	var queryHash, mode string
	var results int
	err = db.QueryRow(
		"SELECT query_hash, mode, results_count FROM search_history WHERE mode = 'search_apis'",
	).Scan(&queryHash, &mode, &results)
	if err != nil {
		t.Fatalf("select failed: %v", err)
	}
	if queryHash != HashQuery("revoke token") {
		t.Errorf("query hash = %s", queryHash)
	}
	if queryHash == "revoke token" {
		t.Error("query stored as plain text")
	}
	if results != 3 {
		t.Errorf("results count = %d", results)
	}
}

func TestRecorderDisabled(t *testing.T) {
	r := NewRecorder("")
	defer r.Close()

	// Must be a no-op, not a crash.
	r.RecordSearch("revoke", "search_apis", 1)
}

func TestNilRecorder(t *testing.T) {
	var r *Recorder

	r.RecordSearch("revoke", "search_apis", 1)
	if err := r.Close(); err != nil {
		t.Errorf("close failed: %v", err)
	}
}

func TestCloseBeforeUse(t *testing.T) {
	r := NewRecorder(filepath.Join(t.TempDir(), "history.db"))
	if err := r.Close(); err != nil {
		t.Errorf("close failed: %v", err)
	}
}

func TestHashQuery(t *testing.T) {
	a := HashQuery("revoke token")
	b := HashQuery("revoke token")
	c := HashQuery("revoke tokens")

	if a != b {
		t.Error("hash is not deterministic")
	}
	if a == c {
		t.Error("distinct queries collided")
	}
	if len(a) != 64 {
		t.Errorf("hash length = %d, want 64", len(a))
	}
}
