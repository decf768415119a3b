/*
Package store implements the SQLite-backed endpoint and schema catalogue.

The database file is produced once by the 'index' subcommand and is treated
as read-only afterwards: the search engine only issues SELECTs against it.
It uses modernc.org/sqlite (a pure Go, CGo-free implementation).

The connection is opened lazily on first query and reused for the process
lifetime. All text matching uses case-insensitive substring semantics
(LIKE '%token%'), not token-boundary matching: "cat" matches "category".
This is a deliberate, documented imprecision.
*/
package store

import (
	"database/sql"
	"fmt"
	"os"
	"strings"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/watahani/authlete-mcp/internal/config"
)

// Store provides read access to the endpoint and schema tables.
type Store struct {
	path string

	once    sync.Once
	db      *sql.DB
	openErr error
}

// New creates a Store for the database at path. The file is not touched
// until the first query; a missing artifact surfaces as
// *config.DatabaseNotFoundError at that point.
func New(path string) *Store {
	return &Store{path: path}
}

// NewWithDB wraps an already open database handle. Used by the ingest
// builder (which writes through the same schema) and by test fixtures.
func NewWithDB(db *sql.DB) *Store {
	s := &Store{}
	s.once.Do(func() { s.db = db })
	return s
}

// conn returns the lazily opened database handle.
func (s *Store) conn() (*sql.DB, error) {
	s.once.Do(func() {
		if _, err := os.Stat(s.path); err != nil {
			s.openErr = &config.DatabaseNotFoundError{Path: s.path}
			return
		}

		db, err := sql.Open("sqlite", s.path)
		if err != nil {
			s.openErr = fmt.Errorf("failed to open search database: %w", err)
			return
		}
		if err := db.Ping(); err != nil {
			s.openErr = fmt.Errorf("failed to ping search database: %w", err)
			return
		}
		s.db = db
	})

	if s.openErr != nil {
		return nil, s.openErr
	}
	return s.db, nil
}

// Close closes the underlying connection. Safe to call before first use.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close search database: %w", err)
	}
	s.db = nil
	return nil
}

// likePattern wraps a lowercased term in LIKE wildcards.
func likePattern(term string) string {
	return "%" + strings.ToLower(term) + "%"
}
