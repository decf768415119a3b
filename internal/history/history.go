/*
Package history records search analytics in a side SQLite database.

Queries are stored as SHA-256 hashes, never as plain text. Recording is
best-effort with graceful degradation: if the database cannot be opened or
written, the recorder disables itself and every call becomes a no-op. The
catalogue database is never touched; analytics live in their own file
(~/.authlete-mcp/history.db by default).
*/
package history

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Recorder writes search events. A nil or disabled Recorder is safe to
// use.
type Recorder struct {
	dbPath  string
	enabled bool

	mu       sync.Mutex
	initOnce sync.Once
	db       *sql.DB
}

// NewRecorder creates a Recorder for the given database path. An empty
// path yields a disabled recorder.
func NewRecorder(dbPath string) *Recorder {
	return &Recorder{dbPath: dbPath, enabled: dbPath != ""}
}

// init opens the database and creates the table on first use.
func (r *Recorder) init() {
	r.initOnce.Do(func() {
		if err := os.MkdirAll(filepath.Dir(r.dbPath), 0755); err != nil {
			log.Printf("Warning: search history disabled: %v", err)
			r.enabled = false
			return
		}

		db, err := sql.Open("sqlite", r.dbPath)
		if err != nil {
			log.Printf("Warning: search history disabled: %v", err)
			r.enabled = false
			return
		}

		_, err = db.Exec(`
			CREATE TABLE IF NOT EXISTS search_history (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				search_id TEXT NOT NULL UNIQUE,
				query_hash TEXT NOT NULL,
				mode TEXT NOT NULL,
				timestamp TEXT NOT NULL,
				results_count INTEGER NOT NULL
			)
		`)
		if err != nil {
			log.Printf("Warning: search history disabled: %v", err)
			db.Close()
			r.enabled = false
			return
		}

		r.db = db
	})
}

// RecordSearch stores one search event. Failures are logged, never
// returned: analytics must not affect search behavior.
func (r *Recorder) RecordSearch(query, mode string, resultsCount int) {
	if r == nil || !r.enabled {
		return
	}
	r.init()
	if !r.enabled {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`
		INSERT INTO search_history (search_id, query_hash, mode, timestamp, results_count)
		VALUES (?, ?, ?, ?, ?)`,
		uuid.NewString(),
		HashQuery(query),
		mode,
		time.Now().UTC().Format(time.RFC3339),
		resultsCount,
	)
	if err != nil {
		log.Printf("Warning: failed to record search: %v", err)
	}
}

// Close closes the database connection. Safe before first use.
func (r *Recorder) Close() error {
	if r == nil || r.db == nil {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.db.Close(); err != nil {
		return fmt.Errorf("failed to close history database: %w", err)
	}
	r.db = nil
	return nil
}

// HashQuery creates a SHA-256 hash of a query string for privacy.
func HashQuery(query string) string {
	hash := sha256.Sum256([]byte(query))
	return hex.EncodeToString(hash[:])
}
