package ingest

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/watahani/authlete-mcp/internal/store"
)

// Stats summarizes one build run.
type Stats struct {
	Endpoints int
	Schemas   int
}

// Build parses the OpenAPI document at specPath and writes a fresh search
// database to dbPath, replacing any existing file. This is the only write
// path for the catalogue; the server opens the result read-only.
func Build(specPath, dbPath string) (*Stats, error) {
	doc, err := LoadDocument(specPath)
	if err != nil {
		return nil, err
	}

	endpoints, err := ExtractEndpoints(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to extract endpoints: %w", err)
	}
	schemas, err := ExtractSchemas(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to extract schemas: %w", err)
	}

	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// Rebuild from scratch so removed operations do not linger.
	if err := os.Remove(dbPath); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to remove previous database: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create database: %w", err)
	}
	defer db.Close()

	st := store.NewWithDB(db)
	if err := st.CreateTables(); err != nil {
		return nil, err
	}

	for _, row := range endpoints {
		if err := st.InsertEndpoint(row); err != nil {
			return nil, err
		}
	}
	for _, row := range schemas {
		if err := st.InsertSchema(row); err != nil {
			return nil, err
		}
	}

	log.Printf("Indexed %d endpoints and %d schemas into %s", len(endpoints), len(schemas), dbPath)
	return &Stats{Endpoints: len(endpoints), Schemas: len(schemas)}, nil
}
