package store

import (
	"fmt"
)

// DDL for the two catalogue tables. Owned here so the ingest builder and
// test fixtures share one definition.
const (
	createEndpointsTable = `
		CREATE TABLE IF NOT EXISTS api_endpoints (
			id INTEGER PRIMARY KEY,
			path TEXT NOT NULL,
			method TEXT NOT NULL,
			operation_id TEXT,
			summary TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			tags TEXT NOT NULL DEFAULT '[]',
			parameters TEXT NOT NULL DEFAULT '[]',
			request_body TEXT,
			responses TEXT NOT NULL DEFAULT '{}',
			sample_languages TEXT NOT NULL DEFAULT '[]',
			sample_codes TEXT NOT NULL DEFAULT '{}',
			search_content TEXT NOT NULL,
			created_at TEXT NOT NULL DEFAULT (datetime('now')),
			UNIQUE (path, method)
		)
	`

	createSchemasTable = `
		CREATE TABLE IF NOT EXISTS api_schemas (
			id INTEGER PRIMARY KEY,
			schema_name TEXT NOT NULL UNIQUE,
			schema_type TEXT NOT NULL DEFAULT 'object',
			title TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			properties TEXT NOT NULL DEFAULT '{}',
			required_fields TEXT NOT NULL DEFAULT '[]',
			example_value TEXT,
			search_content TEXT NOT NULL,
			created_at TEXT NOT NULL DEFAULT (datetime('now'))
		)
	`
)

// CreateTables creates the catalogue tables and their lookup indexes.
func (s *Store) CreateTables() error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	statements := []string{
		createEndpointsTable,
		createSchemasTable,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_endpoints_operation_id
			ON api_endpoints(operation_id) WHERE operation_id IS NOT NULL`,
		`CREATE INDEX IF NOT EXISTS idx_endpoints_method ON api_endpoints(method)`,
		`CREATE INDEX IF NOT EXISTS idx_schemas_type ON api_schemas(schema_type)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create catalogue schema: %w", err)
		}
	}
	return nil
}

// InsertEndpoint writes one endpoint row. Only the ingest builder calls
// this; the search engine never mutates the store.
func (s *Store) InsertEndpoint(row EndpointRow) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	_, err = db.Exec(`
		INSERT INTO api_endpoints (
			path, method, operation_id, summary, description, tags,
			parameters, request_body, responses, sample_languages,
			sample_codes, search_content
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		row.Path,
		row.Method,
		row.OperationID,
		row.Summary,
		row.Description,
		row.Tags,
		row.Parameters,
		row.RequestBody,
		row.Responses,
		row.SampleLanguages,
		row.SampleCodes,
		row.SearchContent,
	)
	if err != nil {
		return fmt.Errorf("failed to insert endpoint %s %s: %w", row.Method, row.Path, err)
	}
	return nil
}

// InsertSchema writes one schema row.
func (s *Store) InsertSchema(row SchemaRow) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	_, err = db.Exec(`
		INSERT INTO api_schemas (
			schema_name, schema_type, title, description, properties,
			required_fields, example_value, search_content
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		row.SchemaName,
		row.SchemaType,
		row.Title,
		row.Description,
		row.Properties,
		row.RequiredFields,
		row.ExampleValue,
		row.SearchContent,
	)
	if err != nil {
		return fmt.Errorf("failed to insert schema %s: %w", row.SchemaName, err)
	}
	return nil
}
