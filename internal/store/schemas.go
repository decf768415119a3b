package store

import (
	"fmt"
	"strings"
)

const schemaColumns = `schema_name, schema_type, title, description,
	properties, required_fields, example_value, search_content`

// AllSchemas returns schema rows ordered by name ascending. limit <= 0
// means no limit (used when building the full-text index).
func (s *Store) AllSchemas(limit int) ([]SchemaRow, error) {
	where := "1=1"
	var args []any
	return s.querySchemas(where, args, limit)
}

// SchemasByTokens is the substring fallback scan: every schema whose
// search_content contains at least one token, optionally narrowed to one
// schema type, ordered by name ascending.
func (s *Store) SchemasByTokens(tokens []string, schemaType string, limit int) ([]SchemaRow, error) {
	var conditions []string
	var args []any
	for _, token := range tokens {
		conditions = append(conditions, "LOWER(search_content) LIKE ?")
		args = append(args, likePattern(token))
	}

	where := "1=1"
	if len(conditions) > 0 {
		where = "(" + strings.Join(conditions, " OR ") + ")"
	}
	if schemaType != "" {
		where += " AND schema_type = ?"
		args = append(args, schemaType)
	}

	return s.querySchemas(where, args, limit)
}

// SchemasByType returns schemas of one type ordered by name ascending.
func (s *Store) SchemasByType(schemaType string, limit int) ([]SchemaRow, error) {
	return s.querySchemas("schema_type = ?", []any{schemaType}, limit)
}

// SchemaByName returns the schema with the given name, or nil when absent.
func (s *Store) SchemaByName(name string) (*SchemaRow, error) {
	rows, err := s.querySchemas("schema_name = ?", []any{name}, 1)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (s *Store) querySchemas(where string, args []any, limit int) ([]SchemaRow, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf("SELECT %s FROM api_schemas WHERE %s ORDER BY schema_name ASC", schemaColumns, where)
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("schema query failed: %w", err)
	}
	defer rows.Close()

	var result []SchemaRow
	for rows.Next() {
		var row SchemaRow
		err := rows.Scan(
			&row.SchemaName,
			&row.SchemaType,
			&row.Title,
			&row.Description,
			&row.Properties,
			&row.RequiredFields,
			&row.ExampleValue,
			&row.SearchContent,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan schema row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("schema query failed: %w", err)
	}
	return result, nil
}
