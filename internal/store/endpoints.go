package store

import (
	"database/sql"
	"fmt"
	"strings"
)

const endpointColumns = `path, method, operation_id, summary, description, tags,
	parameters, request_body, responses, sample_languages, sample_codes,
	search_content`

// EndpointsBySearchTokens returns every endpoint whose search_content
// contains at least one of the given tokens (OR semantics), narrowed by the
// filters.
//
// The OR is load-bearing for recall: a row shortlisted by a single loose
// token match can still outscore rows matched by the full phrase, so
// membership must not be tightened to an AND. No LIMIT is applied here;
// ranking and truncation happen after scoring.
func (s *Store) EndpointsBySearchTokens(tokens []string, filters EndpointFilters) ([]EndpointRow, error) {
	if len(tokens) == 0 {
		return nil, nil
	}

	conditions := make([]string, 0, len(tokens))
	args := make([]any, 0, len(tokens)+2)
	for _, token := range tokens {
		conditions = append(conditions, "LOWER(search_content) LIKE ?")
		args = append(args, likePattern(token))
	}

	where := "(" + strings.Join(conditions, " OR ") + ")"
	where, args = appendFilters(where, args, filters)

	return s.queryEndpoints(where, args)
}

// EndpointsByPathSubstring returns endpoints whose path contains substr,
// narrowed by the method filter. Tag filtering does not apply to path
// search.
func (s *Store) EndpointsByPathSubstring(substr string, filters EndpointFilters) ([]EndpointRow, error) {
	where := "LOWER(path) LIKE ?"
	args := []any{likePattern(substr)}
	where, args = appendFilters(where, args, EndpointFilters{Method: filters.Method})

	return s.queryEndpoints(where, args)
}

// EndpointsByTextSubstring returns endpoints whose summary or description
// contains text, narrowed by the filters.
func (s *Store) EndpointsByTextSubstring(text string, filters EndpointFilters) ([]EndpointRow, error) {
	where := "(LOWER(summary) LIKE ? OR LOWER(description) LIKE ?)"
	args := []any{likePattern(text), likePattern(text)}
	where, args = appendFilters(where, args, filters)

	return s.queryEndpoints(where, args)
}

// EndpointByOperationID returns the endpoint with the given operation id,
// or nil when absent.
func (s *Store) EndpointByOperationID(operationID string) (*EndpointRow, error) {
	return s.queryOneEndpoint("operation_id = ?", []any{operationID})
}

// EndpointByPathAndMethod returns the endpoint for the exact (path, method)
// pair, or nil when absent. Method must already be upper-cased.
func (s *Store) EndpointByPathAndMethod(path, method string) (*EndpointRow, error) {
	return s.queryOneEndpoint("path = ? AND method = ?", []any{path, method})
}

// appendFilters ANDs the optional method and tag predicates onto where.
func appendFilters(where string, args []any, filters EndpointFilters) (string, []any) {
	if filters.Method != "" {
		where += " AND method = ?"
		args = append(args, strings.ToUpper(filters.Method))
	}
	if filters.Tag != "" {
		where += " AND LOWER(tags) LIKE ?"
		args = append(args, likePattern(filters.Tag))
	}
	return where, args
}

func (s *Store) queryEndpoints(where string, args []any) ([]EndpointRow, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf("SELECT %s FROM api_endpoints WHERE %s ORDER BY path ASC", endpointColumns, where)
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("endpoint query failed: %w", err)
	}
	defer rows.Close()

	var result []EndpointRow
	for rows.Next() {
		row, err := scanEndpoint(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("endpoint query failed: %w", err)
	}
	return result, nil
}

func (s *Store) queryOneEndpoint(where string, args []any) (*EndpointRow, error) {
	rows, err := s.queryEndpoints(where, args)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

// scanner is the subset of *sql.Rows / *sql.Row used by scanEndpoint.
type scanner interface {
	Scan(dest ...any) error
}

func scanEndpoint(sc scanner) (EndpointRow, error) {
	var row EndpointRow
	var operationID, requestBody sql.NullString

	err := sc.Scan(
		&row.Path,
		&row.Method,
		&operationID,
		&row.Summary,
		&row.Description,
		&row.Tags,
		&row.Parameters,
		&requestBody,
		&row.Responses,
		&row.SampleLanguages,
		&row.SampleCodes,
		&row.SearchContent,
	)
	if err != nil {
		return EndpointRow{}, fmt.Errorf("failed to scan endpoint row: %w", err)
	}

	row.OperationID = operationID
	row.RequestBody = requestBody
	return row, nil
}
