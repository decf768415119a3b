package search

import (
	"database/sql"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/watahani/authlete-mcp/internal/store"
)

// newTestEngine builds an engine over a file-backed store seeded with a
// small endpoint/schema corpus and a warmed schema index.
func newTestEngine(t *testing.T) *Engine {
	t.Helper()

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	st := store.NewWithDB(db)
	if err := st.CreateTables(); err != nil {
		t.Fatalf("failed to create tables: %v", err)
	}

	endpoints := []store.EndpointRow{
		{
			Path:            "/api/{serviceId}/auth/token/revoke",
			Method:          "POST",
			OperationID:     sql.NullString{String: "auth_token_revoke_api", Valid: true},
			Summary:         "Revoke Access Token",
			Description:     "This API revokes access tokens and refresh tokens.",
			Tags:            `["Token Operations"]`,
			Parameters:      `[{"name":"serviceId","in":"path","required":true}]`,
			Responses:       `{"200":{"description":"OK","content":{"application/json":{"schema":{"type":"object"},"example":{"resultCode":"A113001"}}}}}`,
			SampleLanguages: `["curl","python"]`,
			SampleCodes:     `{"curl":"curl -X POST https://api.authlete.com/api/auth/token/revoke","python":"import requests"}`,
			SearchContent:   "/api/{serviceId}/auth/token/revoke Revoke Access Token This API revokes access tokens and refresh tokens. auth_token_revoke_api POST Token Operations serviceId",
		},
		{
			Path:            "/api/{serviceId}/auth/token",
			Method:          "POST",
			OperationID:     sql.NullString{String: "auth_token_api", Valid: true},
			Summary:         "Process Token Request",
			Description:     "This API processes token requests at the token endpoint.",
			Tags:            `["Token Operations"]`,
			Parameters:      `[]`,
			Responses:       `{"200":{"description":"OK"}}`,
			SampleLanguages: `[]`,
			SampleCodes:     `{}`,
			SearchContent:   "/api/{serviceId}/auth/token Process Token Request This API processes token requests at the token endpoint. auth_token_api POST Token Operations",
		},
		{
			Path:            "/api/{serviceId}/client/get/{clientId}",
			Method:          "GET",
			OperationID:     sql.NullString{String: "client_get_api", Valid: true},
			Summary:         "Get Client",
			Description:     "This API retrieves a client application.",
			Tags:            `["Client Management"]`,
			Parameters:      `[{"name":"clientId","in":"path","required":true}]`,
			Responses:       `{"200":{"description":"OK"}}`,
			SampleLanguages: `[]`,
			SampleCodes:     `{}`,
			SearchContent:   "/api/{serviceId}/client/get/{clientId} Get Client This API retrieves a client application. client_get_api GET Client Management clientId",
		},
	}
	for _, row := range endpoints {
		if err := st.InsertEndpoint(row); err != nil {
			t.Fatalf("failed to insert endpoint: %v", err)
		}
	}

	schemas := []store.SchemaRow{
		{
			SchemaName:     "AccessToken",
			SchemaType:     "object",
			Title:          "Access Token",
			Description:    "An issued access token.",
			Properties:     `{"accessToken":{"type":"string"},"expiresAt":{"type":"integer"}}`,
			RequiredFields: `["accessToken"]`,
			ExampleValue:   sql.NullString{String: `{"accessToken":"abc123"}`, Valid: true},
			SearchContent:  "AccessToken Access Token An issued access token. object accessToken expiresAt",
		},
		{
			SchemaName:     "Client",
			SchemaType:     "object",
			Title:          "Client",
			Description:    "A client application.",
			Properties:     `{"clientId":{"type":"integer"}}`,
			RequiredFields: `[]`,
			SearchContent:  "Client Client A client application. object clientId",
		},
		{
			SchemaName:     "GrantType",
			SchemaType:     "string",
			Title:          "Grant Type",
			Description:    "Supported grant types.",
			Properties:     `{}`,
			RequiredFields: `[]`,
			SearchContent:  "GrantType Grant Type Supported grant types. string",
		},
	}
	for _, row := range schemas {
		if err := st.InsertSchema(row); err != nil {
			t.Fatalf("failed to insert schema: %v", err)
		}
	}

	engine, err := New(st)
	if err != nil {
		t.Fatalf("failed to create engine: %v", err)
	}
	t.Cleanup(func() { engine.Close() })

	if err := engine.WarmSchemaIndex(); err != nil {
		t.Fatalf("failed to warm schema index: %v", err)
	}

	return engine
}

func TestSearchAPIs_EmptyQuery(t *testing.T) {
	engine := newTestEngine(t)

	results, err := engine.SearchAPIs(Query{})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if results == nil {
		t.Fatal("expected empty list, got nil")
	}
	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}

func TestSearchAPIs_NaturalRanking(t *testing.T) {
	engine := newTestEngine(t)

	results, err := engine.SearchAPIs(Query{Text: "revoke token"})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("expected results")
	}
	if results[0].Path != "/api/{serviceId}/auth/token/revoke" {
		t.Errorf("top result = %s", results[0].Path)
	}
	if len(results) > 1 && results[0].Score <= results[1].Score {
		t.Errorf("revocation endpoint did not outrank: %v vs %v", results[0].Score, results[1].Score)
	}
	for i := 1; i < len(results); i++ {
		if results[i-1].Score < results[i].Score {
			t.Errorf("results not sorted by score: %v before %v", results[i-1].Score, results[i].Score)
		}
	}
}

func TestSearchAPIs_CaseInsensitive(t *testing.T) {
	engine := newTestEngine(t)

	lower, err := engine.SearchAPIs(Query{Text: "revoke token"})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	upper, err := engine.SearchAPIs(Query{Text: "REVOKE TOKEN"})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if !reflect.DeepEqual(lower, upper) {
		t.Error("case variants produced different results")
	}
}

func TestSearchAPIs_ModePriority(t *testing.T) {
	engine := newTestEngine(t)

	// With both text and path supplied, only the natural strategy runs.
	results, err := engine.SearchAPIs(Query{Text: "client", PathQuery: "/auth/token"})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(results) != 1 || results[0].Path != "/api/{serviceId}/client/get/{clientId}" {
		t.Errorf("unexpected results: %+v", results)
	}
}

func TestSearchAPIs_PathMode(t *testing.T) {
	engine := newTestEngine(t)

	results, err := engine.SearchAPIs(Query{PathQuery: "/auth/token"})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	for _, r := range results {
		if r.Score != 80 {
			t.Errorf("substring match score = %v, want 80", r.Score)
		}
	}

	exact, err := engine.SearchAPIs(Query{PathQuery: "/api/{serviceId}/auth/token"})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(exact) == 0 || exact[0].Score != 100 {
		t.Errorf("exact path match not ranked first: %+v", exact)
	}
}

func TestSearchAPIs_DescriptionMode(t *testing.T) {
	engine := newTestEngine(t)

	results, err := engine.SearchAPIs(Query{DescriptionQuery: "client application"})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(results) != 1 || results[0].OperationID != "client_get_api" {
		t.Errorf("unexpected results: %+v", results)
	}
	if results[0].Score != 90 {
		t.Errorf("description match score = %v, want 90", results[0].Score)
	}
}

func TestSearchAPIs_MethodFilterCaseInsensitive(t *testing.T) {
	engine := newTestEngine(t)

	results, err := engine.SearchAPIs(Query{Text: "token", MethodFilter: "post"})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("lower-case method filter matched nothing")
	}
	for _, r := range results {
		if r.Method != "POST" {
			t.Errorf("filter leaked method %s", r.Method)
		}
	}
}

func TestSearchAPIs_TagFilter(t *testing.T) {
	engine := newTestEngine(t)

	results, err := engine.SearchAPIs(Query{Text: "api", TagFilter: "client management"})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(results) != 1 || results[0].OperationID != "client_get_api" {
		t.Errorf("unexpected results: %+v", results)
	}
}

func TestSearchAPIs_LimitApplied(t *testing.T) {
	engine := newTestEngine(t)

	results, err := engine.SearchAPIs(Query{Text: "api", Limit: 1})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(results) != 1 {
		t.Errorf("expected 1 result, got %d", len(results))
	}
}

func TestClampLimit(t *testing.T) {
	tests := []struct {
		limit int
		want  int
	}{
		{0, DefaultSearchLimit},
		{-5, DefaultSearchLimit},
		{500, DefaultSearchLimit},
		{101, DefaultSearchLimit},
		{1, 1},
		{100, 100},
		{20, 20},
	}

	for _, tt := range tests {
		if got := clampLimit(tt.limit); got != tt.want {
			t.Errorf("clampLimit(%d) = %d, want %d", tt.limit, got, tt.want)
		}
	}
}
