package search

import (
	"database/sql"
	"reflect"
	"strings"
	"testing"

	"github.com/watahani/authlete-mcp/internal/store"
)

func TestTruncateDescription(t *testing.T) {
	short := "A short description."
	if got := truncateDescription(short); got != short {
		t.Errorf("short description changed: %q", got)
	}

	exact := strings.Repeat("a", 100)
	if got := truncateDescription(exact); got != exact {
		t.Errorf("100-char description changed: %q", got)
	}

	long := strings.Repeat("a", 150)
	got := truncateDescription(long)
	if len(got) != 103 {
		t.Errorf("truncated length = %d, want 103", len(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("truncated description missing ellipsis: %q", got)
	}
	if got[:100] != long[:100] {
		t.Error("truncated prefix does not match original")
	}
}

func TestTruncateDescription_MultiByte(t *testing.T) {
	// Truncation counts runes, not bytes.
	long := strings.Repeat("あ", 150)
	got := truncateDescription(long)
	runes := []rune(got)
	if len(runes) != 103 {
		t.Errorf("truncated rune length = %d, want 103", len(runes))
	}
}

func TestDecodeStringList(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"valid", `["a","b"]`, []string{"a", "b"}},
		{"empty array", `[]`, []string{}},
		{"blank", "", []string{}},
		{"malformed", `{not json`, []string{}},
		{"null", `null`, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := decodeStringList(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("decodeStringList(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestFormatResult(t *testing.T) {
	row := store.EndpointRow{
		Path:            "/api/{serviceId}/auth/token",
		Method:          "POST",
		OperationID:     sql.NullString{String: "auth_token_api", Valid: true},
		Summary:         "Process Token Request",
		Description:     strings.Repeat("x", 150),
		Tags:            `["Token Operations"]`,
		SampleLanguages: "",
	}

	result := formatResult(row, 165)

	if result.OperationID != "auth_token_api" {
		t.Errorf("operation id = %q", result.OperationID)
	}
	if len(result.Description) != 103 {
		t.Errorf("description length = %d, want 103", len(result.Description))
	}
	if result.Tags == nil || result.SampleLanguages == nil {
		t.Error("containers must never be nil")
	}
	if result.Score != 165 {
		t.Errorf("score = %v", result.Score)
	}
}
