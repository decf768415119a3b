package search

import (
	"reflect"
	"testing"
)

func TestQueryMode(t *testing.T) {
	tests := []struct {
		name string
		q    Query
		want searchMode
	}{
		{"empty", Query{}, modeNone},
		{"whitespace text", Query{Text: "   "}, modeNone},
		{"text", Query{Text: "revoke token"}, modeNatural},
		{"path", Query{PathQuery: "/auth/token"}, modePath},
		{"description", Query{DescriptionQuery: "access token"}, modeDescription},
		{"text wins over path", Query{Text: "revoke", PathQuery: "/auth"}, modeNatural},
		{"text wins over description", Query{Text: "revoke", DescriptionQuery: "token"}, modeNatural},
		{"path wins over description", Query{PathQuery: "/auth", DescriptionQuery: "token"}, modePath},
		{"whitespace text yields to path", Query{Text: " ", PathQuery: "/auth"}, modePath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.q.mode(); got != tt.want {
				t.Errorf("mode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"Revoke Token", []string{"revoke", "token"}},
		{"  spaced   out  ", []string{"spaced", "out"}},
		{"token token", []string{"token", "token"}},
		{"", nil},
		{"   ", nil},
	}

	for _, tt := range tests {
		got := tokenize(tt.input)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("tokenize(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestContainsFold(t *testing.T) {
	if !containsFold("Revoke Access Token", "revoke") {
		t.Error("expected case-insensitive match")
	}
	if !containsFold("category", "cat") {
		t.Error("expected substring match inside a word")
	}
	if containsFold("client", "token") {
		t.Error("unexpected match")
	}
}
