package search

import (
	"testing"
)

func TestAPIDetail_ByOperationID(t *testing.T) {
	engine := newTestEngine(t)

	detail, err := engine.APIDetail(DetailRequest{OperationID: "auth_token_revoke_api"})
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if detail == nil {
		t.Fatal("expected a detail, got nil")
	}

	if detail.Path != "/api/{serviceId}/auth/token/revoke" {
		t.Errorf("path = %s", detail.Path)
	}
	if detail.Method != "POST" {
		t.Errorf("method = %s", detail.Method)
	}
	if detail.Description == nil || *detail.Description == "" {
		t.Error("description missing")
	}
	if len(detail.Parameters) != 1 {
		t.Errorf("parameters = %v", detail.Parameters)
	}
	if len(detail.Responses) != 1 {
		t.Errorf("responses = %v", detail.Responses)
	}
	if detail.SampleCode != nil {
		t.Error("sample code resolved without a language")
	}
}

func TestAPIDetail_ByPathAndMethod(t *testing.T) {
	engine := newTestEngine(t)

	detail, err := engine.APIDetail(DetailRequest{
		Path:   "/api/{serviceId}/auth/token/revoke",
		Method: "post",
	})
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if detail == nil {
		t.Fatal("expected a detail, got nil")
	}
	if detail.OperationID != "auth_token_revoke_api" {
		t.Errorf("operation id = %s", detail.OperationID)
	}
}

func TestAPIDetail_OperationIDWinsOverPath(t *testing.T) {
	engine := newTestEngine(t)

	detail, err := engine.APIDetail(DetailRequest{
		OperationID: "client_get_api",
		Path:        "/api/{serviceId}/auth/token",
		Method:      "POST",
	})
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if detail == nil || detail.OperationID != "client_get_api" {
		t.Errorf("unexpected detail: %+v", detail)
	}
}

func TestAPIDetail_NotFound(t *testing.T) {
	engine := newTestEngine(t)

	detail, err := engine.APIDetail(DetailRequest{OperationID: "no_such_api"})
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if detail != nil {
		t.Errorf("expected nil, got %+v", detail)
	}
}

func TestAPIDetail_NoIdentifier(t *testing.T) {
	engine := newTestEngine(t)

	tests := []DetailRequest{
		{},
		{Path: "/api/{serviceId}/auth/token"},
		{Method: "POST"},
	}
	for _, req := range tests {
		detail, err := engine.APIDetail(req)
		if err != nil {
			t.Fatalf("lookup failed: %v", err)
		}
		if detail != nil {
			t.Errorf("request %+v: expected nil detail", req)
		}
	}
}

func TestAPIDetail_SampleCodeLanguage(t *testing.T) {
	engine := newTestEngine(t)

	detail, err := engine.APIDetail(DetailRequest{
		OperationID: "auth_token_revoke_api",
		Language:    "curl",
	})
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if detail.SampleCode == nil {
		t.Fatal("sample code not resolved")
	}

	// An unknown language leaves the field nil rather than erroring.
	detail, err = engine.APIDetail(DetailRequest{
		OperationID: "auth_token_revoke_api",
		Language:    "cobol",
	})
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if detail.SampleCode != nil {
		t.Error("unknown language resolved sample code")
	}
}

func TestAPIDetail_DescriptionStyles(t *testing.T) {
	engine := newTestEngine(t)

	detail, err := engine.APIDetail(DetailRequest{
		OperationID:      "auth_token_revoke_api",
		DescriptionStyle: "none",
	})
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if detail.Description != nil {
		t.Error("none style must drop the description")
	}

	detail, err = engine.APIDetail(DetailRequest{
		OperationID:      "auth_token_revoke_api",
		DescriptionStyle: "line_range",
		LineStart:        1,
		LineEnd:          1,
	})
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if detail.Description == nil || *detail.Description != "   1: This API revokes access tokens and refresh tokens." {
		t.Errorf("line range description = %v", detail.Description)
	}
}

func TestAPIDetail_BodyStyles(t *testing.T) {
	engine := newTestEngine(t)

	detail, err := engine.APIDetail(DetailRequest{
		OperationID: "auth_token_revoke_api",
		BodyStyle:   "none",
	})
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if detail.RequestBody != nil {
		t.Error("none style must drop the request body")
	}
	if detail.Responses != nil {
		t.Error("none style must drop the responses")
	}

	detail, err = engine.APIDetail(DetailRequest{
		OperationID: "auth_token_revoke_api",
		BodyStyle:   "schema_only",
	})
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	resp, found := detail.Responses["200"].(map[string]any)
	if !found {
		t.Fatalf("responses = %v", detail.Responses)
	}
	media, found := resp["content"].(map[string]any)["application/json"].(map[string]any)
	if !found {
		t.Fatalf("response content = %v", resp)
	}
	if _, has := media["example"]; has {
		t.Error("schema_only left the example in place")
	}
}

func TestDecodeHelpers_MalformedColumns(t *testing.T) {
	if got := decodeList("{broken"); len(got) != 0 || got == nil {
		t.Errorf("decodeList fallback = %v", got)
	}
	if got := decodeMap("[broken"); len(got) != 0 || got == nil {
		t.Errorf("decodeMap fallback = %v", got)
	}
	if got := decodeStringMap("nope"); len(got) != 0 || got == nil {
		t.Errorf("decodeStringMap fallback = %v", got)
	}
	if got := decodeValue("{broken"); got != nil {
		t.Errorf("decodeValue fallback = %v", got)
	}
	if got := decodeValue(""); got != nil {
		t.Errorf("decodeValue blank = %v", got)
	}
}
