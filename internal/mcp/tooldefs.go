package mcp

// toolDefinitions returns the tool schemas advertised by tools/list.
func toolDefinitions() []map[string]any {
	return []map[string]any{
		{
			"name": "search_apis",
			"description": "Natural language API search. Semantic matching like 'revoke token' → 'This API revokes access tokens'. " +
				"Returns description truncated to ~100 chars. Use get_api_detail for full information.",
			"inputSchema": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"query": map[string]any{
						"type":        "string",
						"description": "Natural language search query (e.g., 'revoke token', 'create client', 'user authentication')",
					},
					"path_query": map[string]any{
						"type":        "string",
						"description": "API path search (e.g., '/api/auth/token')",
					},
					"description_query": map[string]any{
						"type":        "string",
						"description": "Description search (e.g., 'revokes access tokens')",
					},
					"tag_filter": map[string]any{
						"type":        "string",
						"description": "Tag filter (e.g., 'Token Operations', 'Authorization')",
					},
					"method_filter": map[string]any{
						"type":        "string",
						"description": "HTTP method filter (GET, POST, PUT, DELETE)",
					},
					"mode": map[string]any{
						"type":        "string",
						"enum":        []string{"exact", "partial", "fuzzy", "natural"},
						"description": "Search mode (for compatibility, actually uses natural language search)",
						"default":     "natural",
					},
					"limit": map[string]any{
						"type":        "integer",
						"description": "Maximum number of results (default: 20)",
						"default":     20,
						"minimum":     1,
						"maximum":     100,
					},
				},
			},
		},
		{
			"name": "get_api_detail",
			"description": "Get detailed information for specific API (parameters, request/response, sample code). " +
				"Provide either operation_id OR both path and method.",
			"inputSchema": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"path": map[string]any{
						"type":        "string",
						"description": "API path (required if operation_id not provided)",
					},
					"method": map[string]any{
						"type":        "string",
						"description": "HTTP method (required if operation_id not provided)",
					},
					"operation_id": map[string]any{
						"type":        "string",
						"description": "Operation ID (alternative to path+method)",
					},
					"language": map[string]any{
						"type":        "string",
						"description": "Sample code language (curl, javascript, python, java, etc.)",
					},
					"description_style": map[string]any{
						"type":        "string",
						"enum":        []string{"full", "none", "line_range", "summary_and_headers"},
						"description": "How much of the description to return (default: full)",
						"default":     "full",
					},
					"line_start": map[string]any{
						"type":        "integer",
						"description": "First description line for description_style=line_range (1-based)",
					},
					"line_end": map[string]any{
						"type":        "integer",
						"description": "Last description line for description_style=line_range (inclusive)",
					},
					"body_style": map[string]any{
						"type":        "string",
						"enum":        []string{"full", "none", "schema_only"},
						"description": "How much of the request/response bodies to return (default: full)",
						"default":     "full",
					},
				},
			},
		},
		{
			"name": "get_sample_code",
			"description": "Get sample code for specific API in specified language. " +
				"Provide language and either operation_id OR both path and method.",
			"inputSchema": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"path": map[string]any{
						"type":        "string",
						"description": "API path (required if operation_id not provided)",
					},
					"method": map[string]any{
						"type":        "string",
						"description": "HTTP method (required if operation_id not provided)",
					},
					"operation_id": map[string]any{
						"type":        "string",
						"description": "Operation ID (alternative to path+method)",
					},
					"language": map[string]any{
						"type":        "string",
						"description": "Programming language",
					},
				},
				"required": []string{"language"},
			},
		},
		{
			"name":        "list_schemas",
			"description": "List or search API data schemas. Without arguments, returns all schemas ordered by name.",
			"inputSchema": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"query": map[string]any{
						"type":        "string",
						"description": "Search query matched against schema name, title and description",
					},
					"schema_type": map[string]any{
						"type":        "string",
						"description": "Filter by schema type (object, array, string, etc.)",
					},
					"limit": map[string]any{
						"type":        "integer",
						"description": "Maximum number of results (default: 20, max: 100)",
						"default":     20,
						"minimum":     1,
						"maximum":     100,
					},
				},
			},
		},
		{
			"name":        "get_schema_detail",
			"description": "Get detailed information for a specific schema (properties, required fields, example).",
			"inputSchema": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"schema_name": map[string]any{
						"type":        "string",
						"description": "Schema name (e.g., 'AccessToken', 'Client', 'Service')",
					},
				},
				"required": []string{"schema_name"},
			},
		},
	}
}
