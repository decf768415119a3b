/*
Package mcp implements the MCP server that exposes the API search tools.

The server uses stdio transport and exposes 5 tools:
  - search_apis: relevance-ranked endpoint search
  - get_api_detail: full endpoint detail with presentation filters
  - get_sample_code: raw sample code in one language
  - list_schemas: schema search / listing
  - get_schema_detail: full schema detail

Every tool returns text content: a JSON payload on success, a sentinel
string ("No APIs found...", "... not found: ...") otherwise. Failures never
crash the host process; they surface as error strings in the content.
*/
package mcp

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/watahani/authlete-mcp/internal/history"
	"github.com/watahani/authlete-mcp/internal/search"
	"github.com/watahani/authlete-mcp/internal/version"
)

// maxLineSize bounds one JSON-RPC line on stdin. Tool call arguments are
// small; this is headroom, not a contract.
const maxLineSize = 10 * 1024 * 1024

// Server wires the search engine to the stdio transport.
type Server struct {
	engine   *search.Engine
	recorder *history.Recorder

	in  io.Reader
	out io.Writer
}

// NewServer creates an MCP server over the given engine. recorder may be
// nil when analytics are disabled.
func NewServer(engine *search.Engine, recorder *history.Recorder) *Server {
	return &Server{
		engine:   engine,
		recorder: recorder,
		in:       os.Stdin,
		out:      os.Stdout,
	}
}

// Run serves requests line by line until stdin is closed.
func (s *Server) Run() error {
	scanner := bufio.NewScanner(s.in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		response := s.handleRequest(line)
		if response != nil {
			s.send(response)
		}
	}

	return scanner.Err()
}

// Request is an incoming JSON-RPC request.
type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      any             `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// Response is an outgoing JSON-RPC response.
type Response struct {
	JSONRPC string `json:"jsonrpc"`
	ID      any    `json:"id"`
	Result  any    `json:"result,omitempty"`
	Error   *Error `json:"error,omitempty"`
}

// Error is a JSON-RPC error object.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// handleRequest processes one request and returns the response to send,
// or nil for notifications.
func (s *Server) handleRequest(data []byte) *Response {
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return &Response{
			JSONRPC: "2.0",
			Error:   &Error{Code: -32700, Message: fmt.Sprintf("Parse error: %v", err)},
		}
	}

	// Notifications carry no id and expect no response.
	if strings.HasPrefix(req.Method, "notifications/") {
		return nil
	}

	switch req.Method {
	case "initialize":
		return s.handleInitialize(&req)
	case "tools/list":
		return s.handleToolsList(&req)
	case "tools/call":
		return s.handleToolsCall(&req)
	default:
		return &Response{
			JSONRPC: "2.0",
			ID:      req.ID,
			Error:   &Error{Code: -32601, Message: "Method not found"},
		}
	}
}

func (s *Server) handleInitialize(req *Request) *Response {
	return &Response{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]any{
			"protocolVersion": "2024-11-05",
			"capabilities": map[string]any{
				"tools": map[string]any{},
			},
			"serverInfo": map[string]any{
				"name":    "authlete-mcp",
				"version": version.Version,
			},
		},
	}
}

func (s *Server) handleToolsList(req *Request) *Response {
	return &Response{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]any{
			"tools": toolDefinitions(),
		},
	}
}

// handleToolsCall dispatches a tool invocation. Handler errors become
// text content, not JSON-RPC errors: the tool-calling runtime treats all
// outcomes as text.
func (s *Server) handleToolsCall(req *Request) *Response {
	var params struct {
		Name      string         `json:"name"`
		Arguments map[string]any `json:"arguments"`
	}
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return &Response{
			JSONRPC: "2.0",
			ID:      req.ID,
			Error:   &Error{Code: -32602, Message: fmt.Sprintf("Invalid params: %v", err)},
		}
	}

	args := arguments(params.Arguments)

	var text string
	switch params.Name {
	case "search_apis":
		text = s.execSearchAPIs(args)
	case "get_api_detail":
		text = s.execGetAPIDetail(args)
	case "get_sample_code":
		text = s.execGetSampleCode(args)
	case "list_schemas":
		text = s.execListSchemas(args)
	case "get_schema_detail":
		text = s.execGetSchemaDetail(args)
	default:
		return &Response{
			JSONRPC: "2.0",
			ID:      req.ID,
			Error:   &Error{Code: -32602, Message: fmt.Sprintf("Unknown tool: %s", params.Name)},
		}
	}

	return &Response{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]any{
			"content": []map[string]any{
				{"type": "text", "text": text},
			},
		},
	}
}

func (s *Server) send(response *Response) {
	data, err := json.Marshal(response)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to marshal response: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "%s\n", data)
}

// arguments wraps the raw argument map with typed accessors.
type arguments map[string]any

func (a arguments) str(key string) string {
	v, _ := a[key].(string)
	return v
}

// num returns an integer argument; JSON numbers decode as float64.
func (a arguments) num(key string, fallback int) int {
	v, ok := a[key].(float64)
	if !ok {
		return fallback
	}
	return int(v)
}
