/*
Package ingest builds the search database from an Authlete OpenAPI
document.

Parsing is deliberately loose: the document is decoded into generic maps
(YAML and JSON both, YAML being a superset) and only the fields the
catalogue needs are pulled out. Everything nested (parameters, request
body, responses, sample code) is re-serialized to JSON text columns; the
search layer decodes them back with empty-default fallback.
*/
package ingest

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// httpMethods are the operation keys recognized under a path item, in
// emission order.
var httpMethods = []string{"get", "post", "put", "delete", "patch", "head", "options", "trace"}

// Document is the subset of an OpenAPI document the ingester reads.
type Document struct {
	Paths      map[string]map[string]any `yaml:"paths"`
	Components struct {
		Schemas map[string]any `yaml:"schemas"`
	} `yaml:"components"`
}

// LoadDocument parses an OpenAPI document from disk. JSON documents parse
// through the same decoder.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read OpenAPI document: %w", err)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse OpenAPI document %s: %w", path, err)
	}
	if len(doc.Paths) == 0 {
		return nil, fmt.Errorf("OpenAPI document %s contains no paths", path)
	}
	return &doc, nil
}

// sortedKeys returns map keys in ascending order so ingestion output is
// deterministic run to run.
func sortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// asMap narrows a decoded YAML value to a string-keyed map.
func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

// asString narrows a decoded YAML value to a string.
func asString(v any) string {
	s, _ := v.(string)
	return s
}

// asStringSlice narrows a decoded YAML sequence to strings, dropping
// non-string entries.
func asStringSlice(v any) []string {
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
