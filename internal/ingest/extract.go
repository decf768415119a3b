package ingest

import (
	"database/sql"
	"encoding/json"
	"strings"

	"github.com/watahani/authlete-mcp/internal/store"
)

// ExtractEndpoints flattens every operation in the document into endpoint
// rows, ordered by path then method.
func ExtractEndpoints(doc *Document) ([]store.EndpointRow, error) {
	var rows []store.EndpointRow

	for _, path := range sortedKeys(doc.Paths) {
		item := doc.Paths[path]
		for _, method := range httpMethods {
			operation := asMap(item[method])
			if operation == nil {
				continue
			}

			row, err := endpointRow(path, method, operation)
			if err != nil {
				return nil, err
			}
			rows = append(rows, row)
		}
	}

	return rows, nil
}

func endpointRow(path, method string, operation map[string]any) (store.EndpointRow, error) {
	method = strings.ToUpper(method)

	operationID := asString(operation["operationId"])
	summary := asString(operation["summary"])
	description := asString(operation["description"])
	tags := asStringSlice(operation["tags"])
	if tags == nil {
		tags = []string{}
	}

	parameters, _ := operation["parameters"].([]any)
	if parameters == nil {
		parameters = []any{}
	}
	requestBody := asMap(operation["requestBody"])
	responses := asMap(operation["responses"])
	if responses == nil {
		responses = map[string]any{}
	}

	sampleLanguages, sampleCodes := extractCodeSamples(operation)

	row := store.EndpointRow{
		Path:        path,
		Method:      method,
		OperationID: sql.NullString{String: operationID, Valid: operationID != ""},
		Summary:     summary,
		Description: description,
		SearchContent: BuildEndpointSearchContent(
			path, summary, description, operationID, method, tags, parameterNames(parameters),
		),
	}

	var err error
	if row.Tags, err = encodeJSON(tags, "[]"); err != nil {
		return store.EndpointRow{}, err
	}
	if row.Parameters, err = encodeJSON(parameters, "[]"); err != nil {
		return store.EndpointRow{}, err
	}
	if row.Responses, err = encodeJSON(responses, "{}"); err != nil {
		return store.EndpointRow{}, err
	}
	if row.SampleLanguages, err = encodeJSON(sampleLanguages, "[]"); err != nil {
		return store.EndpointRow{}, err
	}
	if row.SampleCodes, err = encodeJSON(sampleCodes, "{}"); err != nil {
		return store.EndpointRow{}, err
	}
	if requestBody != nil {
		encoded, err := encodeJSON(requestBody, "")
		if err != nil {
			return store.EndpointRow{}, err
		}
		row.RequestBody = sql.NullString{String: encoded, Valid: true}
	}

	return row, nil
}

// BuildEndpointSearchContent joins the searchable fields in relevance
// order: path and summary first, then description and operation id, then
// method and tags, then parameter names. Empty parts are skipped so the
// output is deterministic and regenerable from the record fields.
func BuildEndpointSearchContent(path, summary, description, operationID, method string, tags, paramNames []string) string {
	parts := []string{
		path,
		summary,
		description,
		operationID,
		strings.ToUpper(method),
		strings.Join(tags, " "),
	}
	parts = append(parts, paramNames...)

	nonEmpty := parts[:0]
	for _, part := range parts {
		if part != "" {
			nonEmpty = append(nonEmpty, part)
		}
	}
	return strings.Join(nonEmpty, " ")
}

// parameterNames pulls the name of each parameter descriptor. Parameter
// descriptions are deliberately excluded to keep noise out of the search
// content.
func parameterNames(parameters []any) []string {
	var names []string
	for _, p := range parameters {
		if name := asString(asMap(p)["name"]); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// extractCodeSamples reads the x-code-samples extension into the language
// list and language-to-source map.
func extractCodeSamples(operation map[string]any) ([]string, map[string]string) {
	languages := []string{}
	codes := map[string]string{}

	samples, _ := operation["x-code-samples"].([]any)
	for _, sample := range samples {
		m := asMap(sample)
		lang := asString(m["lang"])
		if lang == "" {
			continue
		}
		languages = append(languages, lang)
		codes[lang] = asString(m["source"])
	}

	return languages, codes
}

// ExtractSchemas flattens components/schemas into schema rows, ordered by
// name.
func ExtractSchemas(doc *Document) ([]store.SchemaRow, error) {
	var rows []store.SchemaRow

	for _, name := range sortedKeys(doc.Components.Schemas) {
		def := asMap(doc.Components.Schemas[name])
		if def == nil {
			continue
		}

		row, err := schemaRow(name, def)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func schemaRow(name string, def map[string]any) (store.SchemaRow, error) {
	schemaType := asString(def["type"])
	if schemaType == "" {
		schemaType = "object"
	}
	title := asString(def["title"])
	description := asString(def["description"])

	properties := asMap(def["properties"])
	if properties == nil {
		properties = map[string]any{}
	}
	required := asStringSlice(def["required"])
	if required == nil {
		required = []string{}
	}

	row := store.SchemaRow{
		SchemaName:    name,
		SchemaType:    schemaType,
		Title:         title,
		Description:   description,
		SearchContent: BuildSchemaSearchContent(name, title, description, schemaType, properties),
	}

	var err error
	if row.Properties, err = encodeJSON(properties, "{}"); err != nil {
		return store.SchemaRow{}, err
	}
	if row.RequiredFields, err = encodeJSON(required, "[]"); err != nil {
		return store.SchemaRow{}, err
	}
	if example, ok := def["example"]; ok {
		encoded, err := encodeJSON(example, "")
		if err != nil {
			return store.SchemaRow{}, err
		}
		row.ExampleValue = sql.NullString{String: encoded, Valid: true}
	}

	return row, nil
}

// BuildSchemaSearchContent joins name, title, description and type, then
// each property name and its description.
func BuildSchemaSearchContent(name, title, description, schemaType string, properties map[string]any) string {
	parts := []string{name, title, description, schemaType}

	for _, propName := range sortedKeys(properties) {
		parts = append(parts, propName)
		if desc := asString(asMap(properties[propName])["description"]); desc != "" {
			parts = append(parts, desc)
		}
	}

	nonEmpty := parts[:0]
	for _, part := range parts {
		if part != "" {
			nonEmpty = append(nonEmpty, part)
		}
	}
	return strings.Join(nonEmpty, " ")
}

// encodeJSON serializes v, substituting fallback for nil values.
func encodeJSON(v any, fallback string) (string, error) {
	if v == nil {
		return fallback, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
