/*
Presentation filters for detail payloads.

Descriptions in the catalogue can be thousands of lines of markdown and
request/response bodies carry worked examples; these pure transforms let a
caller reduce either to keep downstream payloads small. They operate on the
already-decoded DetailResult fields and never touch the store.
*/
package search

import (
	"fmt"
	"strings"
)

// DescriptionStyle selects how much of a description survives into the
// detail payload.
type DescriptionStyle string

const (
	// DescriptionFull returns the text unchanged.
	DescriptionFull DescriptionStyle = "full"
	// DescriptionNone drops the description entirely.
	DescriptionNone DescriptionStyle = "none"
	// DescriptionLineRange returns a numbered slice of lines.
	DescriptionLineRange DescriptionStyle = "line_range"
	// DescriptionSummaryAndHeaders returns the leading prose plus every
	// section heading with its original line number.
	DescriptionSummaryAndHeaders DescriptionStyle = "summary_and_headers"
)

// ParseDescriptionStyle maps a caller-supplied string to a style. Unknown
// or empty input means full, mirroring the permissive tool contract.
func ParseDescriptionStyle(s string) DescriptionStyle {
	switch DescriptionStyle(s) {
	case DescriptionNone, DescriptionLineRange, DescriptionSummaryAndHeaders:
		return DescriptionStyle(s)
	default:
		return DescriptionFull
	}
}

// FilterDescription applies style to text. Returns nil for the none style;
// otherwise a pointer to the reduced text. start/end only matter for
// line_range (1-based, inclusive); a zero range means the full text.
func FilterDescription(text string, style DescriptionStyle, start, end int) *string {
	switch style {
	case DescriptionNone:
		return nil
	case DescriptionLineRange:
		out := filterLineRange(text, start, end)
		return &out
	case DescriptionSummaryAndHeaders:
		out := filterSummaryAndHeaders(text)
		return &out
	default:
		return &text
	}
}

// filterLineRange returns the requested lines prefixed with their original
// line numbers. An unusable range yields a diagnostic string rather than
// an error: the payload is presentation, not control flow.
func filterLineRange(text string, start, end int) string {
	if start <= 0 && end <= 0 {
		return text
	}

	lines := strings.Split(text, "\n")
	if start < 1 {
		start = 1
	}
	if start > len(lines) || end < start {
		return fmt.Sprintf("Invalid line range: %d-%d (total lines: %d)", start, end, len(lines))
	}
	if end > len(lines) {
		end = len(lines)
	}

	numbered := make([]string, 0, end-start+1)
	for i := start; i <= end; i++ {
		numbered = append(numbered, fmt.Sprintf("%4d: %s", i, lines[i-1]))
	}
	return strings.Join(numbered, "\n")
}

// filterSummaryAndHeaders keeps the prose before the first heading and a
// numbered list of every heading, dropping the section bodies.
func filterSummaryAndHeaders(text string) string {
	if text == "" {
		return ""
	}

	lines := strings.Split(text, "\n")

	var summary []string
	var headers []string
	seenHeader := false

	for i, line := range lines {
		if isHeaderLine(line) {
			seenHeader = true
			headers = append(headers, fmt.Sprintf("%4d: %s", i+1, line))
			continue
		}
		if !seenHeader {
			summary = append(summary, line)
		}
	}

	// Trim trailing blank lines from the summary block.
	for len(summary) > 0 && strings.TrimSpace(summary[len(summary)-1]) == "" {
		summary = summary[:len(summary)-1]
	}

	var sections []string
	if len(summary) > 0 {
		sections = append(sections, "=== Summary ===\n"+strings.Join(summary, "\n"))
	}
	if len(headers) > 0 {
		sections = append(sections, "=== Headers ===\n"+strings.Join(headers, "\n"))
	}
	return strings.Join(sections, "\n\n")
}

// isHeaderLine recognizes markdown headings (#, ##, ...) and standalone
// bold lines (**Heading**), the two heading forms used in the Authlete
// descriptions.
func isHeaderLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if strings.HasPrefix(trimmed, "#") {
		rest := strings.TrimLeft(trimmed, "#")
		return strings.HasPrefix(rest, " ") && strings.TrimSpace(rest) != ""
	}
	if strings.HasPrefix(trimmed, "**") && strings.HasSuffix(trimmed, "**") && len(trimmed) > 4 {
		return true
	}
	return false
}

// BodyStyle selects how much of a request/response body survives into the
// detail payload.
type BodyStyle string

const (
	// BodyFull returns the body unchanged.
	BodyFull BodyStyle = "full"
	// BodyNone drops the body entirely.
	BodyNone BodyStyle = "none"
	// BodySchemaOnly strips worked examples and collapses property
	// descriptors down to their types.
	BodySchemaOnly BodyStyle = "schema_only"
)

// Caps applied by the schema_only transform.
const (
	maxEnumValues   = 10
	maxEnumValueLen = 120
)

// ParseBodyStyle maps a caller-supplied string to a style. Unknown or
// empty input means full.
func ParseBodyStyle(s string) BodyStyle {
	switch BodyStyle(s) {
	case BodyNone, BodySchemaOnly:
		return BodyStyle(s)
	default:
		return BodyFull
	}
}

// FilterBody applies style to a decoded body value. Pure: the input value
// is never mutated.
func FilterBody(body any, style BodyStyle) any {
	switch style {
	case BodyNone:
		return nil
	case BodySchemaOnly:
		return schemaOnly(body)
	default:
		return body
	}
}

// schemaOnly walks a decoded JSON value, removing example/examples keys,
// collapsing each properties entry to its type descriptor, and capping
// enum lists.
func schemaOnly(value any) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, child := range v {
			switch key {
			case "example", "examples":
				continue
			case "properties":
				if props, ok := child.(map[string]any); ok {
					out[key] = collapseProperties(props)
					continue
				}
				out[key] = schemaOnly(child)
			case "enum":
				if list, ok := child.([]any); ok {
					out[key] = capEnum(list)
					continue
				}
				out[key] = child
			default:
				out[key] = schemaOnly(child)
			}
		}
		return out
	case []any:
		out := make([]any, 0, len(v))
		for _, child := range v {
			out = append(out, schemaOnly(child))
		}
		return out
	default:
		return value
	}
}

// collapseProperties reduces each property descriptor to a {type} tuple,
// keeping $ref references and the element type of arrays.
func collapseProperties(props map[string]any) map[string]any {
	out := make(map[string]any, len(props))
	for name, descriptor := range props {
		desc, ok := descriptor.(map[string]any)
		if !ok {
			out[name] = descriptor
			continue
		}

		collapsed := map[string]any{}
		if ref, ok := desc["$ref"]; ok {
			collapsed["$ref"] = ref
		}
		if typ, ok := desc["type"]; ok {
			collapsed["type"] = typ
		}
		if items, ok := desc["items"].(map[string]any); ok {
			itemType := map[string]any{}
			if ref, ok := items["$ref"]; ok {
				itemType["$ref"] = ref
			}
			if typ, ok := items["type"]; ok {
				itemType["type"] = typ
			}
			if len(itemType) > 0 {
				collapsed["items"] = itemType
			}
		}
		out[name] = collapsed
	}
	return out
}

// capEnum bounds an enum list to maxEnumValues entries and each string
// value to maxEnumValueLen characters.
func capEnum(list []any) []any {
	if len(list) > maxEnumValues {
		list = list[:maxEnumValues]
	}
	out := make([]any, 0, len(list))
	for _, v := range list {
		if s, ok := v.(string); ok && len([]rune(s)) > maxEnumValueLen {
			v = string([]rune(s)[:maxEnumValueLen]) + "..."
		}
		out = append(out, v)
	}
	return out
}
