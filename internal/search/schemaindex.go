package search

import (
	"fmt"
	"log"
	"sync"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/mapping"

	"github.com/watahani/authlete-mcp/internal/store"
)

// SchemaIndex is an in-memory Bleve full-text index over schema search
// content. It is built once at engine start from the schema table and only
// read afterwards.
type SchemaIndex struct {
	mu         sync.RWMutex
	bleveIndex bleve.Index
}

// SchemaHit is one ranked full-text match.
type SchemaHit struct {
	SchemaName  string
	SchemaType  string
	Title       string
	Description string
	Score       float64
}

// NewSchemaIndex creates an empty in-memory index.
func NewSchemaIndex() (*SchemaIndex, error) {
	index, err := bleve.NewMemOnly(buildSchemaIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("failed to create schema index: %w", err)
	}
	return &SchemaIndex{bleveIndex: index}, nil
}

// buildSchemaIndexMapping maps the searchable and stored schema fields.
func buildSchemaIndexMapping() mapping.IndexMapping {
	schemaMapping := bleve.NewDocumentMapping()

	// searchContent carries name + title + description + type + property
	// names; it is the only field matched against.
	contentMapping := bleve.NewTextFieldMapping()
	schemaMapping.AddFieldMappingsAt("searchContent", contentMapping)

	// schemaType: keyword so the type filter is an exact term match.
	typeMapping := bleve.NewKeywordFieldMapping()
	schemaMapping.AddFieldMappingsAt("schemaType", typeMapping)

	// name/title/description: stored for retrieval, not matched directly.
	for _, field := range []string{"name", "title", "description"} {
		stored := bleve.NewTextFieldMapping()
		stored.Index = false
		stored.IncludeInAll = false
		schemaMapping.AddFieldMappingsAt(field, stored)
	}

	indexMapping := bleve.NewIndexMapping()
	indexMapping.AddDocumentMapping("_default", schemaMapping)
	return indexMapping
}

// Add indexes a batch of schema rows, keyed by schema name.
func (i *SchemaIndex) Add(rows []store.SchemaRow) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	batch := i.bleveIndex.NewBatch()
	for _, row := range rows {
		doc := map[string]any{
			"name":          row.SchemaName,
			"schemaType":    row.SchemaType,
			"title":         row.Title,
			"description":   row.Description,
			"searchContent": row.SearchContent,
		}
		if err := batch.Index(row.SchemaName, doc); err != nil {
			log.Printf("Warning: failed to index schema %s: %v", row.SchemaName, err)
		}
	}

	if err := i.bleveIndex.Batch(batch); err != nil {
		return fmt.Errorf("failed to batch index schemas: %w", err)
	}
	return nil
}

// Search runs a ranked match query, optionally narrowed to one schema
// type. Returns hits in score order; an empty result is not an error.
func (i *SchemaIndex) Search(queryText, schemaType string, limit int) ([]SchemaHit, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	matchQuery := bleve.NewMatchQuery(queryText)
	matchQuery.SetField("searchContent")

	searchQuery := bleve.NewConjunctionQuery(matchQuery)
	if schemaType != "" {
		typeQuery := bleve.NewTermQuery(schemaType)
		typeQuery.SetField("schemaType")
		searchQuery.AddQuery(typeQuery)
	}

	request := bleve.NewSearchRequestOptions(searchQuery, limit, 0, false)
	request.Fields = []string{"name", "schemaType", "title", "description"}

	results, err := i.bleveIndex.Search(request)
	if err != nil {
		return nil, fmt.Errorf("schema index search failed: %w", err)
	}

	hits := make([]SchemaHit, 0, len(results.Hits))
	for _, hit := range results.Hits {
		name, _ := hit.Fields["name"].(string)
		schemaType, _ := hit.Fields["schemaType"].(string)
		title, _ := hit.Fields["title"].(string)
		description, _ := hit.Fields["description"].(string)

		hits = append(hits, SchemaHit{
			SchemaName:  name,
			SchemaType:  schemaType,
			Title:       title,
			Description: description,
			Score:       hit.Score,
		})
	}
	return hits, nil
}

// Count returns the number of indexed schemas.
func (i *SchemaIndex) Count() (uint64, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	count, err := i.bleveIndex.DocCount()
	if err != nil {
		return 0, fmt.Errorf("failed to get schema index count: %w", err)
	}
	return count, nil
}

// Close releases the index.
func (i *SchemaIndex) Close() error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.bleveIndex != nil {
		return i.bleveIndex.Close()
	}
	return nil
}
