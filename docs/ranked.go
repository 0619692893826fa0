package docs

import (
	"fmt"
	"sync"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/mapping"
)

// RankedIndex provides scored full-text search over the documentation corpus
// using an in-memory Bleve index. It complements the literal line search:
// Search answers "where exactly does this string appear", RankedIndex answers
// "which documents are most relevant to this query".
type RankedIndex struct {
	mu    sync.RWMutex
	index bleve.Index
}

// RankedHit is one scored document from a ranked query.
type RankedHit struct {
	RelativePath string
	Score        float64
	Fragments    []string // highlighted excerpts around the match
}

// rankedDocument is the document structure stored in Bleve.
type rankedDocument struct {
	Content string `json:"content"`
}

// NewRankedIndex creates an empty in-memory ranked index.
func NewRankedIndex() (*RankedIndex, error) {
	bleveIndex, err := bleve.NewMemOnly(rankedMapping())
	if err != nil {
		return nil, fmt.Errorf("creating bleve index: %w", err)
	}
	return &RankedIndex{index: bleveIndex}, nil
}

// rankedMapping stores content so highlighted fragments can be produced.
func rankedMapping() *mapping.IndexMappingImpl {
	indexMapping := bleve.NewIndexMapping()

	docMapping := bleve.NewDocumentMapping()
	contentMapping := bleve.NewTextFieldMapping()
	contentMapping.Store = true
	contentMapping.IncludeInAll = true
	docMapping.AddFieldMappingsAt("content", contentMapping)

	indexMapping.DefaultMapping = docMapping
	return indexMapping
}

// IndexDoc adds or updates one document, keyed by its relative path.
func (ri *RankedIndex) IndexDoc(relativePath string, content string) error {
	ri.mu.Lock()
	defer ri.mu.Unlock()

	if err := ri.index.Index(relativePath, rankedDocument{Content: content}); err != nil {
		return fmt.Errorf("indexing %s: %w", relativePath, err)
	}
	return nil
}

// Query runs a match query and returns up to maxResults scored hits with
// highlighted content fragments.
func (ri *RankedIndex) Query(queryString string, maxResults int) ([]RankedHit, error) {
	ri.mu.RLock()
	defer ri.mu.RUnlock()

	if maxResults <= 0 {
		maxResults = 10
	}

	searchRequest := bleve.NewSearchRequest(bleve.NewMatchQuery(queryString))
	searchRequest.Size = maxResults
	searchRequest.Highlight = bleve.NewHighlight()

	searchResults, err := ri.index.Search(searchRequest)
	if err != nil {
		return nil, fmt.Errorf("querying index: %w", err)
	}

	hits := make([]RankedHit, 0, len(searchResults.Hits))
	for _, hit := range searchResults.Hits {
		hits = append(hits, RankedHit{
			RelativePath: hit.ID,
			Score:        hit.Score,
			Fragments:    hit.Fragments["content"],
		})
	}
	return hits, nil
}

// DocCount returns the number of indexed documents.
func (ri *RankedIndex) DocCount() uint64 {
	ri.mu.RLock()
	defer ri.mu.RUnlock()
	count, _ := ri.index.DocCount()
	return count
}

// Clear removes all documents by recreating the underlying index.
func (ri *RankedIndex) Clear() error {
	ri.mu.Lock()
	defer ri.mu.Unlock()

	if err := ri.index.Close(); err != nil {
		return fmt.Errorf("closing old index: %w", err)
	}
	newIndex, err := bleve.NewMemOnly(rankedMapping())
	if err != nil {
		return fmt.Errorf("creating new index: %w", err)
	}
	ri.index = newIndex
	return nil
}

// Close closes the underlying Bleve index.
func (ri *RankedIndex) Close() error {
	ri.mu.Lock()
	defer ri.mu.Unlock()
	return ri.index.Close()
}
