package memory

import (
	"context"
	"math"
	"sort"
	"sync"

	"github.com/TanaySingh02/Farmwise2.0/pkg/vectorindex"
)

// MemoryIndex is a brute-force in-process index. It backs tests and
// small single-node deployments.
type MemoryIndex struct {
	mu   sync.RWMutex
	docs map[string]vectorindex.Document
}

var _ vectorindex.Index = &MemoryIndex{}

func NewMemoryIndex() *MemoryIndex {
	return &MemoryIndex{
		docs: make(map[string]vectorindex.Document),
	}
}

func (m *MemoryIndex) Upsert(ctx context.Context, docs []vectorindex.Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, doc := range docs {
		m.docs[doc.Id] = doc
	}
	return nil
}

func (m *MemoryIndex) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.docs)
}

func (m *MemoryIndex) Search(ctx context.Context, vector []float32, topK int, filter *vectorindex.Filter) ([]vectorindex.SearchResult, error) {
	if topK <= 0 {
		topK = 5
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	results := make([]vectorindex.SearchResult, 0, len(m.docs))
	for _, doc := range m.docs {
		if !matches(doc.Metadata, filter) {
			continue
		}
		results = append(results, vectorindex.SearchResult{
			Id:       doc.Id,
			Content:  doc.Content,
			Score:    cosineSimilarity(vector, doc.Embedding),
			Metadata: doc.Metadata,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Id < results[j].Id
	})

	if len(results) > topK {
		results = results[:topK]
	}
	return results, nil
}

func matches(meta vectorindex.Metadata, filter *vectorindex.Filter) bool {
	if filter == nil {
		return true
	}
	if filter.SchemeName != "" && meta.SchemeName != filter.SchemeName {
		return false
	}
	if filter.Ministry != "" && meta.Ministry != filter.Ministry {
		return false
	}
	if filter.ChunkKind != "" && meta.ChunkKind != filter.ChunkKind {
		return false
	}
	return true
}

// cosineSimilarity assumes nothing about vector magnitude.
func cosineSimilarity(a, b []float32) float32 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return float32(dot / (math.Sqrt(normA) * math.Sqrt(normB)))
}
