package catalog

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TanaySingh02/Farmwise2.0/pkg/vectorindex"
	"github.com/TanaySingh02/Farmwise2.0/pkg/vectorindex/memory"
)

type stubEmbedder struct {
	fail  bool
	calls int
}

func (s *stubEmbedder) Generate(ctx context.Context, text string, taskType string) ([]float32, error) {
	s.calls++
	if s.fail {
		return nil, fmt.Errorf("embedding service unavailable")
	}
	// A fixed direction is enough for upsert tests.
	return []float32{1, 0, 0}, nil
}

type failingIndex struct{}

func (failingIndex) Upsert(ctx context.Context, docs []vectorindex.Document) error {
	return fmt.Errorf("index write failed")
}

func (failingIndex) Search(ctx context.Context, vector []float32, topK int, filter *vectorindex.Filter) ([]vectorindex.SearchResult, error) {
	return nil, nil
}

func TestDocumentIDStable(t *testing.T) {
	first := DocumentID("PMKSY", ChunkKindEligibility, 1)
	second := DocumentID("PMKSY", ChunkKindEligibility, 1)
	assert.Equal(t, first, second)

	assert.NotEqual(t, first, DocumentID("PMKSY", ChunkKindOverview, 1))
	assert.NotEqual(t, first, DocumentID("PMKSY", ChunkKindEligibility, 2))
	assert.NotEqual(t, first, DocumentID("PMFBY", ChunkKindEligibility, 1))
}

func TestIndexIdempotent(t *testing.T) {
	index := memory.NewMemoryIndex()
	indexer := NewIndexer(&stubEmbedder{}, index)

	chunks, err := ChunkScheme(validScheme())
	require.NoError(t, err)

	require.NoError(t, indexer.Index(context.Background(), chunks))
	require.NoError(t, indexer.Index(context.Background(), chunks))

	// Same chunk set twice, same document ids: no duplicates.
	assert.Equal(t, len(chunks), index.Len())
}

func TestIndexAttachesMetadata(t *testing.T) {
	index := memory.NewMemoryIndex()
	indexer := NewIndexer(&stubEmbedder{}, index)

	chunks, err := ChunkScheme(validScheme())
	require.NoError(t, err)
	require.NoError(t, indexer.Index(context.Background(), chunks))

	results, err := index.Search(context.Background(), []float32{1, 0, 0}, 10, &vectorindex.Filter{ChunkKind: string(ChunkKindEligibility)})
	require.NoError(t, err)
	require.Len(t, results, 1)

	meta := results[0].Metadata
	assert.Equal(t, "Pradhan Mantri Krishi Sinchayee Yojana", meta.SchemeName)
	assert.Equal(t, "Ministry of Agriculture and Farmers Welfare", meta.Ministry)
	assert.Equal(t, "eligibility", meta.ChunkKind)
	assert.Equal(t, "2025-04-01", meta.LastUpdated)
	assert.Equal(t, "https://pmksy.gov.in", meta.ReferenceLink)
}

func TestIndexEmbeddingFailureFailsBatch(t *testing.T) {
	index := memory.NewMemoryIndex()
	embedder := &stubEmbedder{fail: true}
	indexer := NewIndexer(embedder, index)

	chunks, err := ChunkScheme(validScheme())
	require.NoError(t, err)

	err = indexer.Index(context.Background(), chunks)
	require.Error(t, err)
	assert.Zero(t, index.Len(), "no partial writes on embedding failure")
}

func TestIndexWriteFailureReported(t *testing.T) {
	indexer := NewIndexer(&stubEmbedder{}, failingIndex{})

	chunks, err := ChunkScheme(validScheme())
	require.NoError(t, err)

	err = indexer.Index(context.Background(), chunks)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "index write failed")
}

func TestIndexEmptyBatch(t *testing.T) {
	embedder := &stubEmbedder{}
	indexer := NewIndexer(embedder, memory.NewMemoryIndex())

	require.NoError(t, indexer.Index(context.Background(), nil))
	assert.Zero(t, embedder.calls)
}
