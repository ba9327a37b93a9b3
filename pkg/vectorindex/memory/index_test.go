package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TanaySingh02/Farmwise2.0/pkg/vectorindex"
)

func doc(id string, embedding []float32, meta vectorindex.Metadata) vectorindex.Document {
	return vectorindex.Document{
		Id:        id,
		Content:   "content of " + id,
		Embedding: embedding,
		Metadata:  meta,
	}
}

func TestSearchRanksBySimilarity(t *testing.T) {
	index := NewMemoryIndex()
	ctx := context.Background()

	require.NoError(t, index.Upsert(ctx, []vectorindex.Document{
		doc("close", []float32{1, 0, 0}, vectorindex.Metadata{SchemeName: "A"}),
		doc("far", []float32{0, 1, 0}, vectorindex.Metadata{SchemeName: "B"}),
		doc("middle", []float32{0.7, 0.7, 0}, vectorindex.Metadata{SchemeName: "C"}),
	}))

	results, err := index.Search(ctx, []float32{1, 0, 0}, 3, nil)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, "close", results[0].Id)
	assert.Equal(t, "middle", results[1].Id)
	assert.Equal(t, "far", results[2].Id)
	assert.Greater(t, results[0].Score, results[1].Score)
}

func TestSearchTopK(t *testing.T) {
	index := NewMemoryIndex()
	ctx := context.Background()

	require.NoError(t, index.Upsert(ctx, []vectorindex.Document{
		doc("a", []float32{1, 0}, vectorindex.Metadata{}),
		doc("b", []float32{0.9, 0.1}, vectorindex.Metadata{}),
		doc("c", []float32{0, 1}, vectorindex.Metadata{}),
	}))

	results, err := index.Search(ctx, []float32{1, 0}, 2, nil)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestSearchFilters(t *testing.T) {
	index := NewMemoryIndex()
	ctx := context.Background()

	require.NoError(t, index.Upsert(ctx, []vectorindex.Document{
		doc("a", []float32{1, 0}, vectorindex.Metadata{SchemeName: "PMKSY", ChunkKind: "eligibility"}),
		doc("b", []float32{1, 0}, vectorindex.Metadata{SchemeName: "PMKSY", ChunkKind: "overview"}),
		doc("c", []float32{1, 0}, vectorindex.Metadata{SchemeName: "PMFBY", ChunkKind: "eligibility"}),
	}))

	results, err := index.Search(ctx, []float32{1, 0}, 10, &vectorindex.Filter{ChunkKind: "eligibility"})
	require.NoError(t, err)
	assert.Len(t, results, 2)

	results, err = index.Search(ctx, []float32{1, 0}, 10, &vectorindex.Filter{SchemeName: "PMKSY", ChunkKind: "eligibility"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "a", results[0].Id)
}

func TestUpsertReplacesById(t *testing.T) {
	index := NewMemoryIndex()
	ctx := context.Background()

	require.NoError(t, index.Upsert(ctx, []vectorindex.Document{
		doc("a", []float32{1, 0}, vectorindex.Metadata{SchemeName: "old"}),
	}))
	require.NoError(t, index.Upsert(ctx, []vectorindex.Document{
		doc("a", []float32{1, 0}, vectorindex.Metadata{SchemeName: "new"}),
	}))

	assert.Equal(t, 1, index.Len())

	results, err := index.Search(ctx, []float32{1, 0}, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, "new", results[0].Metadata.SchemeName)
}
