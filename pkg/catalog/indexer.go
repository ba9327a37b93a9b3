package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/TanaySingh02/Farmwise2.0/pkg/embedding"
	"github.com/TanaySingh02/Farmwise2.0/pkg/vectorindex"
)

// docIdNamespace is fixed so the same chunk set always yields the same
// document ids, making every re-index an idempotent replace.
var docIdNamespace = uuid.MustParse("5f7a3f0a-9c1e-4d2b-8a6f-2e4b9d1c7e33")

// DocumentID derives the stable identifier for a chunk from its scheme
// name, kind, and position within the indexing batch.
func DocumentID(schemeName string, kind ChunkKind, position int) string {
	key := fmt.Sprintf("%s_%s_%d", schemeName, kind, position)
	return uuid.NewSHA1(docIdNamespace, []byte(key)).String()
}

type Indexer struct {
	embedder embedding.EmbeddingProvider
	index    vectorindex.Index
}

func NewIndexer(embedder embedding.EmbeddingProvider, index vectorindex.Index) *Indexer {
	return &Indexer{
		embedder: embedder,
		index:    index,
	}
}

// Index embeds and upserts a chunk batch. Any embedding or index-write
// failure fails the whole batch; retries are the caller's concern.
func (i *Indexer) Index(ctx context.Context, chunks []Chunk) error {
	if len(chunks) == 0 {
		return nil
	}

	docs := make([]vectorindex.Document, len(chunks))
	for idx, chunk := range chunks {
		content := chunk.Render()

		vector, err := i.embedder.Generate(ctx, content, embedding.TaskRetrievalDocument)
		if err != nil {
			return fmt.Errorf("embed chunk %s/%s: %w", chunk.SchemeName, chunk.Kind, err)
		}

		docs[idx] = vectorindex.Document{
			Id:        DocumentID(chunk.SchemeName, chunk.Kind, idx),
			Content:   content,
			Embedding: vector,
			Metadata: vectorindex.Metadata{
				SchemeName:    chunk.SchemeName,
				Ministry:      chunk.Ministry,
				ChunkKind:     string(chunk.Kind),
				LastUpdated:   chunk.LastUpdated,
				ReferenceLink: chunk.OfficialWebsite,
			},
		}
	}

	if err := i.index.Upsert(ctx, docs); err != nil {
		return fmt.Errorf("upsert %d documents: %w", len(docs), err)
	}
	return nil
}
