package pgvector

import (
	"context"

	pgv "github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/TanaySingh02/Farmwise2.0/internal/model"
	"github.com/TanaySingh02/Farmwise2.0/pkg/vectorindex"
)

// PgVectorIndex stores scheme chunks in the scheme_chunks table and
// ranks by pgvector cosine distance.
type PgVectorIndex struct {
	db *gorm.DB
}

var _ vectorindex.Index = &PgVectorIndex{}

func NewPgVectorIndex(db *gorm.DB) *PgVectorIndex {
	return &PgVectorIndex{
		db: db,
	}
}

func (p *PgVectorIndex) Upsert(ctx context.Context, docs []vectorindex.Document) error {
	if len(docs) == 0 {
		return nil
	}

	models := make([]*model.SchemeChunk, len(docs))
	for i, doc := range docs {
		models[i] = &model.SchemeChunk{
			DocKey:         doc.Id,
			Document:       doc.Content,
			EmbeddingValue: pgv.NewVector(doc.Embedding),
			SchemeName:     doc.Metadata.SchemeName,
			Ministry:       doc.Metadata.Ministry,
			ChunkKind:      doc.Metadata.ChunkKind,
			LastUpdated:    doc.Metadata.LastUpdated,
			ReferenceLink:  doc.Metadata.ReferenceLink,
		}
	}

	// Re-indexing the same scheme replaces existing chunks by doc_key.
	return p.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "doc_key"}},
			UpdateAll: true,
		}).
		Create(&models).Error
}

func (p *PgVectorIndex) Search(ctx context.Context, vector []float32, topK int, filter *vectorindex.Filter) ([]vectorindex.SearchResult, error) {
	if topK <= 0 {
		topK = 5
	}

	// Cosine distance in pgvector is: 1 - cosine_similarity
	// So we compute: 1 - (embedding_value <=> query_vector) = cosine_similarity
	type result struct {
		model.SchemeChunk
		Similarity float64
	}
	var results []result

	queryVector := pgv.NewVector(vector)

	query := p.db.WithContext(ctx).
		Table("scheme_chunks").
		Select("scheme_chunks.*, 1 - (embedding_value <=> ?) as similarity", queryVector)

	if filter != nil {
		if filter.SchemeName != "" {
			query = query.Where("scheme_name = ?", filter.SchemeName)
		}
		if filter.Ministry != "" {
			query = query.Where("ministry = ?", filter.Ministry)
		}
		if filter.ChunkKind != "" {
			query = query.Where("chunk_kind = ?", filter.ChunkKind)
		}
	}

	err := query.
		Order("similarity DESC").
		Limit(topK).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	searchResults := make([]vectorindex.SearchResult, len(results))
	for i, res := range results {
		searchResults[i] = vectorindex.SearchResult{
			Id:      res.DocKey,
			Content: res.Document,
			Score:   float32(res.Similarity),
			Metadata: vectorindex.Metadata{
				SchemeName:    res.SchemeName,
				Ministry:      res.Ministry,
				ChunkKind:     res.ChunkKind,
				LastUpdated:   res.LastUpdated,
				ReferenceLink: res.ReferenceLink,
			},
		}
	}
	return searchResults, nil
}
