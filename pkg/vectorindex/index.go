package vectorindex

import "context"

// Metadata travels with every indexed chunk and is returned verbatim
// on search hits.
type Metadata struct {
	SchemeName    string `json:"scheme_name"`
	Ministry      string `json:"ministry"`
	ChunkKind     string `json:"chunk_kind"`
	LastUpdated   string `json:"last_updated"`
	ReferenceLink string `json:"reference_link"`
}

type Document struct {
	Id        string
	Content   string
	Embedding []float32
	Metadata  Metadata
}

// Filter narrows a search to exact metadata values. Zero-value fields
// are ignored.
type Filter struct {
	SchemeName string
	Ministry   string
	ChunkKind  string
}

type SearchResult struct {
	Id       string
	Content  string
	Score    float32
	Metadata Metadata
}

// Index is a pluggable vector store. Upsert with an existing document
// id replaces the stored document.
type Index interface {
	Upsert(ctx context.Context, docs []Document) error
	Search(ctx context.Context, vector []float32, topK int, filter *Filter) ([]SearchResult, error)
}
