package embedding

import "context"

// Task types passed to providers that distinguish document vs query
// embeddings (Gemini does, Ollama ignores them).
const (
	TaskRetrievalDocument = "RETRIEVAL_DOCUMENT"
	TaskRetrievalQuery    = "RETRIEVAL_QUERY"
)

// EmbeddingProvider turns text into a fixed-dimension vector.
// Implementations must return unit-length vectors so cosine distance
// is comparable across backends.
type EmbeddingProvider interface {
	Generate(ctx context.Context, text string, taskType string) ([]float32, error)
}
