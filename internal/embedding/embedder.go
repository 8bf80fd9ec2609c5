package embedding

import "context"

// Embedder turns scenario text into a vector for the semantic content cache.
type Embedder interface {
	GetEmbedding(ctx context.Context, text string) ([]float32, error)
}
