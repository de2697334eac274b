// ABOUTME: Capability interfaces for the pluggable embedding, generation and storage backends
// ABOUTME: Injected into the ingestion service and answer engine, substitutable in tests
package knowledge

import (
	"context"

	"github.com/platonbot/platon/internal/models"
)

// Embedder converts text into fixed-dimension vectors.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	Dimension() int
}

// Generator produces an answer from an assembled grounding prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// VectorStore persists knowledge chunks and serves owner-filtered similarity
// search, ranked highest score first.
type VectorStore interface {
	Bootstrap(ctx context.Context) error
	Upsert(ctx context.Context, chunks []models.KnowledgeChunk) error
	Search(ctx context.Context, vector []float32, ownerID int64, limit int) ([]models.ScoredChunk, error)
}
