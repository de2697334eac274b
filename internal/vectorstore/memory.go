// ABOUTME: In-process vector store with cosine similarity search
// ABOUTME: Backs the "memory" vector backend and unit tests
package vectorstore

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/platonbot/platon/internal/models"
)

// MemoryStore keeps chunks in process memory. Same contract as the Qdrant
// store, no durability.
type MemoryStore struct {
	vectorSize int
	mu         sync.RWMutex
	chunks     []models.KnowledgeChunk
}

// NewMemoryStore creates an empty store expecting vectors of the given size.
func NewMemoryStore(vectorSize int) *MemoryStore {
	return &MemoryStore{vectorSize: vectorSize}
}

// Bootstrap validates the configured dimensionality; there is nothing to
// create for an in-process store.
func (s *MemoryStore) Bootstrap(ctx context.Context) error {
	if s.vectorSize <= 0 {
		return fmt.Errorf("vector size %d: %w", s.vectorSize, models.ErrDimensionMismatch)
	}
	return nil
}

// Upsert appends chunks after validating their dimensionality. Duplicate
// content is stored again, matching the persistent backend's no-dedup
// behavior.
func (s *MemoryStore) Upsert(ctx context.Context, chunks []models.KnowledgeChunk) error {
	for _, chunk := range chunks {
		if len(chunk.Vector) != s.vectorSize {
			return fmt.Errorf("chunk %s has %d dimensions, store expects %d: %w",
				chunk.ID, len(chunk.Vector), s.vectorSize, models.ErrDimensionMismatch)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.chunks = append(s.chunks, chunks...)
	return nil
}

// Search scores the owner's chunks by cosine similarity, highest first.
func (s *MemoryStore) Search(ctx context.Context, vector []float32, ownerID int64, limit int) ([]models.ScoredChunk, error) {
	if len(vector) != s.vectorSize {
		return nil, fmt.Errorf("query vector has %d dimensions, store expects %d: %w",
			len(vector), s.vectorSize, models.ErrDimensionMismatch)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var results []models.ScoredChunk
	for _, chunk := range s.chunks {
		if chunk.OwnerID != ownerID {
			continue
		}
		results = append(results, models.ScoredChunk{
			Chunk: chunk,
			Score: cosineSimilarity(vector, chunk.Vector),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// Len reports the number of stored chunks across all owners.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.chunks)
}

// cosineSimilarity mirrors Qdrant's cosine scoring.
func cosineSimilarity(a, b []float32) float32 {
	if len(a) != len(b) {
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
