// ABOUTME: Tests for the in-process vector store
// ABOUTME: Verifies ranking, owner filtering and dimension checks

package vectorstore

import (
	"context"
	"errors"
	"testing"

	"github.com/platonbot/platon/internal/models"
)

func mustUpsert(t *testing.T, store *MemoryStore, chunks ...models.KnowledgeChunk) {
	t.Helper()
	if err := store.Upsert(context.Background(), chunks); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
}

func TestMemoryStore_Bootstrap(t *testing.T) {
	if err := NewMemoryStore(4).Bootstrap(context.Background()); err != nil {
		t.Errorf("Bootstrap failed: %v", err)
	}
	if err := NewMemoryStore(0).Bootstrap(context.Background()); !errors.Is(err, models.ErrDimensionMismatch) {
		t.Errorf("Bootstrap with zero size = %v, want ErrDimensionMismatch", err)
	}
}

func TestMemoryStore_SearchRanking(t *testing.T) {
	store := NewMemoryStore(3)
	mustUpsert(t, store,
		models.KnowledgeChunk{ID: "a", Text: "aligned", Vector: []float32{1, 0, 0}, OwnerID: 1},
		models.KnowledgeChunk{ID: "b", Text: "orthogonal", Vector: []float32{0, 1, 0}, OwnerID: 1},
		models.KnowledgeChunk{ID: "c", Text: "close", Vector: []float32{0.9, 0.1, 0}, OwnerID: 1},
	)

	results, err := store.Search(context.Background(), []float32{1, 0, 0}, 1, 10)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}

	wantOrder := []string{"a", "c", "b"}
	for i, want := range wantOrder {
		if results[i].Chunk.ID != want {
			t.Errorf("Result %d = %s (score %f), want %s", i, results[i].Chunk.ID, results[i].Score, want)
		}
	}
	for i := 1; i < len(results); i++ {
		if results[i].Score > results[i-1].Score {
			t.Errorf("Results not sorted: score[%d]=%f > score[%d]=%f", i, results[i].Score, i-1, results[i-1].Score)
		}
	}
}

func TestMemoryStore_OwnerFilter(t *testing.T) {
	store := NewMemoryStore(2)
	mustUpsert(t, store,
		models.KnowledgeChunk{ID: "mine", Vector: []float32{1, 0}, OwnerID: 42},
		models.KnowledgeChunk{ID: "theirs", Vector: []float32{1, 0}, OwnerID: 43},
	)

	results, err := store.Search(context.Background(), []float32{1, 0}, 42, 10)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 1 || results[0].Chunk.ID != "mine" {
		t.Errorf("Owner 42 search = %+v, want only its own chunk", results)
	}

	empty, err := store.Search(context.Background(), []float32{1, 0}, 99, 10)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("Owner with no chunks got %d results, want 0", len(empty))
	}
}

func TestMemoryStore_Limit(t *testing.T) {
	store := NewMemoryStore(2)
	for i := 0; i < 10; i++ {
		mustUpsert(t, store, models.KnowledgeChunk{
			ID:      string(rune('a' + i)),
			Vector:  []float32{1, float32(i) * 0.1},
			OwnerID: 1,
		})
	}

	results, err := store.Search(context.Background(), []float32{1, 0}, 1, 3)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 3 {
		t.Errorf("Expected 3 results with limit 3, got %d", len(results))
	}
}

func TestMemoryStore_DimensionMismatch(t *testing.T) {
	store := NewMemoryStore(3)

	err := store.Upsert(context.Background(), []models.KnowledgeChunk{
		{ID: "bad", Vector: []float32{1, 0}, OwnerID: 1},
	})
	if !errors.Is(err, models.ErrDimensionMismatch) {
		t.Errorf("Upsert with wrong dimension = %v, want ErrDimensionMismatch", err)
	}
	if store.Len() != 0 {
		t.Errorf("Store has %d chunks after rejected upsert, want 0", store.Len())
	}

	_, err = store.Search(context.Background(), []float32{1, 0}, 1, 10)
	if !errors.Is(err, models.ErrDimensionMismatch) {
		t.Errorf("Search with wrong dimension = %v, want ErrDimensionMismatch", err)
	}
}

func TestMemoryStore_NoDeduplication(t *testing.T) {
	store := NewMemoryStore(2)
	chunk := models.KnowledgeChunk{ID: "x", Text: "same text", Vector: []float32{1, 0}, OwnerID: 1}
	mustUpsert(t, store, chunk)
	chunk.ID = "y"
	mustUpsert(t, store, chunk)

	if store.Len() != 2 {
		t.Errorf("Store has %d chunks after storing identical text twice, want 2", store.Len())
	}
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float32
	}{
		{"identical", []float32{1, 2, 3}, []float32{1, 2, 3}, 1},
		{"orthogonal", []float32{1, 0}, []float32{0, 1}, 0},
		{"opposite", []float32{1, 0}, []float32{-1, 0}, -1},
		{"zero vector", []float32{0, 0}, []float32{1, 0}, 0},
		{"length mismatch", []float32{1}, []float32{1, 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cosineSimilarity(tt.a, tt.b)
			if diff := got - tt.want; diff > 1e-6 || diff < -1e-6 {
				t.Errorf("cosineSimilarity = %f, want %f", got, tt.want)
			}
		})
	}
}
