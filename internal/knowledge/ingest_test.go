// ABOUTME: Tests for the ingestion service
// ABOUTME: Verifies chunking, rejection paths and store writes with fakes

package knowledge

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/platonbot/platon/internal/models"
	"github.com/platonbot/platon/internal/vectorstore"
)

func newTestIngestor(t *testing.T, cfg IngestorConfig) (*Ingestor, *vectorstore.MemoryStore) {
	t.Helper()
	store := vectorstore.NewMemoryStore(16)
	embedder := &fakeEmbedder{dim: 16}
	return NewIngestor(embedder, store, cfg, nil), store
}

func TestIngestor_IngestText(t *testing.T) {
	ingestor, store := newTestIngestor(t, IngestorConfig{})

	result, err := ingestor.IngestText(context.Background(), "Paris is the capital of France.", 42)
	if err != nil {
		t.Fatalf("IngestText failed: %v", err)
	}
	if result.FragmentCount != 1 {
		t.Errorf("FragmentCount = %d, want 1 for a short note", result.FragmentCount)
	}
	if store.Len() != 1 {
		t.Errorf("Store has %d chunks, want 1", store.Len())
	}
}

func TestIngestor_IngestText_Empty(t *testing.T) {
	tests := []string{"", "   ", "\n\t  \n"}

	for _, text := range tests {
		ingestor, store := newTestIngestor(t, IngestorConfig{})
		_, err := ingestor.IngestText(context.Background(), text, 42)
		if !errors.Is(err, models.ErrEmptyInput) {
			t.Errorf("IngestText(%q) = %v, want ErrEmptyInput", text, err)
		}
		if store.Len() != 0 {
			t.Errorf("Store has %d chunks after rejected note, want 0", store.Len())
		}
	}
}

func TestIngestor_LongTextIsChunked(t *testing.T) {
	ingestor, store := newTestIngestor(t, IngestorConfig{ChunkSize: 100, ChunkOverlap: 20})

	text := strings.Repeat("knowledge fragments overlap at their boundaries ", 10)
	result, err := ingestor.IngestText(context.Background(), text, 42)
	if err != nil {
		t.Fatalf("IngestText failed: %v", err)
	}
	if result.FragmentCount < 2 {
		t.Errorf("FragmentCount = %d, want several for a long note", result.FragmentCount)
	}
	if store.Len() != result.FragmentCount {
		t.Errorf("Store has %d chunks, result reported %d", store.Len(), result.FragmentCount)
	}
}

func TestIngestor_DoubleIngestStoresTwice(t *testing.T) {
	ingestor, store := newTestIngestor(t, IngestorConfig{})

	for i := 0; i < 2; i++ {
		if _, err := ingestor.IngestText(context.Background(), "the same note", 42); err != nil {
			t.Fatalf("IngestText failed: %v", err)
		}
	}
	if store.Len() != 2 {
		t.Errorf("Store has %d chunks after ingesting the same note twice, want 2", store.Len())
	}
}

func TestIngestor_IngestFile_Txt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("The library opens at nine."), 0o644); err != nil {
		t.Fatal(err)
	}

	ingestor, store := newTestIngestor(t, IngestorConfig{})
	result, err := ingestor.IngestFile(context.Background(), path, 42)
	if err != nil {
		t.Fatalf("IngestFile failed: %v", err)
	}
	if result.FragmentCount != 1 {
		t.Errorf("FragmentCount = %d, want 1", result.FragmentCount)
	}

	results, err := store.Search(context.Background(), mustEmbed(t, "library opens"), 42, 10)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 1 || results[0].Chunk.Source != "notes.txt" {
		t.Errorf("Stored chunk source = %+v, want notes.txt", results)
	}
}

func TestIngestor_IngestFile_UnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.docx")
	if err := os.WriteFile(path, []byte("binary junk"), 0o644); err != nil {
		t.Fatal(err)
	}

	ingestor, store := newTestIngestor(t, IngestorConfig{})
	_, err := ingestor.IngestFile(context.Background(), path, 42)
	if !errors.Is(err, models.ErrUnsupportedFormat) {
		t.Errorf("IngestFile(.docx) = %v, want ErrUnsupportedFormat", err)
	}
	if store.Len() != 0 {
		t.Errorf("Store has %d chunks after rejected file, want 0", store.Len())
	}
}

func TestIngestor_EmbeddingFailureWritesNothing(t *testing.T) {
	store := vectorstore.NewMemoryStore(16)
	embedder := &fakeEmbedder{dim: 16, err: models.ErrBackendUnavailable}
	ingestor := NewIngestor(embedder, store, IngestorConfig{}, nil)

	_, err := ingestor.IngestText(context.Background(), "will not be stored", 42)
	if !errors.Is(err, models.ErrBackendUnavailable) {
		t.Errorf("IngestText = %v, want ErrBackendUnavailable", err)
	}
	if store.Len() != 0 {
		t.Errorf("Store has %d chunks after embedding failure, want 0", store.Len())
	}
}

func mustEmbed(t *testing.T, text string) []float32 {
	t.Helper()
	vector, err := (&fakeEmbedder{dim: 16}).Embed(context.Background(), text)
	if err != nil {
		t.Fatal(err)
	}
	return vector
}
