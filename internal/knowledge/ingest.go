// ABOUTME: Ingestion service: load, chunk, embed and store owner-tagged text
// ABOUTME: Orchestrates the chunker, embedding backend and vector store
package knowledge

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/platonbot/platon/internal/chunker"
	"github.com/platonbot/platon/internal/models"
)

// IngestorConfig bundles the process-wide chunking settings.
type IngestorConfig struct {
	ChunkSize    int
	ChunkOverlap int
}

// Ingestor writes documents and notes into the vector knowledge base.
type Ingestor struct {
	embedder     Embedder
	store        VectorStore
	chunkSize    int
	chunkOverlap int
	logger       *zap.Logger
}

// NewIngestor creates an ingestion service with the given backends.
func NewIngestor(embedder Embedder, store VectorStore, cfg IngestorConfig, logger *zap.Logger) *Ingestor {
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = chunker.DefaultSize
	}
	if cfg.ChunkOverlap < 0 || cfg.ChunkOverlap >= cfg.ChunkSize {
		cfg.ChunkOverlap = 0
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Ingestor{
		embedder:     embedder,
		store:        store,
		chunkSize:    cfg.ChunkSize,
		chunkOverlap: cfg.ChunkOverlap,
		logger:       logger,
	}
}

// IngestText stores a manual note under the "message" source. Blank text is
// rejected before any write.
func (in *Ingestor) IngestText(ctx context.Context, text string, ownerID int64) (models.IngestionResult, error) {
	if strings.TrimSpace(text) == "" {
		return models.IngestionResult{}, models.ErrEmptyInput
	}
	return in.ingestUnits(ctx, []string{text}, ownerID, models.SourceMessage)
}

// IngestFile loads a .pdf or .txt document and stores its content under the
// file's base name. Other extensions fail with ErrUnsupportedFormat and
// nothing is written.
func (in *Ingestor) IngestFile(ctx context.Context, path string, ownerID int64) (models.IngestionResult, error) {
	units, err := loadDocument(path)
	if err != nil {
		return models.IngestionResult{}, err
	}
	return in.ingestUnits(ctx, units, ownerID, filepath.Base(path))
}

// ingestUnits chunks, embeds and upserts every text unit. All fragments are
// embedded before anything is written, so an embedding failure leaves the
// store untouched; a failure inside the upsert itself may leave a partial
// write and is reported, not masked.
func (in *Ingestor) ingestUnits(ctx context.Context, units []string, ownerID int64, source string) (models.IngestionResult, error) {
	var chunks []models.KnowledgeChunk
	for _, unit := range units {
		for fragment := range chunker.Split(unit, in.chunkSize, in.chunkOverlap) {
			vector, err := in.embedder.Embed(ctx, fragment)
			if err != nil {
				return models.IngestionResult{}, fmt.Errorf("embed fragment: %w", err)
			}
			chunks = append(chunks, models.NewKnowledgeChunk(fragment, vector, ownerID, source))
		}
	}

	if len(chunks) > 0 {
		if err := in.store.Upsert(ctx, chunks); err != nil {
			return models.IngestionResult{}, fmt.Errorf("store fragments: %w", err)
		}
	}

	in.logger.Info("ingested",
		zap.Int64("owner_id", ownerID),
		zap.String("source", source),
		zap.Int("fragments", len(chunks)),
	)
	return models.IngestionResult{FragmentCount: len(chunks)}, nil
}
