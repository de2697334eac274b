// ABOUTME: Shared wiring that builds the knowledge pipeline from configuration
// ABOUTME: Consolidates backend construction, bootstrap and failure handling
package commands

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/platonbot/platon/internal/config"
	"github.com/platonbot/platon/internal/history"
	"github.com/platonbot/platon/internal/knowledge"
	"github.com/platonbot/platon/internal/llm"
	"github.com/platonbot/platon/internal/models"
	"github.com/platonbot/platon/internal/vectorstore"
)

// core bundles the wired pipeline for one process.
type core struct {
	cfg      *config.Config
	logger   *zap.Logger
	ingestor *knowledge.Ingestor
	engine   *knowledge.AnswerEngine
	history  *history.Log
	close    func()
}

// buildCore loads configuration, connects the backends and bootstraps the
// collection. Any failure here is fatal for the command: missing credentials
// and misconfigured dimensions are startup conditions, not runtime errors.
func buildCore(ctx context.Context) (*core, error) {
	// Load .env file if it exists (for API keys)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	logger, err := newLogger()
	if err != nil {
		return nil, fmt.Errorf("initializing logger: %w", err)
	}

	client, err := llm.NewClient(llm.ClientConfig{
		APIKey:         cfg.OpenAIKey,
		ChatModel:      cfg.ChatModel,
		EmbeddingModel: cfg.EmbeddingModel,
		Timeout:        cfg.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("initializing OpenAI client: %w", err)
	}

	if client.Dimension() != cfg.VectorDim {
		return nil, fmt.Errorf("embedding model %s produces %d dimensions but the collection is configured for %d: %w",
			cfg.EmbeddingModel, client.Dimension(), cfg.VectorDim, models.ErrDimensionMismatch)
	}

	var store knowledge.VectorStore
	closeStore := func() {}
	switch cfg.VectorBackend {
	case config.BackendMemory:
		store = vectorstore.NewMemoryStore(cfg.VectorDim)
	default:
		qdrantStore, err := vectorstore.NewQdrantStore(vectorstore.QdrantConfig{
			Host:       cfg.QdrantHost,
			Port:       cfg.QdrantPort,
			APIKey:     cfg.QdrantAPIKey,
			UseTLS:     cfg.QdrantUseTLS,
			Collection: cfg.Collection,
			VectorSize: cfg.VectorDim,
			Timeout:    cfg.Timeout,
		}, logger)
		if err != nil {
			return nil, fmt.Errorf("connecting to qdrant: %w", err)
		}
		store = qdrantStore
		closeStore = func() { _ = qdrantStore.Close() }
	}

	if err := store.Bootstrap(ctx); err != nil {
		closeStore()
		return nil, fmt.Errorf("bootstrapping collection: %w", err)
	}

	ingestor := knowledge.NewIngestor(client, store, knowledge.IngestorConfig{
		ChunkSize:    cfg.ChunkSize,
		ChunkOverlap: cfg.ChunkOverlap,
	}, logger)

	engine := knowledge.NewAnswerEngine(client, client, store, knowledge.AnswerConfig{
		TopK:          cfg.TopK,
		HistoryWindow: cfg.HistoryWindow,
	}, logger)

	return &core{
		cfg:      cfg,
		logger:   logger,
		ingestor: ingestor,
		engine:   engine,
		history:  history.NewLog(cfg.HistoryLimit),
		close: func() {
			closeStore()
			_ = logger.Sync()
		},
	}, nil
}

// newLogger builds a zap logger honoring the global verbosity flags. Logs go
// to stderr so the serve command's stdio transport stays clean.
func newLogger() (*zap.Logger, error) {
	if quiet {
		return zap.NewNop(), nil
	}
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
