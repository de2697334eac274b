// ABOUTME: Answer engine: owner-filtered retrieval, prompt assembly and generation
// ABOUTME: Grounds the generative backend on retrieved chunks and recent history
package knowledge

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/platonbot/platon/internal/models"
)

// Retrieval defaults, tunable per deployment.
const (
	DefaultTopK          = 6
	DefaultHistoryWindow = 5
)

// EmptyContextPlaceholder stands in for the context block when the owner has
// no matching knowledge, so an empty knowledge base never fails a query.
const EmptyContextPlaceholder = "No information available in the knowledge base."

const promptInstruction = "You are a helpful assistant. Answer the user's question using the context and the conversation history."

// AnswerConfig bundles retrieval and prompt settings.
type AnswerConfig struct {
	TopK          int
	HistoryWindow int
}

// AnswerEngine answers questions from the owner's knowledge base.
type AnswerEngine struct {
	embedder      Embedder
	generator     Generator
	store         VectorStore
	topK          int
	historyWindow int
	logger        *zap.Logger
}

// NewAnswerEngine creates an answer engine with the given backends.
func NewAnswerEngine(embedder Embedder, generator Generator, store VectorStore, cfg AnswerConfig, logger *zap.Logger) *AnswerEngine {
	if cfg.TopK <= 0 {
		cfg.TopK = DefaultTopK
	}
	if cfg.HistoryWindow <= 0 {
		cfg.HistoryWindow = DefaultHistoryWindow
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnswerEngine{
		embedder:      embedder,
		generator:     generator,
		store:         store,
		topK:          cfg.TopK,
		historyWindow: cfg.HistoryWindow,
		logger:        logger,
	}
}

// Answer embeds the query, retrieves the owner's most relevant chunks,
// assembles the grounding prompt and returns the generative backend's
// response verbatim. Backend failures propagate untouched; retry policy
// belongs to the caller.
func (e *AnswerEngine) Answer(ctx context.Context, query string, ownerID int64, history []models.ConversationTurn) (string, error) {
	vector, err := e.embedder.Embed(ctx, query)
	if err != nil {
		return "", fmt.Errorf("embed query: %w", err)
	}

	results, err := e.store.Search(ctx, vector, ownerID, e.topK)
	if err != nil {
		return "", fmt.Errorf("search knowledge base: %w", err)
	}

	answer, err := e.generator.Generate(ctx, e.buildPrompt(query, results, history))
	if err != nil {
		return "", err
	}

	e.logger.Debug("answered",
		zap.Int64("owner_id", ownerID),
		zap.Int("retrieved", len(results)),
	)
	return answer, nil
}

// buildPrompt assembles instruction, context block, history block and the
// question into a single grounding prompt.
func (e *AnswerEngine) buildPrompt(query string, results []models.ScoredChunk, history []models.ConversationTurn) string {
	texts := make([]string, 0, len(results))
	for _, result := range results {
		texts = append(texts, result.Chunk.Text)
	}
	contextBlock := strings.Join(texts, "\n\n")
	if contextBlock == "" {
		contextBlock = EmptyContextPlaceholder
	}

	if len(history) > e.historyWindow {
		history = history[len(history)-e.historyWindow:]
	}
	lines := make([]string, 0, len(history))
	for _, turn := range history {
		lines = append(lines, fmt.Sprintf("%s: %s", turn.Role, turn.Content))
	}

	var sb strings.Builder
	sb.WriteString(promptInstruction)
	sb.WriteString("\n\nContext:\n")
	sb.WriteString(contextBlock)
	sb.WriteString("\n\nConversation history:\n")
	sb.WriteString(strings.Join(lines, "\n"))
	sb.WriteString("\n\nUser question: ")
	sb.WriteString(query)
	return sb.String()
}
