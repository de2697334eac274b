// ABOUTME: OpenAI-backed embedding and generation client
// ABOUTME: Single attempt per call; failures surface to the caller unretried
package llm

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/platonbot/platon/internal/models"
)

const (
	// DefaultChatModel is the default model for answer generation.
	DefaultChatModel = "gpt-4o-mini"
	// DefaultEmbeddingModel is the default model for embeddings.
	DefaultEmbeddingModel = string(openai.SmallEmbedding3)
)

// embeddingDimensions maps known embedding models to their vector size.
var embeddingDimensions = map[string]int{
	string(openai.SmallEmbedding3): 1536,
	string(openai.LargeEmbedding3): 3072,
	string(openai.AdaEmbeddingV2):  1536,
}

// ClientConfig holds configuration for the OpenAI client.
type ClientConfig struct {
	APIKey         string
	ChatModel      string
	EmbeddingModel string
	Timeout        time.Duration
}

// Client wraps the OpenAI API for both embedding and generation. Retry
// policy belongs to the caller, so every request is a single attempt with a
// per-call timeout.
type Client struct {
	client         *openai.Client
	chatModel      string
	embeddingModel openai.EmbeddingModel
	dimension      int
	timeout        time.Duration
}

// NewClient creates an OpenAI client for the configured models.
func NewClient(cfg ClientConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}
	if cfg.ChatModel == "" {
		cfg.ChatModel = DefaultChatModel
	}
	if cfg.EmbeddingModel == "" {
		cfg.EmbeddingModel = DefaultEmbeddingModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	dimension, ok := embeddingDimensions[cfg.EmbeddingModel]
	if !ok {
		return nil, fmt.Errorf("unknown embedding model %q", cfg.EmbeddingModel)
	}

	return &Client{
		client:         openai.NewClient(cfg.APIKey),
		chatModel:      cfg.ChatModel,
		embeddingModel: openai.EmbeddingModel(cfg.EmbeddingModel),
		dimension:      dimension,
		timeout:        cfg.Timeout,
	}, nil
}

// Dimension returns the vector size of the configured embedding model.
func (c *Client) Dimension() int {
	return c.dimension
}

// Embed converts text into a fixed-length embedding vector.
func (c *Client) Embed(ctx context.Context, text string) ([]float32, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateEmbeddings(ctx, openai.EmbeddingRequestStrings{
		Input: []string{text},
		Model: c.embeddingModel,
	})
	if err != nil {
		return nil, fmt.Errorf("create embeddings: %v: %w", err, models.ErrBackendUnavailable)
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("no embeddings returned: %w", models.ErrBackendUnavailable)
	}

	vector := resp.Data[0].Embedding
	if len(vector) != c.dimension {
		return nil, fmt.Errorf("model %s returned %d dimensions, expected %d: %w",
			c.embeddingModel, len(vector), c.dimension, models.ErrDimensionMismatch)
	}
	return vector, nil
}

// Generate produces an answer for an assembled grounding prompt. The
// response is returned verbatim.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.chatModel,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Temperature: 0.3,
	})
	if err != nil {
		return "", fmt.Errorf("create chat completion: %v: %w", err, models.ErrGenerationFailure)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no completion choices returned: %w", models.ErrGenerationFailure)
	}
	return resp.Choices[0].Message.Content, nil
}
