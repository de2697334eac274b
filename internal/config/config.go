// ABOUTME: Centralized configuration for the knowledge assistant
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Vector store backends.
const (
	BackendQdrant = "qdrant"
	BackendMemory = "memory"
)

// Config holds all configuration for the knowledge assistant.
type Config struct {
	// OpenAI settings
	OpenAIKey      string
	ChatModel      string
	EmbeddingModel string
	Timeout        time.Duration

	// Qdrant settings
	QdrantHost   string
	QdrantPort   int
	QdrantAPIKey string
	QdrantUseTLS bool

	// Knowledge base settings
	VectorBackend string
	Collection    string
	VectorDim     int
	ChunkSize     int
	ChunkOverlap  int
	TopK          int
	NotePrefix    string

	// History settings
	HistoryLimit  int
	HistoryWindow int
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		OpenAIKey:      os.Getenv("OPENAI_API_KEY"),
		ChatModel:      getEnv("PLATON_CHAT_MODEL", "gpt-4o-mini"),
		EmbeddingModel: getEnv("PLATON_EMBEDDING_MODEL", "text-embedding-3-small"),
		Timeout:        getEnvDuration("PLATON_TIMEOUT", 30*time.Second),

		QdrantHost:   getEnv("QDRANT_HOST", "localhost"),
		QdrantPort:   getEnvInt("QDRANT_PORT", 6334),
		QdrantAPIKey: os.Getenv("QDRANT_API_KEY"),
		QdrantUseTLS: getEnvBool("QDRANT_USE_TLS", false),

		VectorBackend: getEnv("PLATON_VECTOR_BACKEND", BackendQdrant),
		Collection:    getEnv("PLATON_COLLECTION", "knowledge_base"),
		VectorDim:     getEnvInt("PLATON_VECTOR_DIM", 1536),
		ChunkSize:     getEnvInt("PLATON_CHUNK_SIZE", 1000),
		ChunkOverlap:  getEnvInt("PLATON_CHUNK_OVERLAP", 200),
		TopK:          getEnvInt("PLATON_TOP_K", 6),
		NotePrefix:    getEnv("PLATON_NOTE_PREFIX", "remember:"),

		HistoryLimit:  getEnvInt("PLATON_HISTORY_LIMIT", 10),
		HistoryWindow: getEnvInt("PLATON_HISTORY_WINDOW", 5),
	}

	return cfg, cfg.Validate()
}

// Validate rejects configurations the pipeline cannot run with. A missing
// credential is a startup failure, never a runtime error.
func (c *Config) Validate() error {
	if c.OpenAIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required")
	}
	if c.VectorBackend != BackendQdrant && c.VectorBackend != BackendMemory {
		return fmt.Errorf("PLATON_VECTOR_BACKEND must be %q or %q, got %q", BackendQdrant, BackendMemory, c.VectorBackend)
	}
	if c.VectorBackend == BackendQdrant && c.QdrantHost == "" {
		return fmt.Errorf("QDRANT_HOST is required for the qdrant backend")
	}
	if c.Collection == "" {
		return fmt.Errorf("PLATON_COLLECTION must not be empty")
	}
	if c.VectorDim <= 0 {
		return fmt.Errorf("PLATON_VECTOR_DIM must be positive, got %d", c.VectorDim)
	}
	if c.ChunkSize <= 0 {
		return fmt.Errorf("PLATON_CHUNK_SIZE must be positive, got %d", c.ChunkSize)
	}
	if c.ChunkOverlap < 0 || c.ChunkOverlap >= c.ChunkSize {
		return fmt.Errorf("PLATON_CHUNK_OVERLAP must be in [0, chunk size), got %d", c.ChunkOverlap)
	}
	if c.TopK <= 0 {
		return fmt.Errorf("PLATON_TOP_K must be positive, got %d", c.TopK)
	}
	if c.HistoryLimit <= 0 {
		return fmt.Errorf("PLATON_HISTORY_LIMIT must be positive, got %d", c.HistoryLimit)
	}
	if c.HistoryWindow <= 0 {
		return fmt.Errorf("PLATON_HISTORY_WINDOW must be positive, got %d", c.HistoryWindow)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	return v == "true" || v == "1"
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
