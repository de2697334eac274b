// ABOUTME: KnowledgeChunk is the unit of storage in the vector knowledge base
// ABOUTME: Every chunk carries its owner id and provenance for filtered retrieval
package models

import "github.com/google/uuid"

// SourceMessage is the provenance label for manually supplied notes.
const SourceMessage = "message"

// KnowledgeChunk is a bounded fragment of ingested text together with its
// embedding and ownership metadata. Immutable once stored; the vector store
// exclusively owns persisted chunks.
type KnowledgeChunk struct {
	ID      string    `json:"id"`
	Text    string    `json:"text"`
	Vector  []float32 `json:"vector,omitempty"`
	OwnerID int64     `json:"owner_id"`
	Source  string    `json:"source"`
}

// NewKnowledgeChunk creates a chunk with a fresh point ID.
func NewKnowledgeChunk(text string, vector []float32, ownerID int64, source string) KnowledgeChunk {
	return KnowledgeChunk{
		ID:      uuid.New().String(),
		Text:    text,
		Vector:  vector,
		OwnerID: ownerID,
		Source:  source,
	}
}

// ScoredChunk is a single search hit with its similarity score.
type ScoredChunk struct {
	Chunk KnowledgeChunk `json:"chunk"`
	Score float32        `json:"score"`
}

// IngestionResult reports how many fragments one ingestion call produced.
type IngestionResult struct {
	FragmentCount int `json:"fragment_count"`
}
