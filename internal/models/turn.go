// ABOUTME: ConversationTurn is a single role-tagged entry of short-term history
// ABOUTME: Held only in the in-memory history log, never persisted
package models

// Role identifies the author of a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ConversationTurn records one utterance in a conversation.
type ConversationTurn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}
