// ABOUTME: In-memory bounded conversation history keyed by owner id
// ABOUTME: Per-owner locking so unrelated owners never serialize on each other
package history

import (
	"sync"

	"github.com/platonbot/platon/internal/models"
)

// DefaultLimit is the number of turns retained per owner.
const DefaultLimit = 10

// Log keeps the most recent conversation turns per owner. It starts empty at
// process start, is never persisted and is lost on restart.
type Log struct {
	limit  int
	mu     sync.RWMutex
	owners map[int64]*ownerLog
}

type ownerLog struct {
	mu    sync.Mutex
	turns []models.ConversationTurn
}

// NewLog creates a Log capped at limit turns per owner.
func NewLog(limit int) *Log {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Log{
		limit:  limit,
		owners: make(map[int64]*ownerLog),
	}
}

// Append records a turn for the owner and evicts the oldest entries beyond
// the cap. Append-then-truncate for the same owner is serialized by the
// owner's lock.
func (l *Log) Append(ownerID int64, role models.Role, content string) {
	ol := l.owner(ownerID)
	ol.mu.Lock()
	defer ol.mu.Unlock()

	ol.turns = append(ol.turns, models.ConversationTurn{Role: role, Content: content})
	if len(ol.turns) > l.limit {
		kept := make([]models.ConversationTurn, l.limit)
		copy(kept, ol.turns[len(ol.turns)-l.limit:])
		ol.turns = kept
	}
}

// Get returns a copy of the owner's turns, oldest first. Unseen owners get
// an empty result.
func (l *Log) Get(ownerID int64) []models.ConversationTurn {
	l.mu.RLock()
	ol, ok := l.owners[ownerID]
	l.mu.RUnlock()
	if !ok {
		return nil
	}

	ol.mu.Lock()
	defer ol.mu.Unlock()
	return append([]models.ConversationTurn(nil), ol.turns...)
}

// owner returns the log for ownerID, creating it on first use.
func (l *Log) owner(ownerID int64) *ownerLog {
	l.mu.RLock()
	ol, ok := l.owners[ownerID]
	l.mu.RUnlock()
	if ok {
		return ol
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	ol, ok = l.owners[ownerID]
	if !ok {
		ol = &ownerLog{}
		l.owners[ownerID] = ol
	}
	return ol
}
