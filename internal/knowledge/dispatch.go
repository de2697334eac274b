// ABOUTME: Classifies inbound free text as a note to store or a question to answer
// ABOUTME: Note detection uses a fixed case-insensitive prefix convention
package knowledge

import "strings"

// DefaultNotePrefix routes a message to note ingestion instead of question
// answering.
const DefaultNotePrefix = "remember:"

// RequestKind tags which pipeline an inbound message runs.
type RequestKind int

const (
	KindQuestion RequestKind = iota
	KindNote
)

// Request is an inbound message classified for dispatch.
type Request struct {
	Kind RequestKind
	Text string
}

// Classify tags text as a note or a question. Notes have the prefix stripped
// and surrounding whitespace trimmed; question text is passed through
// untouched.
func Classify(text, notePrefix string) Request {
	if notePrefix == "" {
		notePrefix = DefaultNotePrefix
	}

	trimmed := strings.TrimSpace(text)
	if len(trimmed) >= len(notePrefix) && strings.EqualFold(trimmed[:len(notePrefix)], notePrefix) {
		return Request{Kind: KindNote, Text: strings.TrimSpace(trimmed[len(notePrefix):])}
	}
	return Request{Kind: KindQuestion, Text: text}
}
