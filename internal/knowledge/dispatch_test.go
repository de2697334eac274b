// ABOUTME: Tests for the note/question classifier
// ABOUTME: Verifies prefix matching, stripping and passthrough

package knowledge

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		prefix   string
		wantKind RequestKind
		wantText string
	}{
		{"plain question", "What is the capital of France?", "remember:", KindQuestion, "What is the capital of France?"},
		{"note", "remember: Paris is the capital of France.", "remember:", KindNote, "Paris is the capital of France."},
		{"note uppercase prefix", "REMEMBER: the door code is 4821", "remember:", KindNote, "the door code is 4821"},
		{"note leading whitespace", "  remember: trimmed", "remember:", KindNote, "trimmed"},
		{"prefix mid-sentence is a question", "please remember: this", "remember:", KindQuestion, "please remember: this"},
		{"bare prefix is an empty note", "remember:", "remember:", KindNote, ""},
		{"custom prefix", "запомни: столица Франции Париж", "запомни:", KindNote, "столица Франции Париж"},
		{"empty prefix falls back to default", "remember: noted", "", KindNote, "noted"},
		{"question keeps whitespace", "  spaced question  ", "remember:", KindQuestion, "  spaced question  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := Classify(tt.text, tt.prefix)
			if req.Kind != tt.wantKind {
				t.Errorf("Kind = %d, want %d", req.Kind, tt.wantKind)
			}
			if req.Text != tt.wantText {
				t.Errorf("Text = %q, want %q", req.Text, tt.wantText)
			}
		})
	}
}
