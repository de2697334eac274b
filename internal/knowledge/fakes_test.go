// ABOUTME: Deterministic fakes for the embedding and generative backends
// ABOUTME: Shared by the ingestion and answer engine tests

package knowledge

import (
	"context"
	"hash/fnv"
	"strings"
)

// fakeEmbedder maps text to a bag-of-words vector so that texts sharing
// words score a positive cosine similarity.
type fakeEmbedder struct {
	dim   int
	err   error
	calls int
}

func (f *fakeEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.calls++
	vector := make([]float32, f.dim)
	for _, word := range strings.Fields(strings.ToLower(text)) {
		word = strings.Trim(word, ".,!?\"'")
		h := fnv.New32a()
		h.Write([]byte(word))
		vector[int(h.Sum32())%f.dim]++
	}
	return vector, nil
}

func (f *fakeEmbedder) Dimension() int { return f.dim }

// fakeGenerator returns a scripted answer and captures the prompt it was
// handed.
type fakeGenerator struct {
	response   string
	err        error
	lastPrompt string
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.lastPrompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}
