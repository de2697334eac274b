// ABOUTME: Fixed-size overlapping text splitter producing embedding-sized fragments
// ABOUTME: Rune-based so multi-byte UTF-8 is never split mid-character
package chunker

import "iter"

// Default chunking configuration, tunable per deployment.
const (
	DefaultSize    = 1000
	DefaultOverlap = 200
)

// Split returns a lazy, restartable sequence of overlapping fragments of
// text. Every fragment is at most size runes long and consecutive fragments
// share overlap runes so context survives a split boundary. Empty input
// yields nothing; text that already fits in one fragment is yielded
// unchanged, with no overlap applied.
func Split(text string, size, overlap int) iter.Seq[string] {
	return func(yield func(string) bool) {
		if size <= 0 || text == "" {
			return
		}
		if overlap < 0 || overlap >= size {
			// Degenerate overlap would loop forever; fall back to no overlap.
			overlap = 0
		}

		runes := []rune(text)
		if len(runes) <= size {
			yield(text)
			return
		}

		step := size - overlap
		for start := 0; start < len(runes); start += step {
			end := start + size
			if end > len(runes) {
				end = len(runes)
			}
			if !yield(string(runes[start:end])) {
				return
			}
			if end == len(runes) {
				return
			}
		}
	}
}

// Count reports how many fragments Split would produce.
func Count(text string, size, overlap int) int {
	n := 0
	for range Split(text, size, overlap) {
		n++
	}
	return n
}
