package corrector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDamerauLevenshtein(t *testing.T) {
	tests := []struct {
		name     string
		a        string
		b        string
		expected int
	}{
		{name: "identical", a: "cricket", b: "cricket", expected: 0},
		{name: "empty vs word", a: "", b: "play", expected: 4},
		{name: "word vs empty", a: "play", b: "", expected: 4},
		{name: "single substitution", a: "kricket", b: "cricket", expected: 1},
		{name: "single insertion", a: "wnt", b: "want", expected: 1},
		{name: "single deletion", a: "plaay", b: "play", expected: 1},
		{name: "adjacent transposition", a: "ac", b: "ca", expected: 1},
		{name: "transposition inside word", a: "paly", b: "play", expected: 1},
		{name: "transposition plus substitution", a: "palz", b: "play", expected: 2},
		{name: "distant swap is not a transposition", a: "abc", b: "cba", expected: 2},
		{name: "two independent edits", a: "mnkey", b: "monkeys", expected: 2},
		{name: "multibyte runes", a: "héllo", b: "hello", expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DamerauLevenshtein(tt.a, tt.b))
			assert.Equal(t, tt.expected, DamerauLevenshtein(tt.b, tt.a))
		})
	}
}
