package corrector

import (
	"testing"

	"github.com/spellkit-go/spellkit/pkg"

	"github.com/stretchr/testify/assert"
)

func buildTestIndex(t *testing.T, words []string, workers int) (*DeletionIndex, *pkg.IDMap) {
	t.Helper()
	idMap := pkg.NewIDMap()
	termIDs := make([]int, 0, len(words))
	for _, word := range words {
		termIDs = append(termIDs, idMap.GetID(word))
	}
	table := newDistanceTable(DefaultConfig().EditDistanceByLength)
	return BuildDeletionIndex(idMap, termIDs, table, workers), idMap
}

func TestDeleteVariants(t *testing.T) {
	tests := []struct {
		name       string
		word       string
		maxDeletes int
		expected   []string
	}{
		{
			name:       "one deletion",
			word:       "abc",
			maxDeletes: 1,
			expected:   []string{"ab", "abc", "ac", "bc"},
		},
		{
			name:       "zero deletions keeps only the word",
			word:       "abc",
			maxDeletes: 0,
			expected:   []string{"abc"},
		},
		{
			name:       "single rune never shrinks",
			word:       "a",
			maxDeletes: 2,
			expected:   []string{"a"},
		},
		{
			name:       "duplicate letters deduplicate",
			word:       "aab",
			maxDeletes: 1,
			expected:   []string{"aab", "ab", "aa"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ElementsMatch(t, tt.expected, deleteVariants(tt.word, tt.maxDeletes))
		})
	}
}

func TestDeletionIndexLookup(t *testing.T) {
	words := []string{"want", "play", "cricket", "crickets", "plan", "wind"}
	idx, _ := buildTestIndex(t, words, 2)

	t.Run("exact match has distance zero", func(t *testing.T) {
		hits := idx.Lookup("play")
		assert.NotEmpty(t, hits)
		assert.Equal(t, "play", hits[0].Word)
		assert.Equal(t, 0, hits[0].Distance)
	})

	t.Run("finds words within budget", func(t *testing.T) {
		hits := idx.Lookup("wnt")
		found := make(map[string]int)
		for _, hit := range hits {
			found[hit.Word] = hit.Distance
		}
		assert.Equal(t, map[string]int{"want": 1}, found)
	})

	t.Run("longer query gets a bigger budget", func(t *testing.T) {
		// "kricket" has length 7 so the budget is 2: both cricket (1 edit) and
		// crickets (2 edits) qualify
		hits := idx.Lookup("kricket")
		words := make([]string, 0, len(hits))
		for _, hit := range hits {
			words = append(words, hit.Word)
		}
		assert.Equal(t, []string{"cricket", "crickets"}, words)
	})

	t.Run("shared deletion variant beyond true distance is rejected", func(t *testing.T) {
		// "xabc" and "abcy" both delete to "abc", but their true distance is 2
		// while a 4-letter query only allows 1
		collisionIdx, _ := buildTestIndex(t, []string{"abcy"}, 1)
		assert.Empty(t, collisionIdx.Lookup("xabc"))
	})

	t.Run("hits sorted by distance then word", func(t *testing.T) {
		hits := idx.Lookup("plan")
		assert.NotEmpty(t, hits)
		for i := 1; i < len(hits); i++ {
			if hits[i-1].Distance == hits[i].Distance {
				assert.Less(t, hits[i-1].Word, hits[i].Word)
			} else {
				assert.Less(t, hits[i-1].Distance, hits[i].Distance)
			}
		}
	})

	t.Run("no candidates for distant query", func(t *testing.T) {
		assert.Empty(t, idx.Lookup("zzz"))
	})
}

func TestDeletionIndexDeterministicAcrossWorkerCounts(t *testing.T) {
	words := []string{"want", "went", "wind", "wand", "wants", "plant", "play", "plan"}

	idxSerial, _ := buildTestIndex(t, words, 1)
	idxParallel, _ := buildTestIndex(t, words, 4)

	for _, query := range []string{"wnt", "wan", "plai", "plant"} {
		assert.Equal(t, idxSerial.Lookup(query), idxParallel.Lookup(query), "query %q", query)
	}
}

func TestMaxDistanceForLength(t *testing.T) {
	idx, _ := buildTestIndex(t, []string{"want"}, 1)
	assert.Equal(t, 1, idx.MaxDistanceForLength(3))
	assert.Equal(t, 2, idx.MaxDistanceForLength(7))
	assert.Equal(t, 3, idx.MaxDistanceForLength(12))
	// below the smallest configured length falls back to the smallest entry
	assert.Equal(t, 1, idx.MaxDistanceForLength(1))
	// above the largest configured length falls back to the largest entry
	assert.Equal(t, 3, idx.MaxDistanceForLength(40))
}
