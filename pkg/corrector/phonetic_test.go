package corrector

import (
	"testing"

	"github.com/spellkit-go/spellkit/pkg"

	"github.com/stretchr/testify/assert"
)

func TestLatinSoundexEncode(t *testing.T) {
	tests := []struct {
		word     string
		expected string
	}{
		{word: "Robert", expected: "R163"},
		{word: "Rupert", expected: "R163"},
		{word: "Ashcraft", expected: "A261"},
		{word: "Ashcroft", expected: "A261"},
		{word: "Tymczak", expected: "T522"},
		{word: "Pfister", expected: "P236"},
		{word: "Honeyman", expected: "H555"},
		{word: "cricket", expected: "C623"},
		{word: "kricket", expected: "K623"},
		{word: "a", expected: "A000"},
		{word: "", expected: ""},
		{word: "42", expected: ""},
	}

	encoder := LatinSoundex{}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.expected, encoder.Encode(tt.word))
		})
	}
}

func TestNewPhoneticEncoder(t *testing.T) {
	t.Run("english", func(t *testing.T) {
		encoder, err := NewPhoneticEncoder("en")
		assert.NoError(t, err)
		assert.NotNil(t, encoder)
	})

	t.Run("unsupported language", func(t *testing.T) {
		_, err := NewPhoneticEncoder("xx")
		assert.Error(t, err)
	})
}

func TestPhoneticIndexLookup(t *testing.T) {
	idMap := pkg.NewIDMap()
	words := []string{"robert", "rupert", "cricket", "play"}
	termIDs := make([]int, 0, len(words))
	for _, word := range words {
		termIDs = append(termIDs, idMap.GetID(word))
	}

	idx := BuildPhoneticIndex(idMap, termIDs, LatinSoundex{}, 2)

	t.Run("words sharing a code co-occur", func(t *testing.T) {
		hits := idx.Lookup("robert")
		assert.Len(t, hits, 2)
		assert.Contains(t, hits, idMap.GetID("robert"))
		assert.Contains(t, hits, idMap.GetID("rupert"))
	})

	t.Run("query with no matching code", func(t *testing.T) {
		assert.Empty(t, idx.Lookup("zzz"))
	})

	t.Run("hits are ascending by id", func(t *testing.T) {
		hits := idx.Lookup("rupert")
		for i := 1; i < len(hits); i++ {
			assert.Less(t, hits[i-1], hits[i])
		}
	})
}
