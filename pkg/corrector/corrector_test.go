package corrector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTrainedCorrector(t *testing.T) *SpellCorrector {
	t.Helper()
	sc, err := NewSpellCorrector("en", nil)
	assert.NoError(t, err)

	err = sc.Train([]string{
		"i want to play cricket",
		"you want to play cricket",
		"they want to play cricket",
		"we play cricket every sunday",
		"cricket is a great game",
	})
	assert.NoError(t, err)
	return sc
}

func TestCorrect(t *testing.T) {
	sc := newTrainedCorrector(t)

	t.Run("corrects misspelled sentence", func(t *testing.T) {
		result, err := sc.Correct("i wnt to plai kricket")
		assert.NoError(t, err)
		assert.Equal(t, "i want to play cricket", result.CorrectedText)
		assert.Equal(t, "i wnt to plai kricket", result.OriginalText)
		assert.Equal(t, map[string]string{
			"wnt":     "want",
			"plai":    "play",
			"kricket": "cricket",
		}, result.Corrections)
	})

	t.Run("short tokens pass through", func(t *testing.T) {
		// "i" and "to" are below the minimum correction length
		result, err := sc.Correct("i wnt to go")
		assert.NoError(t, err)
		assert.Equal(t, "i want to go", result.CorrectedText)
		assert.NotContains(t, result.Corrections, "i")
		assert.NotContains(t, result.Corrections, "to")
	})

	t.Run("tokens with digits pass through", func(t *testing.T) {
		result, err := sc.Correct("plai4 cricket")
		assert.NoError(t, err)
		assert.Equal(t, "plai4 cricket", result.CorrectedText)
		assert.Empty(t, result.Corrections)
	})

	t.Run("valid words stay unchanged", func(t *testing.T) {
		result, err := sc.Correct("we play cricket every sunday")
		assert.NoError(t, err)
		assert.Equal(t, "we play cricket every sunday", result.CorrectedText)
		assert.Empty(t, result.Corrections)
	})

	t.Run("casing is preserved on replacements", func(t *testing.T) {
		result, err := sc.Correct("Plai KRICKET")
		assert.NoError(t, err)
		assert.Equal(t, "Play CRICKET", result.CorrectedText)
		assert.Equal(t, map[string]string{
			"Plai":    "Play",
			"KRICKET": "CRICKET",
		}, result.Corrections)
	})

	t.Run("separators and punctuation are preserved", func(t *testing.T) {
		result, err := sc.Correct("  plai,  kricket!  ")
		assert.NoError(t, err)
		assert.Equal(t, "  play,  cricket!  ", result.CorrectedText)
	})

	t.Run("correction is idempotent", func(t *testing.T) {
		first, err := sc.Correct("i wnt to plai kricket")
		assert.NoError(t, err)
		second, err := sc.Correct(first.CorrectedText)
		assert.NoError(t, err)
		assert.Equal(t, first.CorrectedText, second.CorrectedText)
		assert.Empty(t, second.Corrections)
	})

	t.Run("correction is deterministic", func(t *testing.T) {
		first, err := sc.Correct("i wnt to plai kricket")
		assert.NoError(t, err)
		for i := 0; i < 5; i++ {
			again, err := sc.Correct("i wnt to plai kricket")
			assert.NoError(t, err)
			assert.Equal(t, first, again)
		}
	})

	t.Run("empty text", func(t *testing.T) {
		result, err := sc.Correct("")
		assert.NoError(t, err)
		assert.Equal(t, "", result.CorrectedText)
		assert.Empty(t, result.Corrections)
	})

	t.Run("untrained model passes text through", func(t *testing.T) {
		fresh, err := NewSpellCorrector("en", nil)
		assert.NoError(t, err)
		result, err := fresh.Correct("ennything at all")
		assert.NoError(t, err)
		assert.Equal(t, "ennything at all", result.CorrectedText)
		assert.Empty(t, result.Corrections)
	})
}

func TestContextAdvancement(t *testing.T) {
	sc, err := NewSpellCorrector("en", nil)
	assert.NoError(t, err)
	assert.NoError(t, sc.Train([]string{
		"big cat runs",
		"old bat flew",
	}))

	t.Run("bigram context decides between otherwise tied candidates", func(t *testing.T) {
		// "bat" and "cat" tie on edit distance and frequency for "aat"; only
		// the word before decides which one wins
		result, err := sc.Correct("big aat")
		assert.NoError(t, err)
		assert.Equal(t, "big cat", result.CorrectedText)

		result, err = sc.Correct("old aat")
		assert.NoError(t, err)
		assert.Equal(t, "old bat", result.CorrectedText)
	})

	t.Run("context advances to the latest in-vocabulary word", func(t *testing.T) {
		result, err := sc.Correct("old big aat")
		assert.NoError(t, err)
		assert.Equal(t, "old big cat", result.CorrectedText)
	})

	t.Run("gated token keeps the prior context", func(t *testing.T) {
		// "x9" carries a digit, passes through, and is not vocabulary, so the
		// context stays on the word before it
		result, err := sc.Correct("big x9 aat")
		assert.NoError(t, err)
		assert.Equal(t, "big x9 cat", result.CorrectedText)
		assert.Equal(t, map[string]string{"aat": "cat"}, result.Corrections)

		result, err = sc.Correct("old x9 aat")
		assert.NoError(t, err)
		assert.Equal(t, "old x9 bat", result.CorrectedText)
	})

	t.Run("unknown uncorrected token keeps the prior context", func(t *testing.T) {
		result, err := sc.Correct("old zzzz aat")
		assert.NoError(t, err)
		assert.Equal(t, "old zzzz bat", result.CorrectedText)
	})
}

func TestSuggest(t *testing.T) {
	sc := newTrainedCorrector(t)

	t.Run("ranked suggestions for a misspelling", func(t *testing.T) {
		suggestions, err := sc.Suggest("plai")
		assert.NoError(t, err)
		assert.NotEmpty(t, suggestions)
		assert.Equal(t, "play", suggestions[0].Word)
		assert.Equal(t, 1, suggestions[0].Distance)
		for i := 1; i < len(suggestions); i++ {
			assert.GreaterOrEqual(t, suggestions[i-1].Score, suggestions[i].Score)
		}
	})

	t.Run("valid word yields no suggestions", func(t *testing.T) {
		suggestions, err := sc.Suggest("cricket")
		assert.NoError(t, err)
		assert.Empty(t, suggestions)
	})

	t.Run("gated word yields no suggestions", func(t *testing.T) {
		short, err := sc.Suggest("to")
		assert.NoError(t, err)
		assert.Empty(t, short)

		digits, err := sc.Suggest("plai4")
		assert.NoError(t, err)
		assert.Empty(t, digits)
	})

	t.Run("ties break lexicographically", func(t *testing.T) {
		tied, err := NewSpellCorrector("en", nil)
		assert.NoError(t, err)
		assert.NoError(t, tied.TrainWordCounts(map[string]int{"bat": 5, "cat": 5}))

		suggestions, err := tied.Suggest("aat")
		assert.NoError(t, err)
		assert.Len(t, suggestions, 2)
		assert.Equal(t, "bat", suggestions[0].Word)
		assert.Equal(t, "cat", suggestions[1].Word)
	})
}

func TestAutocomplete(t *testing.T) {
	sc := newTrainedCorrector(t)

	t.Run("most frequent completions first", func(t *testing.T) {
		suggestions, err := sc.Autocomplete("cri", 5)
		assert.NoError(t, err)
		assert.NotEmpty(t, suggestions)
		assert.Equal(t, "cricket", suggestions[0].Word)
		for i := 1; i < len(suggestions); i++ {
			assert.GreaterOrEqual(t, suggestions[i-1].Frequency, suggestions[i].Frequency)
		}
	})

	t.Run("k limits the result", func(t *testing.T) {
		suggestions, err := sc.Autocomplete("w", 1)
		assert.NoError(t, err)
		assert.Len(t, suggestions, 1)
	})

	t.Run("no completions for unknown prefix", func(t *testing.T) {
		suggestions, err := sc.Autocomplete("zzz", 3)
		assert.NoError(t, err)
		assert.Empty(t, suggestions)
	})

	t.Run("untrained model returns nothing", func(t *testing.T) {
		fresh, err := NewSpellCorrector("en", nil)
		assert.NoError(t, err)
		suggestions, err := fresh.Autocomplete("cri", 3)
		assert.NoError(t, err)
		assert.Empty(t, suggestions)
	})
}

func TestTrainWordCounts(t *testing.T) {
	sc, err := NewSpellCorrector("en", nil)
	assert.NoError(t, err)

	t.Run("counts merge into vocabulary", func(t *testing.T) {
		assert.NoError(t, sc.TrainWordCounts(map[string]int{"Cricket": 3, "play": 1}))
		result, err := sc.Correct("kricket")
		assert.NoError(t, err)
		assert.Equal(t, "cricket", result.CorrectedText)
	})

	t.Run("negative counts are rejected without interning", func(t *testing.T) {
		fresh, err := NewSpellCorrector("en", nil)
		assert.NoError(t, err)
		assert.Error(t, fresh.TrainWordCounts(map[string]int{"good": 2, "bad": -1}))
		// the rejected batch must leave no phantom terms behind
		assert.Empty(t, fresh.GetState().Terms)
	})
}

func TestSetConfig(t *testing.T) {
	sc := newTrainedCorrector(t)

	t.Run("invalid config rejected without side effects", func(t *testing.T) {
		bad := DefaultConfig()
		bad.MinLengthForSpellCorrection = 0
		assert.Error(t, sc.SetConfig(bad))

		result, err := sc.Correct("plai")
		assert.NoError(t, err)
		assert.Equal(t, "play", result.CorrectedText)
	})

	t.Run("raised min length widens the pass-through gate", func(t *testing.T) {
		config := sc.Config()
		config.MinLengthForSpellCorrection = 5
		assert.NoError(t, sc.SetConfig(config))

		result, err := sc.Correct("plai kricket")
		assert.NoError(t, err)
		// "plai" is now below the gate, "kricket" still qualifies
		assert.Equal(t, "plai cricket", result.CorrectedText)

		sc.ResetConfig()
		result, err = sc.Correct("plai")
		assert.NoError(t, err)
		assert.Equal(t, "play", result.CorrectedText)
	})

	t.Run("config accessor returns a copy", func(t *testing.T) {
		config := sc.Config()
		config.EditDistanceByLength[3] = 99
		assert.Equal(t, 1, sc.Config().EditDistanceByLength[3])
	})
}

func TestModelStateRoundTrip(t *testing.T) {
	sc := newTrainedCorrector(t)
	original, err := sc.Correct("i wnt to plai kricket")
	assert.NoError(t, err)

	state := sc.GetState()

	t.Run("restored model corrects identically", func(t *testing.T) {
		restored, err := NewSpellCorrector("en", nil)
		assert.NoError(t, err)
		assert.NoError(t, restored.SetState(state))

		result, err := restored.Correct("i wnt to plai kricket")
		assert.NoError(t, err)
		assert.Equal(t, original, result)
	})

	t.Run("language mismatch is rejected", func(t *testing.T) {
		mismatched := state
		mismatched.Language = "de"
		restored, err := NewSpellCorrector("en", nil)
		assert.NoError(t, err)
		assert.Error(t, restored.SetState(mismatched))
	})

	t.Run("corrupt state is rejected", func(t *testing.T) {
		corrupt := state
		corrupt.BiGramCounts = map[[2]int]int{{9999, 0}: 1}
		restored, err := NewSpellCorrector("en", nil)
		assert.NoError(t, err)
		assert.Error(t, restored.SetState(corrupt))
	})

	t.Run("snapshot is isolated from later training", func(t *testing.T) {
		before := len(state.Terms)
		assert.NoError(t, sc.Train([]string{"completely new words here"}))
		assert.Len(t, state.Terms, before)
	})
}

func TestReset(t *testing.T) {
	sc := newTrainedCorrector(t)
	sc.Reset()

	result, err := sc.Correct("plai")
	assert.NoError(t, err)
	assert.Equal(t, "plai", result.CorrectedText)
	assert.Empty(t, result.Corrections)
}
