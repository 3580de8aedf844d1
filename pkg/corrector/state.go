package corrector

import (
	"fmt"

	"github.com/spellkit-go/spellkit/pkg"
)

// ModelState is the portable trained state of a SpellCorrector: the term
// dictionary in ID order plus the count tables keyed by those IDs. The derived
// indices are deliberately absent; they are deterministic functions of this
// state and get rebuilt after restore. Storage backends decide how the tables
// are encoded on disk.
type ModelState struct {
	Language      string         `msgpack:"language"`
	Config        Config         `msgpack:"config"`
	Terms         []string       `msgpack:"terms"`
	UniGramCounts []int          `msgpack:"-"`
	BiGramCounts  map[[2]int]int `msgpack:"-"`
	TotalWordFreq int            `msgpack:"total_word_freq"`
}

// GetState snapshots the trained state. The snapshot shares nothing with the
// live model, so it stays valid across later training calls.
func (sc *SpellCorrector) GetState() ModelState {
	sc.mu.RLock()
	defer sc.mu.RUnlock()

	terms := make([]string, sc.termIDMap.Len())
	for id := range terms {
		terms[id] = sc.termIDMap.GetStr(id)
	}

	uniGrams := make([]int, len(terms))
	for id := range terms {
		uniGrams[id] = sc.lm.Data.UniGramCount[id]
	}

	biGrams := make(map[[2]int]int, len(sc.lm.Data.BiGramCount))
	for pair, count := range sc.lm.Data.BiGramCount {
		biGrams[pair] = count
	}

	return ModelState{
		Language:      sc.language,
		Config:        sc.config.Clone(),
		Terms:         terms,
		UniGramCounts: uniGrams,
		BiGramCounts:  biGrams,
		TotalWordFreq: sc.lm.Data.TotalWordFreq,
	}
}

// SetState replaces the model's trained state with a previously captured
// snapshot. The state is validated before anything is touched, so a bad
// snapshot never leaves the model half-replaced. Indices become stale and are
// rebuilt on the next correction.
func (sc *SpellCorrector) SetState(state ModelState) error {
	if err := state.validate(sc.language); err != nil {
		return err
	}

	sc.mu.Lock()
	defer sc.mu.Unlock()

	termIDMap := newIDMapFromTerms(state.Terms)
	lm := NewNGramLanguageModel(termIDMap)
	for id, count := range state.UniGramCounts {
		if count > 0 {
			lm.Data.UniGramCount[id] = count
		}
	}
	for pair, count := range state.BiGramCounts {
		if count > 0 {
			lm.Data.BiGramCount[pair] = count
		}
	}
	lm.Data.TotalWordFreq = state.TotalWordFreq

	sc.termIDMap = termIDMap
	sc.lm = lm
	sc.config = state.Config.Clone()
	sc.table = newDistanceTable(sc.config.EditDistanceByLength)
	sc.deletionIndex = nil
	sc.phoneticIndex = nil
	sc.corpusTermsFST = nil
	sc.maxFrequency = 0
	sc.stale = true
	return nil
}

// newIDMapFromTerms rebuilds the term dictionary with IDs equal to each term's
// position, so that persisted count tables stay aligned.
func newIDMapFromTerms(terms []string) *pkg.IDMap {
	idMap := pkg.NewIDMap()
	for _, term := range terms {
		idMap.GetID(term)
	}
	return idMap
}

func (state ModelState) validate(language string) error {
	if state.Language != language {
		return fmt.Errorf("state language %q does not match model language %q", state.Language, language)
	}
	if err := state.Config.Validate(); err != nil {
		return fmt.Errorf("invalid config in state: %w", err)
	}
	if len(state.UniGramCounts) != len(state.Terms) {
		return fmt.Errorf("state has %d unigram counts for %d terms", len(state.UniGramCounts), len(state.Terms))
	}
	seen := make(map[string]struct{}, len(state.Terms))
	for _, term := range state.Terms {
		if term == "" {
			return fmt.Errorf("state contains an empty term")
		}
		if _, ok := seen[term]; ok {
			return fmt.Errorf("state contains duplicate term %q", term)
		}
		seen[term] = struct{}{}
	}
	for pair := range state.BiGramCounts {
		if pair[0] < 0 || pair[0] >= len(state.Terms) || pair[1] < 0 || pair[1] >= len(state.Terms) {
			return fmt.Errorf("state bigram references unknown term id (%d, %d)", pair[0], pair[1])
		}
	}
	return nil
}
