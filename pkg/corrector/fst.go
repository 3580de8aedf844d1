package corrector

import (
	"bytes"
	"errors"
	"fmt"
	rege "regexp"
	"sort"

	"github.com/spellkit-go/spellkit/pkg/datastructure"

	"github.com/blevesearch/vellum"
	"github.com/blevesearch/vellum/regexp"
)

// buildFiniteStateTransducer builds the FST over the vocabulary for prefix
// queries. Vellum requires insertion in byte order, which VocabularyIDs does not
// guarantee, so terms are materialized and sorted first. An empty vocabulary
// leaves the FST nil and Autocomplete returns nothing.
func (sc *SpellCorrector) buildFiniteStateTransducer(termIDs []int) error {
	if len(termIDs) == 0 {
		sc.corpusTermsFST = nil
		return nil
	}

	sortedTerms := make([]string, 0, len(termIDs))
	for _, termID := range termIDs {
		sortedTerms = append(sortedTerms, sc.termIDMap.GetStr(termID))
	}
	sort.Strings(sortedTerms)

	var buf bytes.Buffer
	fstBuilder, err := vellum.New(&buf, nil)
	if err != nil {
		return err
	}

	for _, term := range sortedTerms {
		if err := fstBuilder.Insert([]byte(term), 0); err != nil {
			return err
		}
	}

	if err := fstBuilder.Close(); err != nil {
		return err
	}

	fst, err := vellum.Load(buf.Bytes())
	if err != nil {
		return err
	}
	sc.corpusTermsFST = fst

	return nil
}

// https://www.elastic.co/blog/you-complete-me
// matchedWordsForPrefix returns every vocabulary word starting with prefixWord,
// via a regex automaton over the corpus-terms FST.
func (sc *SpellCorrector) matchedWordsForPrefix(prefixWord string) ([]string, error) {
	if sc.corpusTermsFST == nil {
		return nil, nil
	}

	prefixReg := fmt.Sprintf(`%s.*`, rege.QuoteMeta(prefixWord))
	regAutomaton, err := regexp.New(prefixReg)
	if err != nil {
		return nil, fmt.Errorf("error when initializing regex automaton: %w", err)
	}
	fstIt, err := sc.corpusTermsFST.Search(regAutomaton, nil, nil)
	if err != nil {
		if errors.Is(err, vellum.ErrIteratorDone) {
			return nil, nil
		}
		return nil, fmt.Errorf("error when executing regex automaton: %w", err)
	}

	matchedWords := []string{}
	for err == nil {
		key, _ := fstIt.Current()
		matchedWords = append(matchedWords, string(key))

		err = fstIt.Next()
		if err != nil {
			if errors.Is(err, vellum.ErrIteratorDone) {
				break
			}
			return nil, err
		}
	}
	return matchedWords, nil
}

// Autocomplete returns up to k vocabulary words starting with prefix, most
// frequent first and ties broken lexicographically. k <= 0 selects the default
// completion count.
func (sc *SpellCorrector) Autocomplete(prefix string, k int) ([]datastructure.Suggestion, error) {
	if err := sc.ensureFrozen(); err != nil {
		return nil, err
	}

	sc.mu.RLock()
	defer sc.mu.RUnlock()

	if k <= 0 {
		k = K_AUTOCOMPLETE
	}

	words, err := sc.matchedWordsForPrefix(prefix)
	if err != nil {
		return nil, err
	}

	type completion struct {
		word      string
		frequency int
	}
	completions := make([]completion, 0, len(words))
	for _, word := range words {
		termID, ok := sc.termIDMap.LookupID(word)
		if !ok {
			continue
		}
		completions = append(completions, completion{word: word, frequency: sc.lm.WordFrequency(termID)})
	}

	sort.Slice(completions, func(i, j int) bool {
		if completions[i].frequency != completions[j].frequency {
			return completions[i].frequency > completions[j].frequency
		}
		return completions[i].word < completions[j].word
	})
	if len(completions) > k {
		completions = completions[:k]
	}

	suggestions := make([]datastructure.Suggestion, 0, len(completions))
	for _, c := range completions {
		suggestions = append(suggestions, datastructure.NewSuggestion(c.word, 0, false, c.frequency))
	}
	return suggestions, nil
}
