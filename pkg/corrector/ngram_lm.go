package corrector

import (
	"sort"
	"sync"

	"github.com/spellkit-go/spellkit/pkg"
)

// NGramLanguageModel accumulates unigram and bigram counts over term IDs. It is
// the single source of truth for the vocabulary: both approximate-matching
// indices are always rebuilt from its current word counts.
type NGramLanguageModel struct {
	termIDMap    *pkg.IDMap
	startTokenID int
	Data         NGramData
}

type NGramData struct {
	UniGramCount  map[int]int
	BiGramCount   map[[2]int]int
	TotalWordFreq int
}

func NewNGramLanguageModel(termIDMap *pkg.IDMap) *NGramLanguageModel {
	return &NGramLanguageModel{
		termIDMap:    termIDMap,
		startTokenID: termIDMap.GetID(START_TOKEN),
		Data: NGramData{
			UniGramCount: make(map[int]int),
			BiGramCount:  make(map[[2]int]int),
		},
	}
}

// MakeCountMatrix accumulates the unigram and bigram counts of the given
// documents. Counts only ever grow; repeated training calls add up.
func (lm *NGramLanguageModel) MakeCountMatrix(docs [][]int) {
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		lm.countUnigram(docs)
	}()

	go func() {
		defer wg.Done()
		lm.countBigram(docs)
	}()
	wg.Wait()
}

func (lm *NGramLanguageModel) countUnigram(docs [][]int) {
	for _, doc := range docs {
		for _, wordID := range doc {
			lm.Data.UniGramCount[wordID]++
			lm.Data.TotalWordFreq++
		}
		// the start sentinel is counted once per document so it can serve as the
		// bigram denominator for sentence-initial words
		lm.Data.UniGramCount[lm.startTokenID]++
	}
}

func (lm *NGramLanguageModel) countBigram(docs [][]int) {
	for _, doc := range docs {
		doc = lm.addStartToken(doc)

		for i := 0; i+1 < len(doc); i++ {
			var biGram [2]int
			copy(biGram[:], doc[i:i+2])
			lm.Data.BiGramCount[biGram]++
		}
	}
}

func (lm *NGramLanguageModel) addStartToken(doc []int) []int {
	withStart := make([]int, 0, len(doc)+1)
	withStart = append(withStart, lm.startTokenID)
	return append(withStart, doc...)
}

// AddWordCounts merges a direct word->count table into the unigram counts. No
// ordering information is available, so the bigram table is left untouched.
func (lm *NGramLanguageModel) AddWordCounts(counts map[int]int) {
	for wordID, count := range counts {
		if count <= 0 {
			continue
		}
		lm.Data.UniGramCount[wordID] += count
		lm.Data.TotalWordFreq += count
	}
}

// ContextProbability estimates P(next | prev) with additive smoothing:
// (bigram(prev,next) + alpha) / (unigram(prev) + alpha*V). Unseen pairs get a
// small non-zero probability while observed continuations stay preferred.
func (lm *NGramLanguageModel) ContextProbability(prevID, nextID int) float64 {
	vocabSize := lm.VocabularySize()
	if vocabSize == 0 {
		return 0
	}

	biGramCount := lm.Data.BiGramCount[[2]int{prevID, nextID}]
	prevCount := lm.Data.UniGramCount[prevID]

	numerator := float64(biGramCount) + CONTEXT_SMOOTHING_ALPHA
	denominator := float64(prevCount) + CONTEXT_SMOOTHING_ALPHA*float64(vocabSize)
	return numerator / denominator
}

func (lm *NGramLanguageModel) WordFrequency(wordID int) int {
	if wordID == lm.startTokenID {
		return 0
	}
	return lm.Data.UniGramCount[wordID]
}

// IsInVocabulary reports whether the term ID belongs to a real corpus word with
// frequency >= 1 (the start sentinel never counts as a word).
func (lm *NGramLanguageModel) IsInVocabulary(wordID int) bool {
	return wordID != lm.startTokenID && lm.Data.UniGramCount[wordID] > 0
}

// VocabularyIDs returns the term IDs of every real corpus word in ascending
// order, so that index builds partition deterministically.
func (lm *NGramLanguageModel) VocabularyIDs() []int {
	ids := make([]int, 0, len(lm.Data.UniGramCount))
	for wordID := range lm.Data.UniGramCount {
		if wordID == lm.startTokenID {
			continue
		}
		ids = append(ids, wordID)
	}
	sort.Ints(ids)
	return ids
}

func (lm *NGramLanguageModel) VocabularySize() int {
	size := len(lm.Data.UniGramCount)
	if _, ok := lm.Data.UniGramCount[lm.startTokenID]; ok {
		size--
	}
	return size
}

func (lm *NGramLanguageModel) MaxWordFrequency() int {
	maxFreq := 0
	for wordID, count := range lm.Data.UniGramCount {
		if wordID == lm.startTokenID {
			continue
		}
		if count > maxFreq {
			maxFreq = count
		}
	}
	return maxFreq
}

func (lm *NGramLanguageModel) Reset() {
	lm.Data = NGramData{
		UniGramCount: make(map[int]int),
		BiGramCount:  make(map[[2]int]int),
	}
}
