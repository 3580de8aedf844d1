package corrector

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spellkit-go/spellkit/pkg"
	"github.com/spellkit-go/spellkit/pkg/datastructure"

	"github.com/blevesearch/vellum"
	"go.uber.org/zap"
)

// SpellCorrector is the spell-correction model. It has two lifecycle phases:
// while training, the vocabulary and bigram table are mutable and the derived
// indices are stale; once frozen, the deletion index, phonetic index, and
// frequency tables are immutable and safe for unlimited concurrent Correct
// calls. The first correction after training rebuilds the indices implicitly
// and synchronously, matching the train-then-predict workflow.
type SpellCorrector struct {
	mu sync.RWMutex

	language string
	config   Config
	table    distanceTable
	encoder  PhoneticEncoder

	termIDMap *pkg.IDMap
	lm        *NGramLanguageModel

	deletionIndex  *DeletionIndex
	phoneticIndex  *PhoneticIndex
	corpusTermsFST *vellum.FST
	maxFrequency   int

	stale   bool
	workers int
	log     *zap.Logger
}

func NewSpellCorrector(language string, log *zap.Logger) (*SpellCorrector, error) {
	encoder, err := NewPhoneticEncoder(language)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}

	termIDMap := pkg.NewIDMap()
	sc := &SpellCorrector{
		language:  language,
		config:    DefaultConfig(),
		encoder:   encoder,
		termIDMap: termIDMap,
		lm:        NewNGramLanguageModel(termIDMap),
		stale:     true,
		workers:   BUILD_WORKERS,
		log:       log,
	}
	sc.table = newDistanceTable(sc.config.EditDistanceByLength)
	return sc, nil
}

// Train accumulates unigram and bigram counts from an ordered sequence of
// sentences. This is the preferred training input because adjacency populates
// the context model. Indices become stale and are rebuilt before the next
// correction.
func (sc *SpellCorrector) Train(sentences []string) error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	docs := make([][]int, 0, len(sentences))
	for _, sentence := range sentences {
		words := tokenizeWords(sentence)
		if len(words) == 0 {
			continue
		}
		doc := make([]int, 0, len(words))
		for _, word := range words {
			doc = append(doc, sc.termIDMap.GetID(word))
		}
		docs = append(docs, doc)
	}

	sc.lm.MakeCountMatrix(docs)
	sc.stale = true
	sc.log.Debug("trained on sentences",
		zap.Int("sentences", len(docs)),
		zap.Int("vocabulary", sc.lm.VocabularySize()))
	return nil
}

// TrainWordCounts merges a direct word->count table into the vocabulary. No
// ordering information is available, so the bigram table is unaffected.
func (sc *SpellCorrector) TrainWordCounts(counts map[string]int) error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	// validate the whole batch before interning anything, so a rejected call
	// leaves no phantom zero-count terms behind
	for word, count := range counts {
		if count < 0 {
			return fmt.Errorf("negative count %d for word %q", count, word)
		}
	}

	idCounts := make(map[int]int, len(counts))
	for word, count := range counts {
		idCounts[sc.termIDMap.GetID(strings.ToLower(word))] += count
	}
	sc.lm.AddWordCounts(idCounts)
	sc.stale = true
	return nil
}

// Reset discards all trained state. The configuration is kept.
func (sc *SpellCorrector) Reset() {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	sc.termIDMap = pkg.NewIDMap()
	sc.lm = NewNGramLanguageModel(sc.termIDMap)
	sc.deletionIndex = nil
	sc.phoneticIndex = nil
	sc.corpusTermsFST = nil
	sc.maxFrequency = 0
	sc.stale = true
}

// SetConfig validates and applies a new configuration. An invalid config is
// rejected without touching the frozen indices. Changing the edit-distance step
// function invalidates the deletion index.
func (sc *SpellCorrector) SetConfig(config Config) error {
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	sc.mu.Lock()
	defer sc.mu.Unlock()

	if !config.sameDistanceMap(sc.config) {
		sc.stale = true
	}
	sc.config = config.Clone()
	sc.table = newDistanceTable(sc.config.EditDistanceByLength)
	return nil
}

func (sc *SpellCorrector) ResetConfig() {
	// defaults always validate
	_ = sc.SetConfig(DefaultConfig())
}

func (sc *SpellCorrector) Config() Config {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.config.Clone()
}

func (sc *SpellCorrector) Language() string {
	return sc.language
}

// ensureFrozen rebuilds the derived indices when training has made them stale.
// Build work holds the write lock, so it never overlaps with other training or
// rebuild activity.
func (sc *SpellCorrector) ensureFrozen() error {
	sc.mu.RLock()
	stale := sc.stale
	sc.mu.RUnlock()
	if !stale {
		return nil
	}

	sc.mu.Lock()
	defer sc.mu.Unlock()
	if !sc.stale {
		return nil
	}
	if err := sc.buildIndexes(); err != nil {
		return err
	}
	sc.stale = false
	return nil
}

func (sc *SpellCorrector) buildIndexes() error {
	termIDs := sc.lm.VocabularyIDs()

	sc.deletionIndex = BuildDeletionIndex(sc.termIDMap, termIDs, sc.table, sc.workers)
	sc.phoneticIndex = BuildPhoneticIndex(sc.termIDMap, termIDs, sc.encoder, sc.workers)
	sc.maxFrequency = sc.lm.MaxWordFrequency()

	if err := sc.buildFiniteStateTransducer(termIDs); err != nil {
		return fmt.Errorf("building corpus terms fst: %w", err)
	}

	sc.log.Debug("indices rebuilt",
		zap.Int("vocabulary", len(termIDs)),
		zap.Int("deletionVariants", sc.deletionIndex.Len()),
		zap.Int("phoneticCodes", sc.phoneticIndex.Len()))
	return nil
}

// Freeze forces an index rebuild now instead of on the first correction, so
// servers can pay the build cost at startup.
func (sc *SpellCorrector) Freeze() error {
	return sc.ensureFrozen()
}

// Correct tokenizes text, proposes a replacement for every eligible token, and
// reassembles the output with the original separators. It never fails on
// malformed input: unrecognized characters are token boundaries. The correction
// map contains only tokens that actually changed.
func (sc *SpellCorrector) Correct(text string) (datastructure.CorrectionResult, error) {
	if err := sc.ensureFrozen(); err != nil {
		return datastructure.CorrectionResult{}, err
	}

	sc.mu.RLock()
	defer sc.mu.RUnlock()

	tokens, tail := tokenize(text)

	var corrected strings.Builder
	corrections := make(map[string]string)
	prevID := sc.lm.startTokenID

	for _, tok := range tokens {
		corrected.WriteString(tok.sep)

		lower := strings.ToLower(tok.word)
		replacement, changed := sc.correctToken(lower, prevID)

		emitted := tok.word
		if changed {
			emitted = recase(tok.word, replacement)
			if emitted != tok.word {
				corrections[tok.word] = emitted
			}
		}
		corrected.WriteString(emitted)

		// context advances to the emitted surface form: the replacement when
		// corrected, otherwise the original token. An emitted word outside the
		// vocabulary keeps the prior context.
		if id, ok := sc.termIDMap.LookupID(strings.ToLower(emitted)); ok {
			prevID = id
		}
	}
	corrected.WriteString(tail)

	return datastructure.NewCorrectionResult(text, corrected.String(), corrections), nil
}

// correctToken applies the eligibility gates and asks the ranker for a
// replacement. Tokens outside the configured length bounds and tokens
// containing digits always pass through unchanged.
func (sc *SpellCorrector) correctToken(lower string, prevID int) (string, bool) {
	wordLength := len([]rune(lower))
	if wordLength < sc.config.MinLengthForSpellCorrection ||
		wordLength > sc.config.MaxLengthForSpellCorrection ||
		hasDigit(lower) {
		return "", false
	}

	replacement, ok := sc.rankToken(lower, prevID)
	if !ok || replacement == lower {
		return "", false
	}
	return replacement, true
}

// Suggest returns the ranked replacement candidates for a single word, with the
// start-of-text sentinel as context. A word that is valid vocabulary or outside
// the correction gates yields no suggestions.
func (sc *SpellCorrector) Suggest(word string) ([]datastructure.Suggestion, error) {
	if err := sc.ensureFrozen(); err != nil {
		return nil, err
	}

	sc.mu.RLock()
	defer sc.mu.RUnlock()

	lower := strings.ToLower(word)
	wordLength := len([]rune(lower))
	if wordLength < sc.config.MinLengthForSpellCorrection ||
		wordLength > sc.config.MaxLengthForSpellCorrection ||
		hasDigit(lower) {
		return nil, nil
	}
	if id, ok := sc.termIDMap.LookupID(lower); ok && sc.lm.IsInVocabulary(id) {
		return nil, nil
	}

	return sc.suggestToken(lower, sc.lm.startTokenID), nil
}
