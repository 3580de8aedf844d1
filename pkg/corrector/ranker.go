package corrector

import (
	"math"
	"sort"

	"github.com/spellkit-go/spellkit/pkg/datastructure"
)

// scoredCandidate fuses the two index paths for a single vocabulary word.
// hasDistance is false when the word was found only phonetically; such
// candidates are scored at the maximum allowed distance, the least favorable
// value.
type scoredCandidate struct {
	termID      int
	word        string
	distance    int
	hasDistance bool
	frequency   int
	context     float64
	score       float64
}

// gatherCandidates unions the deletion-index and phonetic-index hits for the
// query, deduplicated by word. A word found by both paths keeps the measured
// edit distance.
func (sc *SpellCorrector) gatherCandidates(query string) []scoredCandidate {
	byTerm := make(map[int]*scoredCandidate)

	for _, hit := range sc.deletionIndex.Lookup(query) {
		byTerm[hit.TermID] = &scoredCandidate{
			termID:      hit.TermID,
			word:        hit.Word,
			distance:    hit.Distance,
			hasDistance: true,
			frequency:   sc.lm.WordFrequency(hit.TermID),
		}
	}

	maxDistance := sc.table.maxDistance()
	for _, termID := range sc.phoneticIndex.Lookup(query) {
		if _, ok := byTerm[termID]; ok {
			continue
		}
		byTerm[termID] = &scoredCandidate{
			termID:    termID,
			word:      sc.termIDMap.GetStr(termID),
			distance:  maxDistance,
			frequency: sc.lm.WordFrequency(termID),
		}
	}

	candidates := make([]scoredCandidate, 0, len(byTerm))
	for _, cand := range byTerm {
		candidates = append(candidates, *cand)
	}
	return candidates
}

// scoreCandidate computes the composite score: a weighted sum of normalized
// inverse edit distance, normalized log-frequency, and the smoothed probability
// of the candidate following the previous corrected word.
func (sc *SpellCorrector) scoreCandidate(cand *scoredCandidate, prevID int) {
	weights := sc.config.Weights

	inverseDistance := 1.0 / float64(1+cand.distance)

	logFrequency := 0.0
	if sc.maxFrequency > 0 {
		logFrequency = math.Log1p(float64(cand.frequency)) / math.Log1p(float64(sc.maxFrequency))
	}

	cand.context = sc.lm.ContextProbability(prevID, cand.termID)

	cand.score = weights.Distance*inverseDistance +
		weights.Frequency*logFrequency +
		weights.Context*cand.context
}

// rankCandidates orders candidates by descending score with a deterministic
// tie-break: smaller true edit distance first, then higher raw frequency, then
// the lexicographically smaller word.
func rankCandidates(candidates []scoredCandidate) {
	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.score != b.score {
			return a.score > b.score
		}
		if a.distance != b.distance {
			return a.distance < b.distance
		}
		if a.frequency != b.frequency {
			return a.frequency > b.frequency
		}
		return a.word < b.word
	})
}

// rankToken returns the best replacement for a (lowercased) token given the
// previous corrected word, or ok=false when the token should stay as it is.
// A token that is itself a vocabulary word is only replaced by a candidate that
// strictly outscores it.
func (sc *SpellCorrector) rankToken(token string, prevID int) (string, bool) {
	candidates := sc.gatherCandidates(token)
	if len(candidates) == 0 {
		return "", false
	}

	var selfScore float64
	selfID, inVocabulary := sc.termIDMap.LookupID(token)
	inVocabulary = inVocabulary && sc.lm.IsInVocabulary(selfID)

	filtered := candidates[:0]
	for i := range candidates {
		sc.scoreCandidate(&candidates[i], prevID)
		if inVocabulary && candidates[i].termID == selfID {
			selfScore = candidates[i].score
			continue
		}
		filtered = append(filtered, candidates[i])
	}
	if len(filtered) == 0 {
		return "", false
	}

	rankCandidates(filtered)
	best := filtered[0]

	if inVocabulary && best.score <= selfScore {
		return "", false
	}
	return best.word, true
}

// suggestToken returns the full ranked candidate list for a token, used by the
// Suggest operation. The token itself is excluded.
func (sc *SpellCorrector) suggestToken(token string, prevID int) []datastructure.Suggestion {
	candidates := sc.gatherCandidates(token)

	selfID, hasSelf := sc.termIDMap.LookupID(token)

	filtered := candidates[:0]
	for i := range candidates {
		if hasSelf && candidates[i].termID == selfID {
			continue
		}
		sc.scoreCandidate(&candidates[i], prevID)
		filtered = append(filtered, candidates[i])
	}
	rankCandidates(filtered)

	suggestions := make([]datastructure.Suggestion, 0, len(filtered))
	for _, cand := range filtered {
		suggestion := datastructure.NewSuggestion(cand.word, cand.distance, cand.hasDistance, cand.frequency)
		suggestion.Score = cand.score
		suggestions = append(suggestions, suggestion)
	}
	return suggestions
}
