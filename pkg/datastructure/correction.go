package datastructure

// CorrectionResult model info
// @Description result of one spell-correction call. Corrections only contains the
// tokens that were actually changed, keyed by their original surface form.
type CorrectionResult struct {
	OriginalText  string            `json:"original_text"`
	CorrectedText string            `json:"spell_corrected_text"`
	Corrections   map[string]string `json:"correction_dict"`
}

func NewCorrectionResult(original, corrected string, corrections map[string]string) CorrectionResult {
	return CorrectionResult{
		OriginalText:  original,
		CorrectedText: corrected,
		Corrections:   corrections,
	}
}

// Suggestion is one ranked replacement candidate for a misspelled token.
// Distance is the true Damerau-Levenshtein distance from the query token.
// A candidate found only through the phonetic index has no measured distance;
// HasDistance is false and the ranker scores it at the maximum allowed distance.
type Suggestion struct {
	Word        string  `json:"word"`
	Distance    int     `json:"edit_distance"`
	HasDistance bool    `json:"-"`
	Frequency   int     `json:"frequency"`
	Score       float64 `json:"score"`
}

func NewSuggestion(word string, distance int, hasDistance bool, frequency int) Suggestion {
	return Suggestion{
		Word:        word,
		Distance:    distance,
		HasDistance: hasDistance,
		Frequency:   frequency,
	}
}
