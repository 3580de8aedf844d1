package usecases

import "github.com/spellkit-go/spellkit/pkg/datastructure"

// Corrector is the trained spell-correction model the HTTP layer serves.
type Corrector interface {
	Correct(text string) (datastructure.CorrectionResult, error)
	Suggest(word string) ([]datastructure.Suggestion, error)
	Autocomplete(prefix string, k int) ([]datastructure.Suggestion, error)
}
