package controllers

import "github.com/spellkit-go/spellkit/pkg/datastructure"

type CorrectorService interface {
	Correct(text string) (datastructure.CorrectionResult, error)
	Suggest(word string) ([]datastructure.Suggestion, error)
	Autocomplete(prefix string, k int) ([]datastructure.Suggestion, error)
}

type envelope map[string]interface{}
