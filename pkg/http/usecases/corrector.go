package usecases

import (
	"github.com/spellkit-go/spellkit/pkg/datastructure"

	"go.uber.org/zap"
)

type CorrectorService struct {
	log       *zap.Logger
	corrector Corrector
}

func New(log *zap.Logger, corrector Corrector) *CorrectorService {
	return &CorrectorService{
		log:       log,
		corrector: corrector,
	}
}

func (s *CorrectorService) Correct(text string) (datastructure.CorrectionResult, error) {
	return s.corrector.Correct(text)
}

func (s *CorrectorService) Suggest(word string) ([]datastructure.Suggestion, error) {
	return s.corrector.Suggest(word)
}

func (s *CorrectorService) Autocomplete(prefix string, k int) ([]datastructure.Suggestion, error) {
	return s.corrector.Autocomplete(prefix, k)
}
