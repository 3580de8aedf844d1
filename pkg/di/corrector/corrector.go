package corrector_di

import (
	"github.com/spellkit-go/spellkit/pkg/corrector"
	"github.com/spellkit-go/spellkit/pkg/http/usecases"
	"github.com/spellkit-go/spellkit/pkg/kvdb"

	"go.uber.org/zap"
)

// New restores the trained model from the kv store and freezes it, so the
// server answers its first request without an index-build pause.
func New(db *kvdb.KVDB, log *zap.Logger) (usecases.Corrector, error) {
	state, err := db.LoadModel()
	if err != nil {
		return nil, err
	}

	sc, err := corrector.NewSpellCorrector(state.Language, log)
	if err != nil {
		return nil, err
	}
	if err := sc.SetState(state); err != nil {
		return nil, err
	}
	if err := sc.Freeze(); err != nil {
		return nil, err
	}

	log.Info("spell-correction model loaded",
		zap.String("language", state.Language),
		zap.Int("terms", len(state.Terms)))

	return sc, nil
}
