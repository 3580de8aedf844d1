//go:build wireinject

//go:generate wire
package di

import (
	"context"

	"github.com/spellkit-go/spellkit/pkg/di/config"
	shortcontext "github.com/spellkit-go/spellkit/pkg/di/context"
	corrector_di "github.com/spellkit-go/spellkit/pkg/di/corrector"
	kv_di "github.com/spellkit-go/spellkit/pkg/di/kv"
	logger_di "github.com/spellkit-go/spellkit/pkg/di/logger"
	spellHttp "github.com/spellkit-go/spellkit/pkg/http"
	"github.com/spellkit-go/spellkit/pkg/http/http-router/controllers"
	"github.com/spellkit-go/spellkit/pkg/http/usecases"

	"github.com/google/wire"
	"go.uber.org/zap"
)

var defaultSet = wire.NewSet(
	shortcontext.New,
	config.New,
	logger_di.New,
	kv_di.New,
	corrector_di.New,
)

var correctorSet = wire.NewSet(
	defaultSet,
	NewCorrectorService,
	NewCorrectorAPIServer,
)

func NewCorrectorService(log *zap.Logger, corrector usecases.Corrector) controllers.CorrectorService {
	return usecases.New(log, corrector)
}

func NewCorrectorAPIServer(ctx context.Context, log *zap.Logger,
	correctorService controllers.CorrectorService) (*spellHttp.Server, error) {
	api := spellHttp.NewServer(log)

	apiService, err := api.Use(
		ctx, log, correctorService,
	)
	if err != nil {
		return nil, err
	}

	return apiService, nil
}

func InitializeCorrectorService() (*spellHttp.Server, func(), error) {

	panic(wire.Build(correctorSet))
}
