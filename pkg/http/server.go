package http

import (
	"context"

	http_router "github.com/spellkit-go/spellkit/pkg/http/http-router"
	"github.com/spellkit-go/spellkit/pkg/http/http-router/controllers"
	http_server "github.com/spellkit-go/spellkit/pkg/http/server"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Server struct {
	Log *zap.Logger
}

func NewServer(log *zap.Logger) *Server {
	return &Server{Log: log}
}

func (s *Server) Use(
	ctx context.Context,
	log *zap.Logger,

	correctorService controllers.CorrectorService,

) (*Server, error) {
	viper.SetDefault("API_PORT", 6060)

	viper.SetDefault("API_TIMEOUT", "1000s")

	config := http_server.Config{
		Port:    viper.GetInt("API_PORT"),
		Timeout: viper.GetDuration("API_TIMEOUT"),
	}

	server := http_router.NewAPI(log)

	g := errgroup.Group{}

	g.Go(func() error {
		return server.Run(
			ctx, config, log, correctorService,
		)
	})

	// surface listen failures instead of dropping them: a server that cannot
	// bind its port would otherwise die silently while main blocks on signals
	go func() {
		if err := g.Wait(); err != nil {
			log.Error("api server stopped", zap.Error(err))
		}
	}()

	return s, nil

}
