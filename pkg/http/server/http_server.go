package server

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

type Config struct {
	Port    int
	Timeout time.Duration
}

// New wraps a handler in an http.Server with the configured port and timeouts.
// The server shuts down gracefully when ctx is cancelled.
func New(ctx context.Context, handler http.Handler, config Config) *http.Server {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", config.Port),
		Handler:      handler,
		ReadTimeout:  config.Timeout,
		WriteTimeout: config.Timeout,
		IdleTimeout:  config.Timeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	return srv
}
