package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spellkit-go/spellkit/pkg/di"
)

func main() {
	server, cleanup, err := di.InitializeCorrectorService()
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	server.Log.Info("shutting down")
}
