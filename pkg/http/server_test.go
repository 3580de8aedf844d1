package http

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/spellkit-go/spellkit/pkg/datastructure"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type stubCorrectorService struct{}

func (stubCorrectorService) Correct(text string) (datastructure.CorrectionResult, error) {
	return datastructure.NewCorrectionResult(text, text, map[string]string{}), nil
}

func (stubCorrectorService) Suggest(string) ([]datastructure.Suggestion, error) {
	return nil, nil
}

func (stubCorrectorService) Autocomplete(string, int) ([]datastructure.Suggestion, error) {
	return nil, nil
}

func TestUseReportsListenFailure(t *testing.T) {
	// occupy a port so the api server cannot bind it
	listener, err := net.Listen("tcp", ":0")
	assert.NoError(t, err)
	defer listener.Close()

	viper.Set("API_PORT", listener.Addr().(*net.TCPAddr).Port)
	defer viper.Set("API_PORT", 6060)

	core, observed := observer.New(zapcore.ErrorLevel)
	log := zap.New(core)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_, err = NewServer(log).Use(ctx, log, stubCorrectorService{})
	assert.NoError(t, err)

	assert.Eventually(t, func() bool {
		return observed.FilterMessage("api server stopped").Len() > 0
	}, 2*time.Second, 10*time.Millisecond)
}
