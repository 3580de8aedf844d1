package kv_di

import (
	"context"

	"github.com/spellkit-go/spellkit/pkg/di/config"
	"github.com/spellkit-go/spellkit/pkg/kvdb"

	"github.com/spf13/viper"
	bolt "go.etcd.io/bbolt"
)

func New(ctx context.Context, _ *config.Config) (*kvdb.KVDB, error) {
	viper.SetDefault("MODEL_PATH", kvdb.ModelFileName)

	db, err := bolt.Open(viper.GetString("MODEL_PATH"), 0600, &bolt.Options{ReadOnly: true})
	if err != nil {
		return nil, err
	}

	bboltKV := kvdb.NewKVDB(db)

	cleanup := func() {
		_ = bboltKV.Close()
	}

	// Graceful shutdown
	go func() {
		<-ctx.Done()
		cleanup()
	}()

	return bboltKV, nil
}
