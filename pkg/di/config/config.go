package config

import (
	"errors"

	"github.com/spf13/viper"
)

type Config struct{}

// New loads config.yaml from the working directory into viper. A missing file
// is fine; every setting has a viper default.
func New() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var typeErr viper.ConfigFileNotFoundError
		if !errors.As(err, &typeErr) {
			return nil, err
		}
	}

	config := &Config{}
	return config, nil
}
