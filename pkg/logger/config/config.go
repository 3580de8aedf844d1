package config

import "fmt"

const (
	DEBUG_LEVEL = -1
	INFO_LEVEL  = 0
	WARN_LEVEL  = 1
	ERROR_LEVEL = 2
)

type Configuration struct {
	Level      int
	TimeFormat string
}

func (cfg Configuration) Validate() error {
	if cfg.Level < DEBUG_LEVEL || cfg.Level > ERROR_LEVEL {
		return fmt.Errorf("log level %d is outside [%d, %d]", cfg.Level, DEBUG_LEVEL, ERROR_LEVEL)
	}
	if cfg.TimeFormat == "" {
		return fmt.Errorf("log time format must not be empty")
	}
	return nil
}
