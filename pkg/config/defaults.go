package config

import (
	"hypr-raise/internal/launch"
	"hypr-raise/internal/wm"
	"hypr-raise/pkg/logger"
)

// DefaultConfig creates the configuration used when no file exists.
func DefaultConfig(log *logger.Logger) (*Config, error) {
	log.Debug("Creating default configuration")

	config := &Config{
		backend:  wm.BackendAuto,
		launcher: launch.ModeShell,
		presets:  map[string]Preset{},
		log:      log,
	}

	if err := config.compile(); err != nil {
		return nil, err
	}
	return config, nil
}
