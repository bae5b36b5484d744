package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"hypr-raise/pkg/logger"
)

// AppName names the directory under the user config dir.
const AppName = "hypr-raise"

var configFileNames = []string{"config.yaml", "config.yml", "config.toml", "config.json"}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// FindConfig looks for configuration in the following order:
// 1. the provided path, which must exist and parse
// 2. config.{yaml,yml,toml,json} under <user config dir>/hypr-raise
// 3. built-in defaults
// Nothing is ever written to disk.
func FindConfig(providedPath string, log *logger.Logger) (*Config, error) {
	log.Debug("Looking for configuration", "provided_path", providedPath)

	if providedPath != "" {
		config, err := loadConfigFromPath(expandHome(providedPath), log)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from provided path: %w", err)
		}
		return config, nil
	}

	homeConfigDir, err := os.UserConfigDir()
	if err != nil {
		log.Debug("No user config directory, using defaults", "error", err.Error())
		return DefaultConfig(log)
	}

	defaultConfigDir := filepath.Join(homeConfigDir, AppName)
	for _, name := range configFileNames {
		path := filepath.Join(defaultConfigDir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		return loadConfigFromPath(path, log)
	}

	log.Debug("No config file found, using defaults", "config_dir", defaultConfigDir)
	return DefaultConfig(log)
}
