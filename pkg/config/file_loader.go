package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"hypr-raise/internal/launch"
	"hypr-raise/internal/wm"
	"hypr-raise/pkg/logger"
)

// fileConfig is the on-disk shape shared by the YAML, TOML and JSON loaders.
type fileConfig struct {
	Backend       string            `yaml:"backend" toml:"backend" json:"backend"`
	Launcher      string            `yaml:"launcher" toml:"launcher" json:"launcher"`
	RegexEngine   string            `yaml:"regex_engine" toml:"regex_engine" json:"regex_engine"`
	NotifyOnError bool              `yaml:"notify_on_error" toml:"notify_on_error" json:"notify_on_error"`
	NotifyCommand string            `yaml:"notify_command" toml:"notify_command" json:"notify_command"`
	LogLevel      string            `yaml:"log_level" toml:"log_level" json:"log_level"`
	LogFile       string            `yaml:"log_file" toml:"log_file" json:"log_file"`
	RofiTheme     string            `yaml:"rofi_theme" toml:"rofi_theme" json:"rofi_theme"`
	Presets       map[string]Preset `yaml:"presets" toml:"presets" json:"presets"`
}

func decode(path string, data []byte, v *fileConfig) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, v)
	case ".toml":
		return toml.Unmarshal(data, v)
	case ".json":
		return json.Unmarshal(data, v)
	default:
		return fmt.Errorf("unsupported config format %q", ext)
	}
}

// LoadFromFile loads the configuration from a YAML, TOML or JSON file chosen
// by extension.
func (c *Config) LoadFromFile(path string, log *logger.Logger) error {
	log.Debug("Loading configuration from file", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		log.Error("Failed to read config file", err, "path", path)
		return err
	}
	log.Debug("Config file read successfully", "size_bytes", len(data))

	var temp fileConfig
	if err := decode(path, data, &temp); err != nil {
		log.Error("Failed to parse config", err, "path", path)
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	log.Debug("Config parsed successfully")

	// Assign to private fields
	c.backend = temp.Backend
	c.launcher = temp.Launcher
	c.regexEngine = temp.RegexEngine
	c.notifyOnError = temp.NotifyOnError
	c.notifyCommand = temp.NotifyCommand
	c.logLevel = temp.LogLevel
	c.logFile = expandHome(temp.LogFile)
	c.rofiTheme = expandHome(temp.RofiTheme)
	c.presets = temp.Presets
	c.path = path

	if err := c.validate(); err != nil {
		return fmt.Errorf("invalid config %s: %w", path, err)
	}
	return c.compile()
}

func (c *Config) validate() error {
	switch c.backend {
	case "", wm.BackendAuto, wm.BackendHyprland, wm.BackendX11:
	default:
		return fmt.Errorf("unknown backend %q", c.backend)
	}
	switch c.launcher {
	case "", launch.ModeShell, launch.ModeCompositor:
	default:
		return fmt.Errorf("unknown launcher %q", c.launcher)
	}
	if _, err := logger.ParseLevel(c.logLevel, 0); err != nil {
		return err
	}
	for name, p := range c.presets {
		if p.Class == "" && len(p.Match) == 0 {
			return fmt.Errorf("preset %q has no matchers", name)
		}
	}
	return nil
}

// loadConfigFromPath loads the configuration from a file.
func loadConfigFromPath(path string, log *logger.Logger) (*Config, error) {
	config := &Config{log: log}
	if err := config.LoadFromFile(path, log); err != nil {
		return nil, err
	}
	return config, nil
}
