package config

import (
	"hypr-raise/internal/match"
	"hypr-raise/pkg/logger"
)

// Config holds the application configuration.
type Config struct {
	// Configurable via file (private fields to enforce immutability)
	backend       string
	launcher      string
	regexEngine   string
	notifyOnError bool
	notifyCommand string
	logLevel      string
	logFile       string
	rofiTheme     string
	presets       map[string]Preset

	// Internal fields
	engine          match.Engine
	compiledPresets map[string]match.Set
	path            string
	log             *logger.Logger
}

// Preset is a named set of matchers with the command that goes with them.
type Preset struct {
	Class  string   `yaml:"class" toml:"class" json:"class"`
	Launch string   `yaml:"launch" toml:"launch" json:"launch"`
	Match  []string `yaml:"match" toml:"match" json:"match"`
}

// GetBackend returns the configured window manager backend.
func (c *Config) GetBackend() string {
	return c.backend
}

// GetLauncher returns the configured launcher mode.
func (c *Config) GetLauncher() string {
	return c.launcher
}

// GetRegexEngine returns the engine used for regex matchers.
func (c *Config) GetRegexEngine() match.Engine {
	return c.engine
}

// GetNotifyOnError reports whether failures raise a desktop notification.
func (c *Config) GetNotifyOnError() bool {
	return c.notifyOnError
}

// GetNotifyCommand returns the notify command.
func (c *Config) GetNotifyCommand() string {
	return c.notifyCommand
}

// GetLogLevel returns the configured log level name.
func (c *Config) GetLogLevel() string {
	return c.logLevel
}

// GetLogFile returns the optional log file path.
func (c *Config) GetLogFile() string {
	return c.logFile
}

// GetRofiThemePath returns the theme passed to rofi by --pick, empty for the
// user's default theme.
func (c *Config) GetRofiThemePath() string {
	return c.rofiTheme
}

// GetPath returns the file the config was loaded from, empty for defaults.
func (c *Config) GetPath() string {
	return c.path
}
