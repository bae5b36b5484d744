package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hypr-raise/internal/match"
	"hypr-raise/pkg/logger"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const yamlConfig = `
backend: hyprland
launcher: compositor
regex_engine: perl
notify_on_error: true
notify_command: notify-me
log_level: debug
rofi_theme: ~/themes/raise.rasi
presets:
  browser:
    class: firefox
    launch: firefox --new-window
    match:
      - "title:re=^(?!Private)"
  term:
    match: ["initialClass=kitty"]
    launch: kitty
`

func TestLoadFromFile_YAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml", yamlConfig)

	cfg, err := FindConfig(path, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "hyprland", cfg.GetBackend())
	assert.Equal(t, "compositor", cfg.GetLauncher())
	assert.Equal(t, match.EnginePerl, cfg.GetRegexEngine())
	assert.True(t, cfg.GetNotifyOnError())
	assert.Equal(t, "notify-me", cfg.GetNotifyCommand())
	assert.Equal(t, "debug", cfg.GetLogLevel())
	assert.Equal(t, path, cfg.GetPath())
	assert.Equal(t, expandHome("~/themes/raise.rasi"), cfg.GetRofiThemePath())
	assert.Equal(t, []string{"browser", "term"}, cfg.GetPresetNames())

	p, set, ok := cfg.GetPreset("browser")
	require.True(t, ok)
	assert.Equal(t, "firefox --new-window", p.Launch)
	require.Len(t, set, 2)
	assert.Equal(t, match.Class, set[0].Field)
	assert.Equal(t, match.Regex, set[1].Method)

	assert.True(t, set.Matches(match.Window{Class: "firefox", Title: "Docs"}))
	assert.False(t, set.Matches(match.Window{Class: "firefox", Title: "Private Browsing"}))

	_, _, ok = cfg.GetPreset("missing")
	assert.False(t, ok)
}

func TestLoadFromFile_TOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.toml", `
backend = "x11"
log_file = "/tmp/raise.log"

[presets.slack]
class = "Slack"
launch = "slack"
`)

	cfg, err := FindConfig(path, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "x11", cfg.GetBackend())
	assert.Equal(t, "/tmp/raise.log", cfg.GetLogFile())
	assert.Equal(t, match.EngineRE2, cfg.GetRegexEngine())

	p, set, ok := cfg.GetPreset("slack")
	require.True(t, ok)
	assert.Equal(t, "slack", p.Launch)
	assert.Equal(t, match.Set{{Field: match.Class, Method: match.Equals, Pattern: "Slack"}}, set)
}

func TestLoadFromFile_JSON(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.json", `{
  "launcher": "shell",
  "presets": {"mail": {"match": ["title:suffix=- Thunderbird"], "launch": "thunderbird"}}
}`)

	cfg, err := FindConfig(path, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "shell", cfg.GetLauncher())

	_, set, ok := cfg.GetPreset("mail")
	require.True(t, ok)
	assert.Equal(t, match.Suffix, set[0].Method)
}

func TestLoadFromFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr string
	}{
		{"bad yaml", "c.yaml", "backend: [", "failed to parse"},
		{"unknown extension", "c.ini", "backend=x11", "unsupported config format"},
		{"unknown backend", "c.yaml", "backend: sway", "unknown backend"},
		{"unknown launcher", "c.yaml", "launcher: systemd", "unknown launcher"},
		{"bad log level", "c.yaml", "log_level: loud", "invalid log level"},
		{"bad engine", "c.yaml", "regex_engine: onig", "unsupported regex engine"},
		{"empty preset", "c.yaml", "presets:\n  x:\n    launch: x\n", "no matchers"},
		{"bad preset matcher", "c.yaml", "presets:\n  x:\n    match: [\"foo=bar\"]\n", "unsupported match field"},
		{"bad preset regex", "c.yaml", "presets:\n  x:\n    match: [\"title:re=(\"]\n", "invalid regex"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), tt.file, tt.content)
			_, err := FindConfig(path, logger.Nop())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestFindConfig_ProvidedPathMissing(t *testing.T) {
	_, err := FindConfig(filepath.Join(t.TempDir(), "nope.yaml"), logger.Nop())
	assert.ErrorContains(t, err, "provided path")
}

func TestFindConfig_DefaultLocation(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	writeFile(t, home, filepath.Join(AppName, "config.toml"), `backend = "hyprland"`)

	cfg, err := FindConfig("", logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "hyprland", cfg.GetBackend())
	assert.Equal(t, filepath.Join(home, AppName, "config.toml"), cfg.GetPath())
}

func TestFindConfig_FallsBackToDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := FindConfig("", logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "auto", cfg.GetBackend())
	assert.Equal(t, "shell", cfg.GetLauncher())
	assert.Empty(t, cfg.GetPath())
	assert.Empty(t, cfg.GetPresetNames())

	entries, err := os.ReadDir(os.Getenv("XDG_CONFIG_HOME"))
	require.NoError(t, err)
	assert.Empty(t, entries, "defaults must not be written to disk")
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "logs/raise.log"), expandHome("~/logs/raise.log"))
	assert.Equal(t, "/var/log/raise.log", expandHome("/var/log/raise.log"))
	assert.Equal(t, "", expandHome(""))
}
