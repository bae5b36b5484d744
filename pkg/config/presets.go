package config

import (
	"fmt"
	"sort"

	"hypr-raise/internal/match"
)

// compile parses every preset's matchers so bad presets fail at load time.
func (c *Config) compile() error {
	log := c.log
	log.Debug("Compiling presets", "preset_count", len(c.presets))

	engine, err := match.ParseEngine(c.regexEngine)
	if err != nil {
		return err
	}
	c.engine = engine
	parser := match.Parser{Engine: engine}

	c.compiledPresets = make(map[string]match.Set, len(c.presets))
	for name, p := range c.presets {
		var set match.Set
		if p.Class != "" {
			m, err := parser.New(match.Class, match.Equals, p.Class)
			if err != nil {
				return fmt.Errorf("preset %q: %w", name, err)
			}
			set = append(set, m)
		}
		for _, raw := range p.Match {
			m, err := parser.Parse(raw)
			if err != nil {
				log.Error("Failed to compile preset matcher", err, "preset", name, "matcher", raw)
				return fmt.Errorf("preset %q: %w", name, err)
			}
			set = append(set, m)
		}
		c.compiledPresets[name] = set
	}

	log.Debug("All presets compiled successfully", "compiled_count", len(c.compiledPresets))
	return nil
}

// GetPreset returns the named preset and its compiled matchers.
func (c *Config) GetPreset(name string) (Preset, match.Set, bool) {
	p, ok := c.presets[name]
	if !ok {
		return Preset{}, nil, false
	}
	return p, append(match.Set(nil), c.compiledPresets[name]...), true
}

// GetPresetNames returns the preset names in sorted order.
func (c *Config) GetPresetNames() []string {
	names := make([]string, 0, len(c.presets))
	for name := range c.presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
