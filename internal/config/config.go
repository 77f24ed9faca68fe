// Package config loads the optional .patternbook.yaml configuration.
// Lookup order: local directory, then the user config dir
// (<UserConfigDir>/patternbook/.patternbook.yaml). Missing or malformed
// files fall back to defaults with a stderr warning — configuration is
// never fatal.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the application configuration from .patternbook.yaml.
type Config struct {
	Theme   string   `yaml:"theme"`
	NoColor bool     `yaml:"no_color"`
	Demos   []string `yaml:"demos,omitempty"`
}

// DefaultTheme applies when the file is absent or names no theme.
const DefaultTheme = "default"

// Load reads the configuration file if one exists.
func Load() *Config {
	cfg := &Config{Theme: DefaultTheme}

	path := configPath()
	if path == "" {
		return cfg
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "patternbook: warning: reading config %s: %v, using defaults\n", path, err)
		}
		return cfg
	}

	var fileCfg Config
	if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
		fmt.Fprintf(os.Stderr, "patternbook: warning: parsing config %s: %v, using defaults\n", path, err)
		return cfg
	}

	if fileCfg.Theme != "" {
		cfg.Theme = fileCfg.Theme
	}
	cfg.NoColor = fileCfg.NoColor
	if len(fileCfg.Demos) > 0 {
		cfg.Demos = fileCfg.Demos
	}
	return cfg
}

// configPath finds .patternbook.yaml, local directory first, then the
// user config dir.
func configPath() string {
	local := ".patternbook.yaml"
	if _, err := os.Stat(local); err == nil {
		return local
	}

	configHome, err := os.UserConfigDir()
	if err == nil && configHome != "" && configHome != "/" {
		xdg := filepath.Join(configHome, "patternbook", ".patternbook.yaml")
		if _, err := os.Stat(xdg); err == nil {
			return xdg
		}
	}
	return ""
}
