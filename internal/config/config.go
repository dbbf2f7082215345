package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Theme struct {
	StatusForeground     string `toml:"status-foreground"`
	StatusBackground     string `toml:"status-background"`
	LineNumberForeground string `toml:"line-number-foreground"`
}

type Config struct {
	TabWidth       int      `toml:"tab-width"`
	LineNumbers    bool     `toml:"line-numbers"`
	Debug          bool     `toml:"debug"`
	Filters        []string `toml:"filters"`
	DisplayFilters []string `toml:"display-filters"`
	Theme          Theme    `toml:"theme"`
}

func Default() Config {
	return Config{
		TabWidth: 8,
		Theme: Theme{
			StatusForeground:     "black",
			StatusBackground:     "silver",
			LineNumberForeground: "olive",
		},
	}
}

// Load reads config.toml from the config directory.
func Load() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Default(), err
	}
	return LoadFrom(path)
}

// LoadFrom reads the file at path over the defaults. A missing file is not
// an error.
func LoadFrom(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	var userCfg Config
	if _, err := toml.Decode(string(data), &userCfg); err != nil {
		return cfg, err
	}

	if userCfg.TabWidth > 0 {
		cfg.TabWidth = userCfg.TabWidth
	}
	cfg.LineNumbers = userCfg.LineNumbers
	cfg.Debug = userCfg.Debug
	cfg.Filters = userCfg.Filters
	cfg.DisplayFilters = userCfg.DisplayFilters
	if userCfg.Theme.StatusForeground != "" {
		cfg.Theme.StatusForeground = userCfg.Theme.StatusForeground
	}
	if userCfg.Theme.StatusBackground != "" {
		cfg.Theme.StatusBackground = userCfg.Theme.StatusBackground
	}
	if userCfg.Theme.LineNumberForeground != "" {
		cfg.Theme.LineNumberForeground = userCfg.Theme.LineNumberForeground
	}
	return cfg, nil
}

func ConfigDir() (string, error) {
	if v := os.Getenv("FEWER_CONFIG_HOME"); v != "" {
		return v, nil
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "fewer"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "fewer"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}
