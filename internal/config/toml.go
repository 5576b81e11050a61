// Package config provides TOML parsing and XDG path helpers.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Review ReviewFileConfig `toml:"review"`
}

// ReviewFileConfig maps review-related settings.
type ReviewFileConfig struct {
	DecksDir *string `toml:"decks-dir"`
	DecksURL *string `toml:"decks-url"`
	Hint     *bool   `toml:"hint"`
	Cheer    *bool   `toml:"cheer"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
