package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const blocksFile = "blocks.yaml"

// LoadBlocks loads the game configuration.
// Search order: customPath -> ~/.arcade/configs/blocks.yaml -> ./configs/blocks.yaml -> embedded default.
// Files only need to name the settings they change; everything else keeps
// its default. A custom path that cannot be read, parsed or validated is an
// error; broken files found by the search are skipped.
func LoadBlocks(customPath string) (BlocksConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := readBlocks(customPath)
		if err != nil {
			return DefaultBlocksConfig(), err
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(blocksFile); userCfgPath != "" {
		if cfg, err := readBlocks(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := readBlocks(filepath.Join("configs", blocksFile)); err == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := parseBlocks(defaultBlocksYAML)
	if err != nil {
		return DefaultBlocksConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func readBlocks(path string) (BlocksConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return BlocksConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := parseBlocks(data)
	if err != nil {
		return BlocksConfig{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// parseBlocks decodes YAML over the defaults and validates the result.
func parseBlocks(data []byte) (BlocksConfig, error) {
	cfg := DefaultBlocksConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BlocksConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return BlocksConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
