package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultParts is the part count used by split when none is configured.
const DefaultParts = 10

// Config represents the flat kosha configuration
type Config struct {
	Version       string `json:"version"`
	DataRoot      string `json:"data_root"`                 // canonical dhatu data tree
	GeneratedRoot string `json:"generated_root"`            // generator output
	OutputRoot    string `json:"output_root,omitempty"`     // review part files
	DBPath        string `json:"db_path,omitempty"`         // dhatu index database
	DefaultParts  int    `json:"default_parts,omitempty"`   // split part count
}

// Default returns a config populated with the standard layout rooted at dir.
func Default(dir string) *Config {
	return &Config{
		Version:       "1",
		DataRoot:      filepath.Join(dir, "data"),
		GeneratedRoot: filepath.Join(dir, "generated"),
		OutputRoot:    filepath.Join(dir, "review"),
		DBPath:        filepath.Join(dir, ".kosha", "kosha.db"),
		DefaultParts:  DefaultParts,
	}
}

// LoadConfig reads .kosha/config.json from the specified directory.
// Resolution order: cwd only (no home fallback).
// Returns error if no config found - caller should handle accordingly.
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, ".kosha", "config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.DefaultParts <= 0 {
		cfg.DefaultParts = DefaultParts
	}

	return &cfg, nil
}

// SaveConfig writes config.json to directory
func SaveConfig(dir string, cfg *Config) error {
	koshaDir := filepath.Join(dir, ".kosha")
	if err := os.MkdirAll(koshaDir, 0755); err != nil {
		return fmt.Errorf("failed to create .kosha dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(koshaDir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
