package project

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/piwi3910/cargostack/internal/model"
)

// DefaultConfigDir is ~/.cargostack, or ./.cargostack when the home
// directory cannot be resolved.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".cargostack")
}

func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.json")
}

// SaveAppConfig writes config as JSON, creating parent directories.
func SaveAppConfig(path string, config model.AppConfig) error {
	return writeJSON(path, config)
}

// LoadAppConfig reads the config at path over the defaults, so fields the
// file omits keep their default value. A missing file is not an error.
func LoadAppConfig(path string) (model.AppConfig, error) {
	config := model.DefaultAppConfig()
	found, err := readJSON(path, &config)
	if err != nil {
		return model.AppConfig{}, err
	}
	if !found {
		return model.DefaultAppConfig(), nil
	}
	if config.RecentManifests == nil {
		config.RecentManifests = []string{}
	}
	return config, nil
}

// readJSON decodes the file at path into v. It reports false, with no error,
// when the file does not exist.
func readJSON(path string, v any) (bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal(data, v)
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
