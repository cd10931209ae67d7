package project

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/piwi3910/cargostack/internal/model"
)

// Format is a manifest file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the encoding from the file extension. Anything that
// is not .toml is read as JSON.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatJSON
}

// SaveManifest writes the manifest to path in the format its extension names.
func SaveManifest(path string, m model.Manifest) error {
	data, err := EncodeManifest(m, FormatFromPath(path))
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create manifest directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}

// LoadManifest reads, normalizes and validates the manifest at path.
func LoadManifest(path string) (model.Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Manifest{}, fmt.Errorf("failed to read manifest: %w", err)
	}
	m, err := DecodeManifest(data, FormatFromPath(path))
	if err != nil {
		return model.Manifest{}, fmt.Errorf("failed to parse manifest %s: %w", filepath.Base(path), err)
	}
	if err := m.Validate(); err != nil {
		return model.Manifest{}, fmt.Errorf("invalid manifest %s: %w", filepath.Base(path), err)
	}
	return m, nil
}

// EncodeManifest serializes m.
func EncodeManifest(m model.Manifest, format Format) ([]byte, error) {
	switch format {
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(m); err != nil {
			return nil, fmt.Errorf("failed to encode manifest: %w", err)
		}
		return buf.Bytes(), nil
	default:
		data, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode manifest: %w", err)
		}
		return data, nil
	}
}

// DecodeManifest parses data and fills in defaults: an empty name, a missing
// weight policy and zero quantities (treated as 1).
func DecodeManifest(data []byte, format Format) (model.Manifest, error) {
	var m model.Manifest
	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(data), &m); err != nil {
			return model.Manifest{}, err
		}
	default:
		if err := json.Unmarshal(data, &m); err != nil {
			return model.Manifest{}, err
		}
	}
	normalize(&m)
	return m, nil
}

func normalize(m *model.Manifest) {
	if m.Name == "" {
		m.Name = "Untitled"
	}
	if m.Settings.MissingWeightLimit == "" {
		m.Settings.MissingWeightLimit = model.DefaultSettings().MissingWeightLimit
	}
	if m.Items == nil {
		m.Items = []model.Item{}
	}
	for i := range m.Items {
		if m.Items[i].Quantity == 0 {
			m.Items[i].Quantity = 1
		}
	}
}
