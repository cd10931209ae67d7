package project

import (
	"fmt"
	"path/filepath"

	"github.com/piwi3910/cargostack/internal/model"
)

// DefaultInventoryPath is ~/.cargostack/presets.json.
func DefaultInventoryPath() string {
	return filepath.Join(DefaultConfigDir(), "presets.json")
}

func SaveInventory(path string, inv model.Inventory) error {
	return writeJSON(path, inv)
}

// LoadInventory reads the presets at path. On first use, when the file does
// not exist yet, the default presets are written there and returned.
func LoadInventory(path string) (model.Inventory, error) {
	var inv model.Inventory
	found, err := readJSON(path, &inv)
	if err != nil {
		return model.Inventory{}, err
	}
	if !found {
		inv = model.DefaultInventory()
		return inv, SaveInventory(path, inv)
	}
	return inv, nil
}

// ImportInventory adds the presets stored at path to existing, skipping any
// whose ID is already present.
func ImportInventory(path string, existing model.Inventory) (model.Inventory, error) {
	var imported model.Inventory
	found, err := readJSON(path, &imported)
	if err == nil && !found {
		err = fmt.Errorf("%s does not exist", path)
	}
	if err != nil {
		return existing, err
	}
	return mergeInventory(existing, imported), nil
}

func mergeInventory(existing, imported model.Inventory) model.Inventory {
	seen := make(map[string]bool, len(existing.Containers)+len(imported.Containers))
	for _, c := range existing.Containers {
		seen[c.ID] = true
	}
	for _, c := range imported.Containers {
		if seen[c.ID] {
			continue
		}
		seen[c.ID] = true
		existing.Containers = append(existing.Containers, c)
	}
	return existing
}
