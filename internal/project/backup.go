package project

import (
	"fmt"
	"time"

	"github.com/piwi3910/cargostack/internal/model"
)

const backupVersion = "1.0.0"

// BackupData bundles the config and presets into one file.
type BackupData struct {
	Version   string          `json:"version"`
	CreatedAt string          `json:"created_at"` // RFC 3339, UTC
	Config    model.AppConfig `json:"config"`
	Inventory model.Inventory `json:"inventory"`
}

// ExportAllData writes config and inv as a single backup file.
func ExportAllData(exportPath string, config model.AppConfig, inv model.Inventory) error {
	backup := BackupData{
		Version:   backupVersion,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Config:    config,
		Inventory: inv,
	}
	if err := writeJSON(exportPath, backup); err != nil {
		return fmt.Errorf("failed to write backup file: %w", err)
	}
	return nil
}

// ImportAllData decodes a backup file without applying it; see RestoreAllData.
func ImportAllData(importPath string) (BackupData, error) {
	var backup BackupData
	found, err := readJSON(importPath, &backup)
	switch {
	case err != nil:
		return BackupData{}, fmt.Errorf("failed to parse backup file: %w", err)
	case !found:
		return BackupData{}, fmt.Errorf("failed to read backup file: %s does not exist", importPath)
	case backup.Version == "":
		return BackupData{}, fmt.Errorf("invalid backup file: missing version field")
	}
	if backup.Config.RecentManifests == nil {
		backup.Config.RecentManifests = []string{}
	}
	return backup, nil
}

// RestoreAllData replaces the config at configPath and merges the backup's
// presets into those at inventoryPath.
func RestoreAllData(backup BackupData, configPath, inventoryPath string) error {
	if err := SaveAppConfig(configPath, backup.Config); err != nil {
		return fmt.Errorf("failed to restore config: %w", err)
	}
	existing, err := LoadInventory(inventoryPath)
	if err != nil {
		return fmt.Errorf("failed to load inventory: %w", err)
	}
	if err := SaveInventory(inventoryPath, mergeInventory(existing, backup.Inventory)); err != nil {
		return fmt.Errorf("failed to restore inventory: %w", err)
	}
	return nil
}
