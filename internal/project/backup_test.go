package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/cargostack/internal/model"
)

func TestExportAndImportAllData(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "backup.json")

	cfg := model.DefaultAppConfig()
	cfg.Theme = "dark"
	inv := model.Inventory{Containers: []model.ContainerPreset{
		model.NewContainerPreset("Crate", [3]float64{1, 2, 3}, 10, "box"),
	}}

	if err := ExportAllData(path, cfg, inv); err != nil {
		t.Fatalf("ExportAllData failed: %v", err)
	}

	backup, err := ImportAllData(path)
	if err != nil {
		t.Fatalf("ImportAllData failed: %v", err)
	}

	if backup.Version != "1.0.0" {
		t.Errorf("expected version 1.0.0, got %s", backup.Version)
	}
	if backup.CreatedAt == "" {
		t.Error("expected non-empty CreatedAt")
	}
	if backup.Config.Theme != "dark" {
		t.Errorf("expected Theme=dark, got %s", backup.Config.Theme)
	}
	if len(backup.Inventory.Containers) != 1 || backup.Inventory.Containers[0].Name != "Crate" {
		t.Errorf("expected the Crate preset, got %+v", backup.Inventory.Containers)
	}
}

func TestImportAllDataMissingVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backup.json")
	if err := os.WriteFile(path, []byte(`{"config": {}}`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ImportAllData(path); err == nil {
		t.Error("expected error for missing version")
	}
}

func TestImportAllDataNilRecentManifests(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backup.json")
	if err := os.WriteFile(path, []byte(`{"version": "1.0.0", "config": {"theme": "light"}}`), 0644); err != nil {
		t.Fatal(err)
	}
	backup, err := ImportAllData(path)
	if err != nil {
		t.Fatalf("ImportAllData failed: %v", err)
	}
	if backup.Config.RecentManifests == nil {
		t.Error("RecentManifests should not be nil after import")
	}
}

func TestRestoreAllData(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.json")
	invPath := filepath.Join(dir, "presets.json")

	cfg := model.DefaultAppConfig()
	cfg.Theme = "light"
	extra := model.NewContainerPreset("Extra", [3]float64{5, 5, 5}, 0, "box")
	backup := BackupData{Version: "1.0.0", Config: cfg, Inventory: model.Inventory{
		Containers: []model.ContainerPreset{extra},
	}}

	if err := RestoreAllData(backup, configPath, invPath); err != nil {
		t.Fatalf("RestoreAllData failed: %v", err)
	}

	loadedCfg, err := LoadAppConfig(configPath)
	if err != nil {
		t.Fatal(err)
	}
	if loadedCfg.Theme != "light" {
		t.Errorf("expected Theme=light, got %s", loadedCfg.Theme)
	}
	inv, err := LoadInventory(invPath)
	if err != nil {
		t.Fatal(err)
	}
	want := len(model.DefaultInventory().Containers) + 1
	if len(inv.Containers) != want {
		t.Errorf("expected %d presets, got %d", want, len(inv.Containers))
	}
	if inv.FindByID(extra.ID) == nil {
		t.Error("restored preset missing")
	}
}
