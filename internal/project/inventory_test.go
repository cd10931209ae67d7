package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/cargostack/internal/model"
)

func TestDefaultInventoryPath(t *testing.T) {
	path := DefaultInventoryPath()
	assert.Equal(t, "presets.json", filepath.Base(path))
	assert.Equal(t, ".cargostack", filepath.Base(filepath.Dir(path)))
}

func TestSaveAndLoadInventory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.json")
	inv := model.Inventory{Containers: []model.ContainerPreset{
		model.NewContainerPreset("Crate", [3]float64{100, 80, 60}, 250, "box"),
	}}

	require.NoError(t, SaveInventory(path, inv))
	loaded, err := LoadInventory(path)
	require.NoError(t, err)

	assert.Equal(t, inv, loaded)
}

func TestLoadInventoryCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "presets.json")

	inv, err := LoadInventory(path)
	require.NoError(t, err)

	assert.Equal(t, len(model.DefaultInventory().Containers), len(inv.Containers))
	_, statErr := os.Stat(path)
	assert.NoError(t, statErr, "defaults should be written to disk")
}

func TestLoadInventoryInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.json")
	require.NoError(t, os.WriteFile(path, []byte("[1,2"), 0644))

	_, err := LoadInventory(path)
	assert.Error(t, err)
}

func TestImportInventorySkipsDuplicateIDs(t *testing.T) {
	existing := model.Inventory{Containers: []model.ContainerPreset{
		{ID: "aaaa0001", Name: "Kept"},
	}}
	incoming := model.Inventory{Containers: []model.ContainerPreset{
		{ID: "aaaa0001", Name: "Duplicate"},
		{ID: "bbbb0002", Name: "New"},
	}}
	path := filepath.Join(t.TempDir(), "import.json")
	require.NoError(t, SaveInventory(path, incoming))

	merged, err := ImportInventory(path, existing)
	require.NoError(t, err)

	require.Len(t, merged.Containers, 2)
	assert.Equal(t, "Kept", merged.Containers[0].Name)
	assert.Equal(t, "New", merged.Containers[1].Name)
}

func TestImportInventoryMissingFile(t *testing.T) {
	existing := model.DefaultInventory()
	got, err := ImportInventory(filepath.Join(t.TempDir(), "nope.json"), existing)
	assert.Error(t, err)
	assert.Equal(t, existing, got)
}
