package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultInventory(t *testing.T) {
	inv := DefaultInventory()

	require.NotEmpty(t, inv.Containers)
	seen := map[string]bool{}
	for _, c := range inv.Containers {
		assert.Len(t, c.ID, 8)
		assert.False(t, seen[c.ID], "duplicate ID %s", c.ID)
		seen[c.ID] = true
		assert.NotNil(t, c.WeightLimit, c.Name)
	}
	assert.Equal(t, len(inv.Containers), len(inv.Names()))
}

func TestInventoryFind(t *testing.T) {
	inv := DefaultInventory()
	first := inv.Containers[0]

	assert.Equal(t, first.Name, inv.FindByID(first.ID).Name)
	assert.Equal(t, first.ID, inv.FindByName(first.Name).ID)
	assert.Nil(t, inv.FindByID("missing"))
	assert.Nil(t, inv.FindByName("missing"))
}

func TestInventoryAddRemove(t *testing.T) {
	inv := Inventory{}
	inv.Add(ContainerPreset{Name: "Crate", Dimensions: [3]float64{1, 2, 3}})

	require.Len(t, inv.Containers, 1)
	id := inv.Containers[0].ID
	assert.Len(t, id, 8)

	assert.True(t, inv.Remove(id))
	assert.False(t, inv.Remove(id))
	assert.Empty(t, inv.Containers)
}

func TestPresetToContainerCopiesLimit(t *testing.T) {
	p := NewContainerPreset("Pallet", [3]float64{1200, 800, 1800}, 1500, "pallet")
	c := p.ToContainer()

	assert.Equal(t, "Pallet", c.Label)
	assert.Equal(t, p.Dimensions, c.Dimensions)
	require.NotNil(t, c.WeightLimit)
	assert.Equal(t, 1500.0, *c.WeightLimit)

	*c.WeightLimit = 1
	assert.Equal(t, 1500.0, *p.WeightLimit, "container must not alias the preset")
}

func TestPresetWithoutLimit(t *testing.T) {
	p := NewContainerPreset("Open", [3]float64{1, 1, 1}, 0, "box")
	assert.Nil(t, p.WeightLimit)
	assert.Nil(t, p.ToContainer().WeightLimit)
}
