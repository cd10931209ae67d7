package model

import "github.com/google/uuid"

// ContainerPreset represents a reusable container definition.
type ContainerPreset struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Dimensions  [3]float64 `json:"dimensions"`
	WeightLimit *float64   `json:"weight_limit,omitempty"`
	Kind        string     `json:"kind"` // "pallet", "container", "box", ...
}

// NewContainerPreset creates a new ContainerPreset with a generated ID.
func NewContainerPreset(name string, dims [3]float64, weightLimit float64, kind string) ContainerPreset {
	p := ContainerPreset{
		ID:         uuid.New().String()[:8],
		Name:       name,
		Dimensions: dims,
		Kind:       kind,
	}
	if weightLimit > 0 {
		p.WeightLimit = &weightLimit
	}
	return p
}

// ToContainer converts a preset into a manifest container.
func (p ContainerPreset) ToContainer() Container {
	c := NewContainer(p.Name, p.Dimensions, nil)
	if p.WeightLimit != nil {
		limit := *p.WeightLimit
		c.WeightLimit = &limit
	}
	return c
}

// Inventory holds the user's saved container presets.
type Inventory struct {
	Containers []ContainerPreset `json:"containers"`
}

// DefaultInventory returns an inventory populated with common load carriers.
// Extents are interior millimetres, limits are payload kilograms.
func DefaultInventory() Inventory {
	return Inventory{
		Containers: []ContainerPreset{
			NewContainerPreset("EUR pallet (1200x800, 1.8m load)", [3]float64{1200, 800, 1800}, 1500, "pallet"),
			NewContainerPreset("Industrial pallet (1200x1000, 1.8m load)", [3]float64{1200, 1000, 1800}, 1500, "pallet"),
			NewContainerPreset("20ft standard", [3]float64{5898, 2352, 2393}, 28200, "container"),
			NewContainerPreset("40ft standard", [3]float64{12032, 2352, 2393}, 26700, "container"),
			NewContainerPreset("40ft high cube", [3]float64{12032, 2352, 2698}, 26500, "container"),
			NewContainerPreset("Parcel box large", [3]float64{600, 400, 400}, 31.5, "box"),
		},
	}
}

// FindByID returns a pointer to the preset with the given ID, or nil.
func (inv *Inventory) FindByID(id string) *ContainerPreset {
	for i := range inv.Containers {
		if inv.Containers[i].ID == id {
			return &inv.Containers[i]
		}
	}
	return nil
}

// FindByName returns a pointer to the first preset with the given name, or nil.
func (inv *Inventory) FindByName(name string) *ContainerPreset {
	for i := range inv.Containers {
		if inv.Containers[i].Name == name {
			return &inv.Containers[i]
		}
	}
	return nil
}

// Names returns the preset names in inventory order.
func (inv *Inventory) Names() []string {
	names := make([]string, len(inv.Containers))
	for i, c := range inv.Containers {
		names[i] = c.Name
	}
	return names
}

// Add appends a preset, minting an ID when it has none.
func (inv *Inventory) Add(p ContainerPreset) {
	if p.ID == "" {
		p.ID = uuid.New().String()[:8]
	}
	inv.Containers = append(inv.Containers, p)
}

// Remove deletes the preset with the given ID and reports whether it existed.
func (inv *Inventory) Remove(id string) bool {
	for i := range inv.Containers {
		if inv.Containers[i].ID == id {
			inv.Containers = append(inv.Containers[:i], inv.Containers[i+1:]...)
			return true
		}
	}
	return false
}
