package model

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/piwi3910/cargostack/internal/engine"
)

// WeightLimitPolicy decides what a container without a weight limit allows.
type WeightLimitPolicy string

const (
	LimitZero      WeightLimitPolicy = "zero"      // Missing limit counts as 0
	LimitUnbounded WeightLimitPolicy = "unbounded" // Missing limit means no limit
)

// Engine maps the policy onto the packer option. Unknown values fall back to
// the zero policy.
func (p WeightLimitPolicy) Engine() engine.WeightLimitPolicy {
	if p == LimitUnbounded {
		return engine.LimitUnbounded
	}
	return engine.LimitZero
}

// Item is a line of the load list. Quantity copies are packed.
type Item struct {
	ID         string     `json:"id" toml:"id"`
	Label      string     `json:"label" toml:"label"`
	Dimensions [3]float64 `json:"dimensions" toml:"dimensions"` // x, y, z in any unit
	Weight     *float64   `json:"weight,omitempty" toml:"weight,omitempty"`
	Quantity   int        `json:"quantity" toml:"quantity"`
}

func NewItem(label string, dims [3]float64, qty int) Item {
	return Item{
		ID:         uuid.New().String()[:8],
		Label:      label,
		Dimensions: dims,
		Quantity:   qty,
	}
}

// WithWeight returns a copy of the item carrying weight w.
func (it Item) WithWeight(w float64) Item {
	it.Weight = &w
	return it
}

// Volume returns the volume of a single copy.
func (it Item) Volume() float64 {
	return it.Dimensions[0] * it.Dimensions[1] * it.Dimensions[2]
}

// Container is the shape every packing is opened with.
type Container struct {
	ID          string     `json:"id" toml:"id"`
	Label       string     `json:"label" toml:"label"`
	Dimensions  [3]float64 `json:"dimensions" toml:"dimensions"`
	WeightLimit *float64   `json:"weight_limit,omitempty" toml:"weight_limit,omitempty"`
}

func NewContainer(label string, dims [3]float64, weightLimit *float64) Container {
	return Container{
		ID:          uuid.New().String()[:8],
		Label:       label,
		Dimensions:  dims,
		WeightLimit: weightLimit,
	}
}

// Volume returns the container volume.
func (c Container) Volume() float64 {
	return c.Dimensions[0] * c.Dimensions[1] * c.Dimensions[2]
}

// DisplayName returns the label, or the dimensions when the label is empty.
func (c Container) DisplayName() string {
	if c.Label != "" {
		return c.Label
	}
	return fmt.Sprintf("%gx%gx%g", c.Dimensions[0], c.Dimensions[1], c.Dimensions[2])
}

// ToEngine converts the container for the packer.
func (c Container) ToEngine() engine.Container {
	return engine.NewContainer(c.Dimensions[0], c.Dimensions[1], c.Dimensions[2], c.WeightLimit)
}

// PackSettings holds the knobs of a packing run.
type PackSettings struct {
	MissingWeightLimit WeightLimitPolicy `json:"missing_weight_limit" toml:"missing_weight_limit"`
	Verify             bool              `json:"verify" toml:"verify"` // Check the result invariants after packing
}

func DefaultSettings() PackSettings {
	return PackSettings{
		MissingWeightLimit: LimitZero,
		Verify:             false,
	}
}

// Options returns the packer options for these settings.
func (s PackSettings) Options() engine.Options {
	return engine.Options{MissingLimit: s.MissingWeightLimit.Engine()}
}

// Manifest ties a load list to its container for save/load.
type Manifest struct {
	Name       string       `json:"name" toml:"name"`
	Container  Container    `json:"container" toml:"container"`
	Candidates []Container  `json:"candidates,omitempty" toml:"candidates,omitempty"` // Alternatives for compare
	Items      []Item       `json:"items" toml:"items"`
	Settings   PackSettings `json:"settings" toml:"settings"`
}

func NewManifest() Manifest {
	return Manifest{
		Name:     "Untitled",
		Items:    []Item{},
		Settings: DefaultSettings(),
	}
}

// Validate rejects manifests the packer cannot work with: negative or
// non-finite extents and weights, and non-positive quantities.
func (m Manifest) Validate() error {
	if err := validateDims("container", m.Container.Dimensions); err != nil {
		return err
	}
	if err := validateWeight("container weight limit", m.Container.WeightLimit); err != nil {
		return err
	}
	for i, c := range m.Candidates {
		if err := validateDims(fmt.Sprintf("candidate %d", i+1), c.Dimensions); err != nil {
			return err
		}
	}
	for i, it := range m.Items {
		name := fmt.Sprintf("item %d (%s)", i+1, it.Label)
		if err := validateDims(name, it.Dimensions); err != nil {
			return err
		}
		if err := validateWeight(name+" weight", it.Weight); err != nil {
			return err
		}
		if it.Quantity < 1 {
			return fmt.Errorf("%s: quantity must be at least 1, got %d", name, it.Quantity)
		}
	}
	switch m.Settings.MissingWeightLimit {
	case "", LimitZero, LimitUnbounded:
	default:
		return fmt.Errorf("unknown missing_weight_limit %q", m.Settings.MissingWeightLimit)
	}
	return nil
}

func validateDims(name string, d [3]float64) error {
	for _, v := range d {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s: dimensions must be finite and non-negative, got %v", name, d)
		}
	}
	return nil
}

func validateWeight(name string, w *float64) error {
	if w == nil {
		return nil
	}
	if *w < 0 || math.IsNaN(*w) || math.IsInf(*w, 0) {
		return fmt.Errorf("%s must be finite and non-negative, got %g", name, *w)
	}
	return nil
}

// ExpandItems turns every item into Quantity engine items, keeping list order.
func ExpandItems(items []Item) []engine.Item {
	var out []engine.Item
	for _, it := range items {
		for i := 0; i < it.Quantity; i++ {
			out = append(out, engine.NewItem(it.Label, it.Dimensions[0], it.Dimensions[1], it.Dimensions[2], it.Weight))
		}
	}
	return out
}

// TotalQuantity returns the number of copies across all items.
func (m Manifest) TotalQuantity() int {
	n := 0
	for _, it := range m.Items {
		n += it.Quantity
	}
	return n
}
