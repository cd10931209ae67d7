package engine

import (
	"fmt"

	"github.com/piwi3910/cargostack/internal/geom"
)

// Item is one cuboid to be packed. A nil Weight means the item has no
// declared weight.
type Item struct {
	Label      string
	Dimensions geom.Dimensions
	Weight     *float64
}

// NewItem builds an item from raw extents.
func NewItem(label string, x, y, z float64, weight *float64) Item {
	return Item{Label: label, Dimensions: geom.New(x, y, z), Weight: weight}
}

func (it Item) String() string {
	s := fmt.Sprintf("{dimensions: [%g, %g, %g]", it.Dimensions.Raw[0], it.Dimensions.Raw[1], it.Dimensions.Raw[2])
	if it.Weight != nil {
		s += fmt.Sprintf(", weight: %g", *it.Weight)
	}
	s += "}"
	if it.Label != "" {
		s = it.Label + " " + s
	}
	return s
}

// Container is the shape every packing is opened with.
type Container struct {
	Dimensions  geom.Dimensions
	WeightLimit *float64
}

// NewContainer builds a container from raw extents.
func NewContainer(x, y, z float64, weightLimit *float64) Container {
	return Container{Dimensions: geom.New(x, y, z), WeightLimit: weightLimit}
}

// Space is a free box inside one packing. Dimensions.Raw holds the real
// extent along each axis; Position is the low corner.
type Space struct {
	Dimensions geom.Dimensions
	Position   geom.Coordinates
}

// Box returns the occupied region of the space.
func (s Space) Box() geom.Box {
	return geom.Box{Min: s.Position, Size: s.Dimensions.Raw}
}

// Placement fixes an item to an orientation (Dimensions.Raw, one extent per
// axis) at a position.
type Placement struct {
	Label      string
	Dimensions geom.Dimensions
	Position   geom.Coordinates
	Weight     *float64
}

// Box returns the region occupied by the placed item.
func (p Placement) Box() geom.Box {
	return geom.Box{Min: p.Position, Size: p.Dimensions.Raw}
}

// Packing is one physical container instance.
type Packing struct {
	Placements []Placement
	Spaces     []Space
	Weight     float64

	// Stacked marks a packing produced by the greedy stack heuristic. Its
	// placements keep their raw dimensions and are only offset by canonical
	// heights, so they describe a stacking order rather than exact geometry.
	Stacked bool
}

// UsedVolume sums the volume of every placement.
func (p Packing) UsedVolume() float64 {
	var total float64
	for _, pl := range p.Placements {
		total += pl.Dimensions.Volume()
	}
	return total
}

// Result is the outcome of one packing run.
type Result struct {
	Packings []Packing
	Errors   []PackError
}

// PlacedCount returns the number of placements across all packings.
func (r Result) PlacedCount() int {
	n := 0
	for _, p := range r.Packings {
		n += len(p.Placements)
	}
	return n
}

// Utilization returns used volume over the volume of every opened container,
// as a percentage.
func (r Result) Utilization(c Container) float64 {
	total := c.Dimensions.Volume() * float64(len(r.Packings))
	if total == 0 {
		return 0
	}
	var used float64
	for _, p := range r.Packings {
		used += p.UsedVolume()
	}
	return (used / total) * 100.0
}

// Messages returns the error strings in report order.
func (r Result) Messages() []string {
	out := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		out[i] = e.Error()
	}
	return out
}

// weightOf is the single absent-as-zero policy for item and placement
// weights: every weight sum in this package goes through it.
func weightOf(w *float64) float64 {
	if w == nil {
		return 0
	}
	return *w
}
