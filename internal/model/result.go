package model

import (
	"github.com/piwi3910/cargostack/internal/engine"
)

// PlacementResult is one placed item. Dimensions are in the chosen
// orientation, one extent per axis.
type PlacementResult struct {
	Label      string     `json:"label,omitempty"`
	Dimensions [3]float64 `json:"dimensions"`
	Position   [3]float64 `json:"position"`
	Weight     *float64   `json:"weight,omitempty"`
}

// Volume returns the placed volume.
func (p PlacementResult) Volume() float64 {
	return p.Dimensions[0] * p.Dimensions[1] * p.Dimensions[2]
}

// SpaceResult is a free box left in a packing.
type SpaceResult struct {
	Dimensions [3]float64 `json:"dimensions"`
	Position   [3]float64 `json:"position"`
}

// PackingResult represents one loaded container.
type PackingResult struct {
	Placements []PlacementResult `json:"placements"`
	Spaces     []SpaceResult     `json:"spaces"`
	Weight     float64           `json:"weight"`
	Stacked    bool              `json:"stacked,omitempty"`
}

// UsedVolume returns the total volume of the placements.
func (p PackingResult) UsedVolume() float64 {
	var total float64
	for _, pl := range p.Placements {
		total += pl.Volume()
	}
	return total
}

// PackError reports an item that could not be packed.
type PackError struct {
	Kind      string `json:"kind"`
	ItemLabel string `json:"item_label,omitempty"`
	Message   string `json:"message"`
}

// PackResult holds the full solution.
type PackResult struct {
	Container Container       `json:"container"`
	Packings  []PackingResult `json:"packings"`
	Errors    []PackError     `json:"errors"`
}

// FromEngine converts an engine result for output.
func FromEngine(container Container, r engine.Result) PackResult {
	out := PackResult{
		Container: container,
		Packings:  make([]PackingResult, 0, len(r.Packings)),
		Errors:    make([]PackError, 0, len(r.Errors)),
	}
	for _, pk := range r.Packings {
		pr := PackingResult{
			Placements: make([]PlacementResult, 0, len(pk.Placements)),
			Spaces:     make([]SpaceResult, 0, len(pk.Spaces)),
			Weight:     pk.Weight,
			Stacked:    pk.Stacked,
		}
		for _, pl := range pk.Placements {
			pr.Placements = append(pr.Placements, PlacementResult{
				Label:      pl.Label,
				Dimensions: pl.Dimensions.Raw,
				Position:   pl.Position,
				Weight:     pl.Weight,
			})
		}
		for _, s := range pk.Spaces {
			pr.Spaces = append(pr.Spaces, SpaceResult{
				Dimensions: s.Dimensions.Raw,
				Position:   s.Position,
			})
		}
		out.Packings = append(out.Packings, pr)
	}
	for _, e := range r.Errors {
		out.Errors = append(out.Errors, PackError{
			Kind:      string(e.Kind),
			ItemLabel: e.Item.Label,
			Message:   e.Error(),
		})
	}
	return out
}

// PlacedCount returns the number of placements across all packings.
func (r PackResult) PlacedCount() int {
	n := 0
	for _, p := range r.Packings {
		n += len(p.Placements)
	}
	return n
}

// TotalWeight returns the summed weight of every packing.
func (r PackResult) TotalWeight() float64 {
	var total float64
	for _, p := range r.Packings {
		total += p.Weight
	}
	return total
}

// TotalVolume returns the volume of every opened container.
func (r PackResult) TotalVolume() float64 {
	return r.Container.Volume() * float64(len(r.Packings))
}

// UsedVolume returns the volume taken by placements.
func (r PackResult) UsedVolume() float64 {
	var total float64
	for _, p := range r.Packings {
		total += p.UsedVolume()
	}
	return total
}

// Utilization returns the overall volume usage percentage.
func (r PackResult) Utilization() float64 {
	tv := r.TotalVolume()
	if tv == 0 {
		return 0
	}
	return (r.UsedVolume() / tv) * 100.0
}
