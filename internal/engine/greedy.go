package engine

import (
	"math"

	"github.com/piwi3910/cargostack/internal/geom"
)

// ItemGreedyBox returns the bounding box of a plain stack of items: the
// largest canonical length, the largest canonical width and the summed
// canonical heights. The height is rounded to one decimal to bound drift
// from repeated summation. Raw holds (length, width, height) in that order.
func ItemGreedyBox(items []Item) geom.Dimensions {
	var maxLength, maxWidth, totalHeight float64
	for _, it := range items {
		maxLength = math.Max(maxLength, it.Dimensions.Length)
		maxWidth = math.Max(maxWidth, it.Dimensions.Width)
		totalHeight += it.Dimensions.Height
	}
	return geom.Canonicalize(geom.Coordinates{maxLength, maxWidth, math.Round(totalHeight*10) / 10})
}

// FitsGreedyBox reports whether container can hold the greedy stack of items,
// both by extents and by weight. A missing weight limit counts as zero.
func FitsGreedyBox(container Container, items []Item) bool {
	return fitsGreedyBox(container, items, weightOf(container.WeightLimit))
}

// FitsGreedyBox reports whether container can hold the greedy stack, with a
// missing weight limit resolved under the packer's policy.
func (p *Packer) FitsGreedyBox(container Container, items []Item) bool {
	return fitsGreedyBox(container, items, p.limit(container))
}

func fitsGreedyBox(container Container, items []Item, limit float64) bool {
	box := ItemGreedyBox(items).Raw
	var total float64
	for _, it := range items {
		total += weightOf(it.Weight)
	}
	c := container.Dimensions
	return c.Length >= box[0] &&
		c.Width >= box[1] &&
		c.Height >= box[2] &&
		limit >= total
}

// GeneratePackingForGreedyBox stacks every item, in the given order and with
// its raw dimensions, along the z axis. Each item starts where the previous
// items' canonical heights end. The result always holds exactly one packing.
func GeneratePackingForGreedyBox(items []Item) []Packing {
	packing := Packing{
		Placements: make([]Placement, 0, len(items)),
		Spaces:     []Space{},
		Stacked:    true,
	}
	var offset float64
	for _, it := range items {
		packing.Placements = append(packing.Placements, Placement{
			Label:      it.Label,
			Dimensions: it.Dimensions,
			Position:   geom.Coordinates{0, 0, offset},
			Weight:     it.Weight,
		})
		packing.Weight += weightOf(it.Weight)
		offset += it.Dimensions.Height
	}
	return []Packing{packing}
}
