package engine

import (
	"io"
	"math"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/piwi3910/cargostack/internal/geom"
)

// WeightLimitPolicy decides what a container without a weight limit allows.
type WeightLimitPolicy int

const (
	// LimitZero treats a missing limit as 0: any positively weighted item is
	// rejected as over-weight.
	LimitZero WeightLimitPolicy = iota
	// LimitUnbounded treats a missing limit as no limit at all.
	LimitUnbounded
)

// Options tunes a Packer. The zero value reproduces the reference packer.
type Options struct {
	MissingLimit WeightLimitPolicy
}

// Packer runs the multi-container packing loop.
type Packer struct {
	Options Options
	logger  *log.Logger
}

// New returns a packer with the given options and a discarding logger.
func New(opts Options) *Packer {
	return &Packer{Options: opts, logger: log.New(io.Discard)}
}

// WithLogger routes the packer's debug trace to l.
func (p *Packer) WithLogger(l *log.Logger) *Packer {
	if l != nil {
		p.logger = l
	}
	return p
}

// Pack packs items into as many copies of container as needed using the
// default options.
func Pack(container Container, items []Item) Result {
	return New(Options{}).Pack(container, items)
}

// limit resolves the container's weight allowance under the policy.
func (p *Packer) limit(c Container) float64 {
	if c.WeightLimit != nil {
		return *c.WeightLimit
	}
	if p.Options.MissingLimit == LimitUnbounded {
		return math.Inf(1)
	}
	return 0
}

// Pack places items largest first. Each item goes into the first open packing
// with weight headroom and a free space it fits, smallest space first. When
// none accepts it a new packing is opened. If that left more than one packing
// and a plain stack of all items fits a single container, the stack replaces
// the whole result, errors included.
func (p *Packer) Pack(container Container, items []Item) Result {
	limit := p.limit(container)

	sorted := make([]Item, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return geom.CmpLWH(sorted[i].Dimensions, sorted[j].Dimensions) > 0
	})

	var result Result
	for _, item := range sorted {
		w := weightOf(item.Weight)
		if w > limit {
			p.logger.Debug("item over weight", "item", item, "weight", w, "limit", limit)
			result.Errors = append(result.Errors, PackError{Kind: ErrOverWeight, Item: item})
			continue
		}

		if p.placeInOpenPackings(result.Packings, item, limit) {
			continue
		}

		// Containers are always opened with length along x, width along y
		// and height along z.
		full := Space{Dimensions: geom.Canonicalize(container.Dimensions.Canonical())}
		placement, ok := Place(item, full)
		if !ok {
			p.logger.Debug("item does not fit an empty container", "item", item)
			result.Errors = append(result.Errors, PackError{Kind: ErrUnplaceable, Item: item})
			continue
		}
		spaces := BreakUpSpace(full, placement)
		result.Packings = append(result.Packings, Packing{
			Placements: []Placement{placement},
			Spaces:     spaces[:],
			Weight:     w,
		})
		p.logger.Debug("opened packing", "index", len(result.Packings)-1, "item", item)
	}

	if len(result.Packings) > 1 && fitsGreedyBox(container, items, limit) {
		p.logger.Debug("greedy stack fits a single container, replacing result",
			"packings", len(result.Packings), "errors", len(result.Errors))
		return Result{Packings: GeneratePackingForGreedyBox(items)}
	}
	return result
}

// placeInOpenPackings tries every open packing in creation order and reports
// whether the item was placed.
func (p *Packer) placeInOpenPackings(packings []Packing, item Item, limit float64) bool {
	w := weightOf(item.Weight)
	for i := range packings {
		pk := &packings[i]
		if pk.Weight+w > limit {
			continue
		}

		live := pk.Spaces[:0]
		for _, s := range pk.Spaces {
			if s.Dimensions.Volume() > 0 {
				live = append(live, s)
			}
		}
		pk.Spaces = live
		sort.SliceStable(pk.Spaces, func(a, b int) bool {
			return geom.CmpHWL(pk.Spaces[a].Dimensions, pk.Spaces[b].Dimensions) < 0
		})

		for j, space := range pk.Spaces {
			placement, ok := Place(item, space)
			if !ok {
				continue
			}
			split := BreakUpSpace(space, placement)
			pk.Placements = append(pk.Placements, placement)
			pk.Weight += w
			pk.Spaces = append(pk.Spaces[:j], pk.Spaces[j+1:]...)
			pk.Spaces = append(pk.Spaces, split[:]...)
			p.logger.Debug("placed item", "packing", i, "item", item, "position", placement.Position)
			return true
		}
	}
	return false
}
