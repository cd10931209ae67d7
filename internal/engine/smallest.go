package engine

import (
	"math"
	"sort"

	"github.com/piwi3910/cargostack/internal/geom"
)

// candidateSearch grows container candidates around a seed item. Candidates
// are kept in canonical (ascending) triples so duplicates compare equal.
type candidateSearch struct {
	items    []geom.Dimensions
	minVol   float64
	possible []geom.Coordinates
	seen     map[geom.Coordinates]bool
}

// FindSmallestContainer returns the smallest container shape found that holds
// every item in a single packing. Weights are ignored during the search. If
// the plain stack of the items fits the chosen shape, the stack's box is
// returned instead.
func FindSmallestContainer(items []Item) geom.Dimensions {
	found := FindSmallestContainers(items, 1)
	if len(found) == 0 {
		return ItemGreedyBox(items)
	}
	return found[0]
}

// FindSmallestContainers returns up to maxCount container shapes, smallest
// volume first, each of which packs all items into one packing.
func FindSmallestContainers(items []Item, maxCount int) []geom.Dimensions {
	if len(items) == 0 || maxCount <= 0 {
		return nil
	}
	weightless := stripWeights(items)

	sorted := make([]Item, len(weightless))
	copy(sorted, weightless)
	sort.SliceStable(sorted, func(i, j int) bool {
		return geom.CmpHWL(sorted[i].Dimensions, sorted[j].Dimensions) > 0
	})
	if len(sorted) == 1 {
		return []geom.Dimensions{sorted[0].Dimensions}
	}

	s := &candidateSearch{seen: make(map[geom.Coordinates]bool)}
	for _, it := range sorted {
		s.items = append(s.items, it.Dimensions)
		s.minVol += it.Dimensions.Volume()
	}
	s.grow(sorted[0].Dimensions, 1)

	candidates := append([]geom.Coordinates(nil), s.possible...)
	sort.SliceStable(candidates, func(i, j int) bool {
		return lessVolumeThenSum(candidates[i], candidates[j])
	})

	var out []geom.Dimensions
	for _, c := range candidates {
		container := Container{Dimensions: geom.Canonicalize(c)}
		res := Pack(container, weightless)
		if len(res.Packings) != 1 || len(res.Errors) != 0 {
			continue
		}
		if FitsGreedyBox(container, weightless) {
			out = append(out, ItemGreedyBox(weightless))
		} else {
			out = append(out, container.Dimensions)
		}
		if len(out) >= maxCount {
			break
		}
	}
	if len(out) == 0 {
		// A plain stack always fits in one packing.
		out = append(out, ItemGreedyBox(weightless))
	}
	return out
}

// FindSmallestContainerWithLimits returns the first of up to five candidate
// shapes that fits inside limit (in any orientation). If none does, the
// smallest candidate is returned.
func FindSmallestContainerWithLimits(items []Item, limit geom.Dimensions) geom.Dimensions {
	possible := FindSmallestContainers(items, 5)
	if len(possible) == 0 {
		return ItemGreedyBox(items)
	}
	for _, p := range possible {
		if p.FitsWithin(limit) {
			return p
		}
	}
	return possible[0]
}

// grow combines container with the item at index along each axis, under
// three rotations of both, records every new candidate that is large enough,
// then recurses on the most cube-like new candidate.
func (s *candidateSearch) grow(container geom.Dimensions, index int) {
	if index >= len(s.items) {
		return
	}
	cl, cw, ch := container.Length, container.Width, container.Height
	b := s.items[index]
	cPerms := [3]geom.Coordinates{{cw, ch, cl}, {cl, cw, ch}, {cl, ch, cw}}
	bPerms := [3]geom.Coordinates{{b.Width, b.Height, b.Length}, {b.Length, b.Width, b.Height}, {b.Length, b.Height, b.Width}}

	var fresh []geom.Coordinates
	inFresh := make(map[geom.Coordinates]bool)
	for _, c := range cPerms {
		for _, bp := range bPerms {
			for axis := 0; axis < 3; axis++ {
				var grown geom.Coordinates
				for k := 0; k < 3; k++ {
					if k == axis {
						grown[k] = c[k] + bp[k]
					} else {
						grown[k] = math.Max(c[k], bp[k])
					}
				}
				key := ascending(grown)
				if s.seen[key] || inFresh[key] {
					continue
				}
				inFresh[key] = true
				fresh = append(fresh, key)
			}
		}
	}
	if len(fresh) == 0 {
		return
	}

	sort.SliceStable(fresh, func(i, j int) bool {
		return lessVolumeThenSum(fresh[i], fresh[j])
	})
	for _, c := range fresh {
		if product(c) >= s.minVol {
			s.possible = append(s.possible, c)
			s.seen[c] = true
		}
	}

	next := fresh[0]
	for _, c := range fresh[1:] {
		if lessStdThenVolume(c, next) {
			next = c
		}
	}
	s.grow(geom.Canonicalize(next), index+1)
}

func stripWeights(items []Item) []Item {
	out := make([]Item, len(items))
	for i, it := range items {
		it.Weight = nil
		out[i] = it
	}
	return out
}

func ascending(c geom.Coordinates) geom.Coordinates {
	d := geom.Canonicalize(c)
	return geom.Coordinates{d.Height, d.Width, d.Length}
}

func product(c geom.Coordinates) float64 { return c[0] * c[1] * c[2] }
func sum(c geom.Coordinates) float64     { return c[0] + c[1] + c[2] }

func lessVolumeThenSum(a, b geom.Coordinates) bool {
	if product(a) != product(b) {
		return product(a) < product(b)
	}
	return sum(a) < sum(b)
}

func lessStdThenVolume(a, b geom.Coordinates) bool {
	sa, sb := stddev(a), stddev(b)
	if sa != sb {
		return sa < sb
	}
	return lessVolumeThenSum(a, b)
}

// stddev is the sample standard deviation of the three extents.
func stddev(c geom.Coordinates) float64 {
	n := 3.0
	mean := sum(c) / n
	var sumSq float64
	for _, v := range c {
		sumSq += v * v
	}
	return math.Sqrt(math.Abs((sumSq - n*mean*mean) / (n - 1)))
}
