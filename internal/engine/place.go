package engine

import (
	"sort"

	"github.com/piwi3910/cargostack/internal/geom"
)

// Place finds the tightest orientation of item inside space. The six
// assignments of the item's extents to the space axes are tried; the one whose
// ascending margin triple is lexicographically smallest wins, the earliest
// candidate keeping ties. The item sits in the space's low corner.
// ok is false when no orientation fits.
func Place(item Item, space Space) (Placement, bool) {
	d := item.Dimensions
	// Candidate order is part of the tie-break: permutations of (W, H, L).
	base := [3]float64{d.Width, d.Height, d.Length}
	s := space.Dimensions.Raw

	found := false
	var best geom.Coordinates
	var bestMargins geom.Coordinates

	for _, perm := range geom.Permutations3() {
		rot := geom.Coordinates{base[perm[0]], base[perm[1]], base[perm[2]]}
		if rot[0] > s[0] || rot[1] > s[1] || rot[2] > s[2] {
			continue
		}
		margins := []float64{s[0] - rot[0], s[1] - rot[1], s[2] - rot[2]}
		sort.Float64s(margins)
		sig := geom.Coordinates{margins[0], margins[1], margins[2]}

		if !found || geom.CmpCoordinates(sig, bestMargins) < 0 {
			found = true
			best = rot
			bestMargins = sig
		}
	}

	if !found {
		return Placement{}, false
	}
	return Placement{
		Label:      item.Label,
		Dimensions: geom.Canonicalize(best),
		Position:   space.Position,
		Weight:     item.Weight,
	}, true
}
