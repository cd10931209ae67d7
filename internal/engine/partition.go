package engine

import "github.com/piwi3910/cargostack/internal/geom"

// cutOrders lists the axis order in which the three leftover slabs are peeled
// off. Position in this list decides ties between equally ranked splits.
var cutOrders = [6][3]int{
	{2, 1, 0},
	{2, 0, 1},
	{0, 2, 1},
	{0, 1, 2},
	{1, 0, 2},
	{1, 2, 0},
}

// BreakUpSpace splits what is left of space after placement took its low
// corner into three disjoint boxes. Of the six guillotine cut orders, the
// split ranking highest under box-wise CmpHWL is returned; among equal
// splits the one latest in cutOrders wins.
func BreakUpSpace(space Space, placement Placement) [3]Space {
	best := peel(space, placement.Dimensions.Raw, cutOrders[0])
	for _, order := range cutOrders[1:] {
		candidate := peel(space, placement.Dimensions.Raw, order)
		if cmpSplit(candidate, best) >= 0 {
			best = candidate
		}
	}
	return best
}

// peel cuts the slab beyond the placement along each axis of order in turn.
// After a cut the remaining region shrinks to the placement's extent on that
// axis, so each later slab sits beside the placement.
func peel(space Space, placed geom.Coordinates, order [3]int) [3]Space {
	remaining := space.Dimensions.Raw
	var out [3]Space
	for i, axis := range order {
		dims := remaining
		dims[axis] = remaining[axis] - placed[axis]
		pos := space.Position
		pos[axis] += placed[axis]
		out[i] = Space{Dimensions: geom.Canonicalize(dims), Position: pos}
		remaining[axis] = placed[axis]
	}
	return out
}

func cmpSplit(a, b [3]Space) int {
	for i := 0; i < 3; i++ {
		if c := geom.CmpHWL(a[i].Dimensions, b[i].Dimensions); c != 0 {
			return c
		}
	}
	return 0
}
