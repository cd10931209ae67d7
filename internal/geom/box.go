package geom

// Box is an axis-aligned box given by its low corner and its extents.
type Box struct {
	Min  Coordinates
	Size Coordinates
}

// Max returns the high corner.
func (b Box) Max() Coordinates {
	return Coordinates{b.Min[0] + b.Size[0], b.Min[1] + b.Size[1], b.Min[2] + b.Size[2]}
}

// Volume returns the box volume.
func (b Box) Volume() float64 {
	return b.Size[0] * b.Size[1] * b.Size[2]
}

// Overlaps reports whether two boxes share interior volume. Boxes that only
// touch on a face, edge or corner do not overlap. eps absorbs float drift.
func (b Box) Overlaps(o Box, eps float64) bool {
	bMax, oMax := b.Max(), o.Max()
	for i := 0; i < 3; i++ {
		if b.Min[i] >= oMax[i]-eps || o.Min[i] >= bMax[i]-eps {
			return false
		}
	}
	return true
}

// Contains reports whether inner lies entirely inside b.
func (b Box) Contains(inner Box, eps float64) bool {
	bMax, iMax := b.Max(), inner.Max()
	for i := 0; i < 3; i++ {
		if inner.Min[i] < b.Min[i]-eps || iMax[i] > bMax[i]+eps {
			return false
		}
	}
	return true
}
