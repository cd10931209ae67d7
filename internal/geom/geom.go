// Package geom holds the dimension value types shared by the packing engine
// and the boundary layer.
package geom

import "sort"

// Coordinates is an axis-labelled triple: x, y, z.
type Coordinates [3]float64

// Dimensions keeps a caller-given triple together with its canonical form.
// Raw keeps axis identity; Length >= Width >= Height is used for every
// size comparison.
type Dimensions struct {
	Raw    Coordinates
	Length float64
	Width  float64
	Height float64
}

// Canonicalize sorts a triple descending into length, width and height.
func Canonicalize(raw Coordinates) Dimensions {
	sorted := []float64{raw[0], raw[1], raw[2]}
	sort.Float64s(sorted)
	return Dimensions{
		Raw:    raw,
		Length: sorted[2],
		Width:  sorted[1],
		Height: sorted[0],
	}
}

// New is shorthand for Canonicalize(Coordinates{x, y, z}).
func New(x, y, z float64) Dimensions {
	return Canonicalize(Coordinates{x, y, z})
}

// Volume returns the product of the three extents.
func (d Dimensions) Volume() float64 {
	return d.Length * d.Width * d.Height
}

// Canonical returns (length, width, height) as a triple.
func (d Dimensions) Canonical() Coordinates {
	return Coordinates{d.Length, d.Width, d.Height}
}

// CmpLWH orders by length, then width, then height.
func CmpLWH(a, b Dimensions) int {
	return CmpCoordinates(
		Coordinates{a.Length, a.Width, a.Height},
		Coordinates{b.Length, b.Width, b.Height},
	)
}

// CmpHWL orders by height, then width, then length.
func CmpHWL(a, b Dimensions) int {
	return CmpCoordinates(
		Coordinates{a.Height, a.Width, a.Length},
		Coordinates{b.Height, b.Width, b.Length},
	)
}

// CmpCoordinates compares two triples lexicographically and returns -1, 0 or 1.
// Inputs are assumed finite.
func CmpCoordinates(a, b Coordinates) int {
	for i := 0; i < 3; i++ {
		if a[i] < b[i] {
			return -1
		}
		if a[i] > b[i] {
			return 1
		}
	}
	return 0
}

// FitsWithin reports whether every canonical extent of d is <= the matching
// extent of outer.
func (d Dimensions) FitsWithin(outer Dimensions) bool {
	return d.Length <= outer.Length && d.Width <= outer.Width && d.Height <= outer.Height
}

// Permutations3 returns the six orderings of {0, 1, 2} in lexicographic order.
func Permutations3() [6][3]int {
	var out [6][3]int
	n := 0
	for a := 0; a < 3; a++ {
		for b := 0; b < 3; b++ {
			if b == a {
				continue
			}
			out[n] = [3]int{a, b, 3 - a - b}
			n++
		}
	}
	return out
}
