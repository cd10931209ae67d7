package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/cargostack/internal/geom"
)

func space(x, y, z float64, pos geom.Coordinates) Space {
	return Space{Dimensions: geom.New(x, y, z), Position: pos}
}

func TestPlace_FitsAtSpacePosition(t *testing.T) {
	w := 10.0
	item := NewItem("A", 5, 5, 5, &w)
	sp := space(10, 10, 10, geom.Coordinates{1, 2, 3})

	p, ok := Place(item, sp)

	require.True(t, ok)
	assert.Equal(t, geom.Coordinates{1, 2, 3}, p.Position)
	assert.Equal(t, geom.Coordinates{5, 5, 5}, p.Dimensions.Raw)
	require.NotNil(t, p.Weight)
	assert.Equal(t, 10.0, *p.Weight)
	assert.Equal(t, "A", p.Label)
}

func TestPlace_RotatesIntoExactFit(t *testing.T) {
	item := NewItem("", 2, 3, 4, nil)
	sp := space(4, 3, 2, geom.Coordinates{})

	p, ok := Place(item, sp)

	require.True(t, ok)
	assert.Equal(t, geom.Coordinates{4, 3, 2}, p.Dimensions.Raw, "only one orientation fits")
}

func TestPlace_TooLarge(t *testing.T) {
	item := NewItem("", 20, 20, 20, nil)
	_, ok := Place(item, space(10, 10, 10, geom.Coordinates{}))
	assert.False(t, ok)
}

func TestPlace_PrefersTightestMargins(t *testing.T) {
	// On edge the plate leaves margins (0, 0, 9); every flat orientation
	// leaves at least (0, 2, 5).
	item := NewItem("", 8, 3, 1, nil)
	p, ok := Place(item, space(10, 8, 3, geom.Coordinates{}))

	require.True(t, ok)
	assert.Equal(t, geom.Coordinates{1, 8, 3}, p.Dimensions.Raw)
}

func TestPlace_TieKeepsFirstCandidate(t *testing.T) {
	// Every orientation of a 6x6x5 box in a 10-cube has margins (4, 4, 5);
	// the first candidate, (W, H, L), wins.
	item := NewItem("", 6, 6, 5, nil)
	p, ok := Place(item, space(10, 10, 10, geom.Coordinates{}))

	require.True(t, ok)
	assert.Equal(t, geom.Coordinates{6, 5, 6}, p.Dimensions.Raw)
}

func TestPlace_Deterministic(t *testing.T) {
	item := NewItem("", 3, 7, 2, nil)
	sp := space(9, 4, 8, geom.Coordinates{2, 0, 1})

	first, ok1 := Place(item, sp)
	second, ok2 := Place(item, sp)

	assert.Equal(t, ok1, ok2)
	assert.Equal(t, first, second)
}

func TestPlace_OrientationWithinSpace(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		item := NewItem("", float64(rng.Intn(10)), float64(rng.Intn(10)), float64(rng.Intn(10)), nil)
		sp := space(float64(rng.Intn(12)), float64(rng.Intn(12)), float64(rng.Intn(12)), geom.Coordinates{})

		p, ok := Place(item, sp)
		if !ok {
			continue
		}
		for axis := 0; axis < 3; axis++ {
			assert.LessOrEqual(t, p.Dimensions.Raw[axis], sp.Dimensions.Raw[axis])
		}
		assert.Equal(t, 0, geom.CmpLWH(item.Dimensions, p.Dimensions), "orientation must be a permutation of the item")
	}
}

func TestPlace_MonotoneFit(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 500; i++ {
		big := geom.New(float64(1+rng.Intn(10)), float64(1+rng.Intn(10)), float64(1+rng.Intn(10)))
		small := geom.New(
			big.Length-float64(rng.Intn(int(big.Length))),
			big.Width-float64(rng.Intn(int(big.Width))),
			big.Height-float64(rng.Intn(int(big.Height))),
		)
		require.True(t, small.FitsWithin(big))

		sp := space(float64(rng.Intn(12)), float64(rng.Intn(12)), float64(rng.Intn(12)), geom.Coordinates{})
		if _, ok := Place(Item{Dimensions: big}, sp); !ok {
			continue
		}
		_, ok := Place(Item{Dimensions: small}, sp)
		assert.True(t, ok, "%v fits %v but %v does not", big.Raw, sp.Dimensions.Raw, small.Raw)
	}
}
