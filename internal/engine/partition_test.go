package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/cargostack/internal/geom"
)

func placedAt(x, y, z float64, pos geom.Coordinates) Placement {
	return Placement{Dimensions: geom.New(x, y, z), Position: pos}
}

func TestBreakUpSpace_HalfSlab(t *testing.T) {
	sp := space(10, 10, 10, geom.Coordinates{})
	got := BreakUpSpace(sp, placedAt(10, 5, 10, geom.Coordinates{}))

	assert.Equal(t, geom.Coordinates{10, 5, 10}, got[0].Dimensions.Raw)
	assert.Equal(t, geom.Coordinates{0, 5, 0}, got[0].Position)
	assert.Equal(t, geom.Coordinates{10, 5, 0}, got[1].Dimensions.Raw)
	assert.Equal(t, geom.Coordinates{0, 0, 10}, got[1].Position)
	assert.Equal(t, geom.Coordinates{0, 5, 10}, got[2].Dimensions.Raw)
	assert.Equal(t, geom.Coordinates{10, 0, 0}, got[2].Position)
}

func TestBreakUpSpace_TieTakesLastCutOrder(t *testing.T) {
	// Cutting y first then z then x, or y then x then z, give splits that rank
	// equal; the later order in the table wins.
	sp := space(10, 10, 10, geom.Coordinates{})
	got := BreakUpSpace(sp, placedAt(6, 5, 6, geom.Coordinates{}))

	want := peel(sp, geom.Coordinates{6, 5, 6}, [3]int{1, 2, 0})
	assert.Equal(t, want, got)
	assert.Equal(t, geom.Coordinates{10, 5, 4}, got[1].Dimensions.Raw)
	assert.Equal(t, geom.Coordinates{0, 0, 6}, got[1].Position)
	assert.Equal(t, geom.Coordinates{4, 5, 6}, got[2].Dimensions.Raw)
	assert.Equal(t, geom.Coordinates{6, 0, 0}, got[2].Position)
}

func TestBreakUpSpace_ExactFitLeavesOnlyEmptySpaces(t *testing.T) {
	sp := space(4, 3, 2, geom.Coordinates{1, 1, 1})
	got := BreakUpSpace(sp, placedAt(4, 3, 2, geom.Coordinates{1, 1, 1}))

	for _, s := range got {
		assert.Zero(t, s.Dimensions.Volume())
	}
}

func TestBreakUpSpace_OffsetsFromSpacePosition(t *testing.T) {
	origin := geom.Coordinates{3, 4, 5}
	sp := space(10, 10, 10, origin)
	got := BreakUpSpace(sp, placedAt(10, 5, 10, origin))

	assert.Equal(t, geom.Coordinates{3, 9, 5}, got[0].Position)
	assert.Equal(t, geom.Coordinates{3, 4, 15}, got[1].Position)
	assert.Equal(t, geom.Coordinates{13, 4, 5}, got[2].Position)
}

func TestBreakUpSpace_ConservesVolumeAndStaysDisjoint(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 300; i++ {
		sp := space(float64(1+rng.Intn(12)), float64(1+rng.Intn(12)), float64(1+rng.Intn(12)),
			geom.Coordinates{float64(rng.Intn(5)), float64(rng.Intn(5)), float64(rng.Intn(5))})
		item := NewItem("", float64(1+rng.Intn(12)), float64(1+rng.Intn(12)), float64(1+rng.Intn(12)), nil)

		pl, ok := Place(item, sp)
		if !ok {
			continue
		}
		parts := BreakUpSpace(sp, pl)

		total := pl.Dimensions.Volume()
		for _, s := range parts {
			total += s.Dimensions.Volume()
		}
		require.InDelta(t, sp.Dimensions.Volume(), total, 1e-9)

		for a := 0; a < 3; a++ {
			assert.True(t, sp.Box().Contains(parts[a].Box(), 1e-9))
			assert.False(t, parts[a].Box().Overlaps(pl.Box(), 1e-9))
			for b := a + 1; b < 3; b++ {
				assert.False(t, parts[a].Box().Overlaps(parts[b].Box(), 1e-9))
			}
		}
	}
}
