package engine

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/cargostack/internal/geom"
)

func TestPack_SingleItem(t *testing.T) {
	container := NewContainer(10, 10, 10, ptr(100))
	items := []Item{NewItem("", 5, 5, 5, ptr(10))}

	result := Pack(container, items)

	require.Len(t, result.Packings, 1)
	assert.Empty(t, result.Errors)
	pk := result.Packings[0]
	require.Len(t, pk.Placements, 1)
	assert.Equal(t, 10.0, pk.Weight)
	assert.Equal(t, geom.Coordinates{0, 0, 0}, pk.Placements[0].Position)
	assert.False(t, pk.Stacked)
}

func TestPack_OverWeight(t *testing.T) {
	container := NewContainer(10, 10, 10, ptr(10))
	items := []Item{NewItem("heavy", 5, 5, 5, ptr(50))}

	result := Pack(container, items)

	assert.Empty(t, result.Packings)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, ErrOverWeight, result.Errors[0].Kind)
	assert.Equal(t, "Item: heavy {dimensions: [5, 5, 5], weight: 50} is too heavy for container", result.Errors[0].Error())
}

func TestPack_Unplaceable(t *testing.T) {
	container := NewContainer(10, 10, 10, nil)
	items := []Item{NewItem("", 20, 20, 20, nil)}

	result := Pack(container, items)

	assert.Empty(t, result.Packings)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, ErrUnplaceable, result.Errors[0].Kind)
	assert.Equal(t, []string{"Item: {dimensions: [20, 20, 20]} cannot be placed in container"}, result.Messages())
}

func TestPack_TwoHalvesShareOnePacking(t *testing.T) {
	container := NewContainer(10, 10, 10, nil)
	items := []Item{
		NewItem("", 10, 10, 5, nil),
		NewItem("", 10, 10, 5, nil),
	}

	result := Pack(container, items)

	require.Len(t, result.Packings, 1)
	assert.Empty(t, result.Errors)
	pk := result.Packings[0]
	require.Len(t, pk.Placements, 2)
	assert.Equal(t, geom.Coordinates{0, 0, 0}, pk.Placements[0].Position)
	assert.Equal(t, geom.Coordinates{0, 5, 0}, pk.Placements[1].Position)
	assert.Empty(t, Verify(container, result))
}

func TestPack_OpensNewPackingWhenFull(t *testing.T) {
	container := NewContainer(10, 10, 10, nil)
	items := []Item{
		NewItem("", 10, 10, 4, nil),
		NewItem("", 10, 10, 4, nil),
		NewItem("", 10, 10, 4, nil),
	}

	result := Pack(container, items)

	require.Len(t, result.Packings, 2, "a stack of 12 does not fit, so no fallback")
	assert.Len(t, result.Packings[0].Placements, 2)
	assert.Len(t, result.Packings[1].Placements, 1)
	assert.Empty(t, result.Errors)
	assert.Empty(t, Verify(container, result))
}

func TestPack_WeightLimitSplitsPackings(t *testing.T) {
	container := NewContainer(10, 10, 10, ptr(15))
	items := []Item{
		NewItem("a", 5, 5, 5, ptr(10)),
		NewItem("b", 5, 5, 5, ptr(10)),
	}

	result := Pack(container, items)

	require.Len(t, result.Packings, 2)
	assert.Equal(t, 10.0, result.Packings[0].Weight)
	assert.Equal(t, 10.0, result.Packings[1].Weight)
	assert.Empty(t, Verify(container, result))
}

func TestPack_MissingLimitPolicy(t *testing.T) {
	container := NewContainer(10, 10, 10, nil)
	items := []Item{NewItem("", 5, 5, 5, ptr(50))}

	zero := New(Options{MissingLimit: LimitZero}).Pack(container, items)
	require.Len(t, zero.Errors, 1)
	assert.Equal(t, ErrOverWeight, zero.Errors[0].Kind)

	unbounded := New(Options{MissingLimit: LimitUnbounded}).Pack(container, items)
	assert.Empty(t, unbounded.Errors)
	require.Len(t, unbounded.Packings, 1)
	assert.Equal(t, 50.0, unbounded.Packings[0].Weight)
}

func TestPack_GreedyFallbackReplacesResult(t *testing.T) {
	// The cube fills the first container so the zero-height sheet opens a
	// second one, yet both stack into a single container.
	container := NewContainer(10, 10, 10, nil)
	items := []Item{
		NewItem("sheet", 10, 10, 0, nil),
		NewItem("cube", 10, 10, 10, nil),
	}

	result := Pack(container, items)

	require.Len(t, result.Packings, 1)
	assert.Empty(t, result.Errors)
	pk := result.Packings[0]
	assert.True(t, pk.Stacked)
	assert.Empty(t, pk.Spaces)
	require.Len(t, pk.Placements, 2)
	// Input order, not the largest-first processing order.
	assert.Equal(t, "sheet", pk.Placements[0].Label)
	assert.Equal(t, "cube", pk.Placements[1].Label)
	assert.Equal(t, geom.Coordinates{0, 0, 0}, pk.Placements[1].Position)
	assert.Empty(t, Verify(container, result))
}

func TestPack_ProcessesLargestFirst(t *testing.T) {
	container := NewContainer(10, 10, 10, nil)
	items := []Item{
		NewItem("small", 2, 2, 2, nil),
		NewItem("large", 8, 8, 8, nil),
	}

	result := Pack(container, items)

	require.Len(t, result.Packings, 1)
	assert.Equal(t, "large", result.Packings[0].Placements[0].Label)
	assert.Equal(t, "small", result.Packings[0].Placements[1].Label)
}

func TestPack_DoesNotMutateInput(t *testing.T) {
	items := []Item{
		NewItem("a", 1, 1, 1, nil),
		NewItem("b", 5, 5, 5, nil),
	}
	before := append([]Item(nil), items...)

	Pack(NewContainer(10, 10, 10, nil), items)

	assert.Equal(t, before, items)
}

func TestPack_Empty(t *testing.T) {
	result := Pack(NewContainer(10, 10, 10, nil), nil)
	assert.Empty(t, result.Packings)
	assert.Empty(t, result.Errors)
}

func TestPack_Deterministic(t *testing.T) {
	container, items := randomLoad(rand.New(rand.NewSource(42)), 40)

	first := Pack(container, items)
	second := Pack(container, items)

	assert.Equal(t, first, second)
}

func TestPack_RandomLoadsKeepInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for run := 0; run < 25; run++ {
		container, items := randomLoad(rng, 1+rng.Intn(30))
		result := Pack(container, items)

		assert.Empty(t, Verify(container, result), "run %d", run)
		// Every item is either placed or reported, exactly once.
		assert.Equal(t, len(items), result.PlacedCount()+len(result.Errors), "run %d", run)

		for _, pk := range result.Packings {
			if pk.Stacked {
				continue
			}
			used := pk.UsedVolume()
			for _, s := range pk.Spaces {
				used += s.Dimensions.Volume()
			}
			assert.InDelta(t, container.Dimensions.Volume(), used, 1e-6, "run %d: volume not conserved", run)
		}
	}
}

func TestPack_LogsTrace(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	New(Options{}).WithLogger(logger).Pack(
		NewContainer(10, 10, 10, ptr(5)),
		[]Item{NewItem("crate", 5, 5, 5, ptr(10))},
	)

	assert.Contains(t, buf.String(), "item over weight")
}

// randomLoad builds a weighted load with integer extents so positions stay exact.
func randomLoad(rng *rand.Rand, n int) (Container, []Item) {
	container := NewContainer(float64(10+rng.Intn(20)), float64(10+rng.Intn(20)), float64(10+rng.Intn(20)), ptr(200))
	items := make([]Item, n)
	for i := range items {
		items[i] = NewItem("", float64(1+rng.Intn(12)), float64(1+rng.Intn(12)), float64(1+rng.Intn(12)), ptr(float64(rng.Intn(60))))
	}
	return container, items
}
