package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareContainers_KeepsScenarioOrder(t *testing.T) {
	items := []Item{
		NewItem("", 10, 10, 4, nil),
		NewItem("", 10, 10, 4, nil),
		NewItem("", 10, 10, 4, nil),
	}
	scenarios := []ComparisonScenario{
		{Name: "cube", Container: NewContainer(10, 10, 10, nil)},
		{Name: "tall", Container: NewContainer(10, 10, 20, nil)},
		{Name: "tiny", Container: NewContainer(2, 2, 2, nil)},
	}

	results := New(Options{}).CompareContainers(scenarios, items)

	require.Len(t, results, 3)
	assert.Equal(t, "cube", results[0].Scenario.Name)
	assert.Equal(t, 2, results[0].PackingsUsed)
	assert.Equal(t, 3, results[0].Placed)

	assert.Equal(t, 1, results[1].PackingsUsed)
	assert.InDelta(t, 60.0, results[1].UtilizationPercent, 1e-9)

	assert.Equal(t, 3, results[2].ErrorCount)
	assert.Zero(t, results[2].UtilizationPercent)
}

func TestRankComparisons(t *testing.T) {
	results := []ComparisonResult{
		{Scenario: ComparisonScenario{Name: "errors"}, ErrorCount: 1, PackingsUsed: 1, UtilizationPercent: 90},
		{Scenario: ComparisonScenario{Name: "two"}, PackingsUsed: 2, UtilizationPercent: 80},
		{Scenario: ComparisonScenario{Name: "one-loose"}, PackingsUsed: 1, UtilizationPercent: 40},
		{Scenario: ComparisonScenario{Name: "one-tight"}, PackingsUsed: 1, UtilizationPercent: 70},
	}

	ranked := RankComparisons(results)

	names := make([]string, len(ranked))
	for i, r := range ranked {
		names[i] = r.Scenario.Name
	}
	assert.Equal(t, []string{"one-tight", "one-loose", "two", "errors"}, names)
	assert.Equal(t, "errors", results[0].Scenario.Name, "input is left untouched")
}

func TestBuildDefaultScenarios(t *testing.T) {
	base := NewContainer(10, 8, 6, ptr(50))
	items := []Item{NewItem("", 5, 5, 5, nil), NewItem("", 5, 5, 5, nil)}

	scenarios := BuildDefaultScenarios(base, items)

	require.Len(t, scenarios, 3)
	assert.Equal(t, "Current Container", scenarios[0].Name)
	assert.Equal(t, "Double Length (20)", scenarios[1].Name)
	assert.Equal(t, 20.0, scenarios[1].Container.Dimensions.Length)
	assert.Equal(t, 8.0, scenarios[1].Container.Dimensions.Width)
	assert.Equal(t, base.WeightLimit, scenarios[2].Container.WeightLimit)
	assert.Equal(t, "Smallest Fit (10.0 x 5.0 x 5.0)", scenarios[2].Name)
}

func TestBuildDefaultScenarios_NoItems(t *testing.T) {
	scenarios := BuildDefaultScenarios(NewContainer(10, 8, 6, nil), nil)
	assert.Len(t, scenarios, 2)
}
