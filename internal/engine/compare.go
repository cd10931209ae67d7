package engine

import (
	"fmt"
	"sort"

	"github.com/piwi3910/cargostack/internal/geom"
)

// ComparisonScenario names one container shape to try.
type ComparisonScenario struct {
	Name      string
	Container Container
}

// ComparisonResult holds the packing result and computed statistics
// for a single scenario.
type ComparisonResult struct {
	Scenario           ComparisonScenario
	Result             Result
	PackingsUsed       int
	Placed             int
	ErrorCount         int
	UtilizationPercent float64
}

// CompareContainers packs the same items into each scenario's container and
// returns the results in scenario order. This enables side-by-side comparison
// of container sizes (e.g. pallet vs. 20ft vs. 40ft).
func (p *Packer) CompareContainers(scenarios []ComparisonScenario, items []Item) []ComparisonResult {
	results := make([]ComparisonResult, 0, len(scenarios))

	for _, scenario := range scenarios {
		result := p.Pack(scenario.Container, items)
		results = append(results, ComparisonResult{
			Scenario:           scenario,
			Result:             result,
			PackingsUsed:       len(result.Packings),
			Placed:             result.PlacedCount(),
			ErrorCount:         len(result.Errors),
			UtilizationPercent: result.Utilization(scenario.Container),
		})
	}

	return results
}

// RankComparisons orders results best first: fewest errors, then fewest
// packings, then highest utilization. The input slice is not modified.
func RankComparisons(results []ComparisonResult) []ComparisonResult {
	ranked := make([]ComparisonResult, len(results))
	copy(ranked, results)
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.ErrorCount != b.ErrorCount {
			return a.ErrorCount < b.ErrorCount
		}
		if a.PackingsUsed != b.PackingsUsed {
			return a.PackingsUsed < b.PackingsUsed
		}
		return a.UtilizationPercent > b.UtilizationPercent
	})
	return ranked
}

// BuildDefaultScenarios derives what-if alternatives from a base container:
// the base itself, doubled along its longest side, and the smallest container
// found for the items.
func BuildDefaultScenarios(base Container, items []Item) []ComparisonScenario {
	d := base.Dimensions
	scenarios := []ComparisonScenario{
		{Name: "Current Container", Container: base},
		{
			Name:      fmt.Sprintf("Double Length (%.0f)", d.Length*2),
			Container: Container{Dimensions: geom.New(d.Length*2, d.Width, d.Height), WeightLimit: base.WeightLimit},
		},
	}

	if len(items) > 0 {
		smallest := FindSmallestContainer(items)
		scenarios = append(scenarios, ComparisonScenario{
			Name:      fmt.Sprintf("Smallest Fit (%.1f x %.1f x %.1f)", smallest.Length, smallest.Width, smallest.Height),
			Container: Container{Dimensions: smallest, WeightLimit: base.WeightLimit},
		})
	}

	return scenarios
}
