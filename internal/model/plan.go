package model

import (
	"github.com/charmbracelet/log"

	"github.com/piwi3910/cargostack/internal/engine"
)

// Plan packs the manifest items into its container. Violations are only
// collected when Settings.Verify is set.
func (m Manifest) Plan(logger *log.Logger) (PackResult, []engine.Violation) {
	p := engine.New(m.Settings.Options()).WithLogger(logger)
	c := m.Container.ToEngine()
	r := p.Pack(c, ExpandItems(m.Items))

	var violations []engine.Violation
	if m.Settings.Verify {
		violations = p.Verify(c, r)
	}
	return FromEngine(m.Container, r), violations
}

// ComparisonRow summarises one candidate container.
type ComparisonRow struct {
	Name        string     `json:"name"`
	Container   [3]float64 `json:"container"`
	Packings    int        `json:"packings"`
	Placed      int        `json:"placed"`
	Errors      int        `json:"errors"`
	Utilization float64    `json:"utilization"`
}

// Compare packs the manifest items into each candidate and returns the rows
// best first. With no candidates the manifest's own Candidates are used, and
// failing those a set derived from its container.
func (m Manifest) Compare(candidates []Container, logger *log.Logger) []ComparisonRow {
	if len(candidates) == 0 {
		candidates = m.Candidates
	}
	items := ExpandItems(m.Items)

	var scenarios []engine.ComparisonScenario
	if len(candidates) == 0 {
		scenarios = engine.BuildDefaultScenarios(m.Container.ToEngine(), items)
	} else {
		for _, c := range candidates {
			scenarios = append(scenarios, engine.ComparisonScenario{Name: c.DisplayName(), Container: c.ToEngine()})
		}
	}

	p := engine.New(m.Settings.Options()).WithLogger(logger)
	ranked := engine.RankComparisons(p.CompareContainers(scenarios, items))

	rows := make([]ComparisonRow, 0, len(ranked))
	for _, r := range ranked {
		rows = append(rows, ComparisonRow{
			Name:        r.Scenario.Name,
			Container:   r.Scenario.Container.Dimensions.Raw,
			Packings:    r.PackingsUsed,
			Placed:      r.Placed,
			Errors:      r.ErrorCount,
			Utilization: r.UtilizationPercent,
		})
	}
	return rows
}

// AsContainers converts every preset into a container.
func (inv Inventory) AsContainers() []Container {
	out := make([]Container, 0, len(inv.Containers))
	for _, p := range inv.Containers {
		out = append(out, p.ToContainer())
	}
	return out
}
