package engine

import (
	"fmt"
	"math"

	"github.com/piwi3910/cargostack/internal/geom"
)

// verifyEpsilon absorbs float drift in position sums.
const verifyEpsilon = 1e-6

// Violation describes one broken packing invariant.
type Violation struct {
	Packing int
	Message string
}

func (v Violation) String() string {
	return fmt.Sprintf("packing %d: %s", v.Packing, v.Message)
}

// Verify checks a result against container: weight conservation, the weight
// limit, placements inside the container, no two placements overlapping and
// no free space overlapping a placement or another space. Stacked packings
// are only checked for weight.
func (p *Packer) Verify(container Container, result Result) []Violation {
	var out []Violation
	limit := p.limit(container)
	bounds := geom.Box{Size: container.Dimensions.Canonical()}

	for pi, pk := range result.Packings {
		report := func(format string, args ...any) {
			out = append(out, Violation{Packing: pi, Message: fmt.Sprintf(format, args...)})
		}

		var sum float64
		for _, pl := range pk.Placements {
			sum += weightOf(pl.Weight)
		}
		if math.Abs(sum-pk.Weight) > verifyEpsilon {
			report("weight %g does not match placement sum %g", pk.Weight, sum)
		}
		if pk.Weight > limit+verifyEpsilon {
			report("weight %g exceeds limit %g", pk.Weight, limit)
		}
		if pk.Stacked {
			continue
		}

		for i, a := range pk.Placements {
			if !bounds.Contains(a.Box(), verifyEpsilon) {
				report("placement %d at %v lies outside the container", i, a.Position)
			}
			for j := i + 1; j < len(pk.Placements); j++ {
				if a.Box().Overlaps(pk.Placements[j].Box(), verifyEpsilon) {
					report("placements %d and %d overlap", i, j)
				}
			}
		}

		for si, s := range pk.Spaces {
			for i, a := range pk.Placements {
				if s.Box().Overlaps(a.Box(), verifyEpsilon) {
					report("space %d overlaps placement %d", si, i)
				}
			}
			for sj := si + 1; sj < len(pk.Spaces); sj++ {
				if s.Box().Overlaps(pk.Spaces[sj].Box(), verifyEpsilon) {
					report("spaces %d and %d overlap", si, sj)
				}
			}
		}
	}
	return out
}

// Verify runs Packer.Verify with the default options.
func Verify(container Container, result Result) []Violation {
	return New(Options{}).Verify(container, result)
}
