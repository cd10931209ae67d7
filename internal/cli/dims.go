package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/piwi3910/cargostack/internal/geom"
)

// parseDims reads "LxWxH" (or comma separated) into a triple of finite,
// non-negative extents.
func parseDims(s string) ([3]float64, error) {
	var dims [3]float64
	parts := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return r == 'x' || r == ',' || r == '*'
	})
	if len(parts) != 3 {
		return dims, fmt.Errorf("invalid dimensions %q: want LxWxH", s)
	}
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil || v < 0 || math.IsInf(v, 0) || math.IsNaN(v) {
			return dims, fmt.Errorf("invalid dimensions %q: %q is not a non-negative number", s, p)
		}
		dims[i] = v
	}
	return dims, nil
}

func formatDims(c geom.Coordinates) string {
	return fmt.Sprintf("%g x %g x %g", c[0], c[1], c[2])
}
