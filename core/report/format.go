package report

import (
	"math"
	"strconv"
	"strings"

	"craft-planner/core/quantity"
)

// FormatQuantity prints whole numbers without decimals and everything else with at
// most four, trailing zeros trimmed.
func FormatQuantity(q float64) string {
	if math.Abs(q) < quantity.Epsilon {
		return "0"
	}
	if r := math.Round(q); math.Abs(q-r) < quantity.Epsilon {
		return strconv.FormatFloat(r, 'f', 0, 64)
	}
	s := strconv.FormatFloat(q, 'f', 4, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
