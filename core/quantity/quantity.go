package quantity

import (
	"math"
	"sort"
)

// Epsilon is the tolerance below which a quantity counts as zero.
const Epsilon = 1e-9

// IsZero reports whether q is zero within Epsilon (negative values included).
func IsZero(q float64) bool {
	return q <= Epsilon
}

// Positive reports whether q is strictly greater than Epsilon.
func Positive(q float64) bool {
	return q > Epsilon
}

// Equal reports whether a and b differ by no more than Epsilon.
func Equal(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

// Batches returns the number of whole batches of size perBatch needed to cover need.
// The count stays a float64 so that very large demands cannot overflow an int.
// It returns 0 when need is zero and panics on a non-positive or non-finite batch size,
// which a validated catalog never contains.
func Batches(need, perBatch float64) float64 {
	if !Positive(perBatch) || math.IsInf(perBatch, 0) {
		panic("quantity: invalid batch size")
	}
	if IsZero(need) {
		return 0
	}
	return math.Ceil(need/perBatch - Epsilon)
}

// Finite reports whether q is neither NaN nor infinite.
func Finite(q float64) bool {
	return !math.IsNaN(q) && !math.IsInf(q, 0)
}

// Map maps item names to quantities.
type Map map[string]float64

// Get returns the quantity for item, zero when absent.
func (m Map) Get(item string) float64 {
	return m[item]
}

// Add increases item by q. Adding to a nil map panics, as with any Go map.
func (m Map) Add(item string, q float64) {
	m[item] += q
}

// Merge adds every entry of other into m.
func (m Map) Merge(other Map) {
	for item, q := range other {
		m[item] += q
	}
}

// Clone returns an independent copy of m. A nil map clones to an empty map.
func (m Map) Clone() Map {
	out := make(Map, len(m))
	for item, q := range m {
		out[item] = q
	}
	return out
}

// Sum returns the total of all quantities.
func (m Map) Sum() float64 {
	var total float64
	for _, q := range m {
		total += q
	}
	return total
}

// Pruned returns a copy of m without entries at or below Epsilon.
func (m Map) Pruned() Map {
	out := make(Map, len(m))
	for item, q := range m {
		if Positive(q) {
			out[item] = q
		}
	}
	return out
}

// Keys returns the item names of m in sorted order.
func (m Map) Keys() []string {
	keys := make([]string, 0, len(m))
	for item := range m {
		keys = append(keys, item)
	}
	sort.Strings(keys)
	return keys
}
