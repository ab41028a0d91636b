package pool

import (
	"encoding/json"
	"fmt"

	"craft-planner/core/quantity"
)

// Pool is an immutable snapshot of available stock.
// The zero value is an empty pool ready to use.
type Pool struct {
	items quantity.Map
}

// New returns a pool holding a copy of items. Entries at or below epsilon are dropped.
func New(items map[string]float64) Pool {
	return Pool{items: quantity.Map(items).Pruned()}
}

// FromMap is like New but rejects negative quantities and empty item names.
func FromMap(items map[string]float64) (Pool, error) {
	for item, q := range items {
		if item == "" {
			return Pool{}, fmt.Errorf("pool: empty item name")
		}
		if !quantity.Finite(q) {
			return Pool{}, fmt.Errorf("pool: non-finite quantity %g for %q", q, item)
		}
		if q < -quantity.Epsilon {
			return Pool{}, fmt.Errorf("pool: negative quantity %g for %q", q, item)
		}
	}
	return New(items), nil
}

// Get returns the available quantity of item.
func (p Pool) Get(item string) float64 {
	return p.items.Get(item)
}

// Len returns the number of distinct items in stock.
func (p Pool) Len() int {
	return len(p.items)
}

// IsEmpty reports whether the pool holds nothing.
func (p Pool) IsEmpty() bool {
	return len(p.items) == 0
}

// Take draws up to q of item. It returns the derived pool and the amount actually drawn,
// which is min(available, q). When nothing can be drawn the receiver is returned as is.
func (p Pool) Take(item string, q float64) (Pool, float64) {
	avail := p.items.Get(item)
	used := min(avail, q)
	if !quantity.Positive(used) {
		return p, 0
	}
	next := p.items.Clone()
	if left := avail - used; quantity.Positive(left) {
		next[item] = left
	} else {
		delete(next, item)
	}
	return Pool{items: next}, used
}

// Add returns a derived pool with q more of item.
func (p Pool) Add(item string, q float64) Pool {
	if !quantity.Positive(q) {
		return p
	}
	next := p.items.Clone()
	next[item] += q
	return Pool{items: next}
}

// Credit returns a derived pool with every entry of items added.
func (p Pool) Credit(items quantity.Map) Pool {
	if len(items) == 0 {
		return p
	}
	next := p.items.Clone()
	next.Merge(items)
	return Pool{items: next.Pruned()}
}

// Map returns a copy of the pool contents.
func (p Pool) Map() quantity.Map {
	return p.items.Clone()
}

// Items returns the stocked item names in sorted order.
func (p Pool) Items() []string {
	return p.items.Keys()
}

// MarshalJSON encodes the pool as an object of item -> quantity.
func (p Pool) MarshalJSON() ([]byte, error) {
	if p.items == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(map[string]float64(p.items))
}

// UnmarshalJSON decodes an object of item -> quantity, rejecting negative quantities.
func (p *Pool) UnmarshalJSON(raw []byte) error {
	var m map[string]float64
	if err := json.Unmarshal(raw, &m); err != nil {
		return err
	}
	decoded, err := FromMap(m)
	if err != nil {
		return err
	}
	*p = decoded
	return nil
}
