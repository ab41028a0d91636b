package resolver

import (
	"craft-planner/core/pool"
	"craft-planner/core/quantity"
)

// Result is the resolution of one top-level demand.
type Result struct {
	Item      string  `json:"item"`
	Requested float64 `json:"requested"`

	// Inputs are base resources required from outside the pool, unmet demand included.
	Inputs quantity.Map `json:"inputs"`

	// Unmet is the part of Inputs that cannot be supplied at all.
	Unmet quantity.Map `json:"unmet"`

	// Outputs holds the crafted quantity of the requested item. Stock drawn for it is not
	// counted, and a base or stock-only root has none.
	Outputs quantity.Map `json:"outputs"`

	// Surplus is everything produced beyond the demand of its consumer, secondary recipe
	// outputs and batch surplus alike, including surplus a later step consumed again.
	Surplus quantity.Map `json:"surplus"`

	// Byproducts is Surplus net of what the resolution itself drew back from the pool.
	Byproducts quantity.Map `json:"byproducts"`

	// Drawn is the stock taken from the pool, per item.
	Drawn quantity.Map `json:"drawn"`

	// Intermediates is the crafted-and-consumed ledger.
	Intermediates quantity.Map `json:"intermediates"`

	// Pool is the stock left after resolution, with Outputs credited and Drawn debited.
	Pool pool.Pool `json:"pool"`

	Root *Node `json:"root"`
}

// Complete reports whether the demand was fully satisfied.
func (r *Result) Complete() bool {
	return len(r.Unmet.Pruned()) == 0
}

// outcome is what one resolve call contributes to its caller.
type outcome struct {
	inputs     quantity.Map
	unmet      quantity.Map
	byproducts quantity.Map
	ledger     quantity.Map
	drawn      quantity.Map
	pool       pool.Pool
	node       *Node
}

func newOutcome(p pool.Pool, n *Node) *outcome {
	return &outcome{
		inputs:     quantity.Map{},
		unmet:      quantity.Map{},
		byproducts: quantity.Map{},
		ledger:     quantity.Map{},
		drawn:      quantity.Map{},
		pool:       p,
		node:       n,
	}
}

// fail records q of item as demand nobody can supply.
func (o *outcome) fail(item string, q float64) {
	o.inputs.Add(item, q)
	o.unmet.Add(item, q)
}

// NetSurplus returns surplus less the part of it that was drawn back. Draws up to the
// starting stock of an item come from that stock; anything drawn beyond it was surplus.
func NetSurplus(surplus, drawn quantity.Map, start pool.Pool) quantity.Map {
	net := quantity.Map{}
	for item, q := range surplus {
		if reused := drawn.Get(item) - start.Get(item); reused > 0 {
			q -= reused
		}
		if quantity.Positive(q) {
			net.Add(item, q)
		}
	}
	return net
}
