package plan

import (
	"craft-planner/core/pool"
	"craft-planner/core/quantity"
	"craft-planner/core/request"
	"craft-planner/core/resolver"
)

// Totals are the maps summed across every request of a plan.
type Totals struct {
	// Inputs are the base resources to gather, unmet demand included.
	Inputs quantity.Map `json:"inputs"`

	// Unmet lists demand that no recipe or stock could satisfy.
	Unmet quantity.Map `json:"unmet"`

	// Outputs are the crafted quantities of the requested items. Stock drawn to satisfy a
	// request is not an output.
	Outputs quantity.Map `json:"outputs"`

	// Surplus is every surplus produced along the way, including surplus that a later
	// step consumed again.
	Surplus quantity.Map `json:"surplus"`

	// Byproducts is Surplus net of what any request drew back from the pool.
	Byproducts quantity.Map `json:"byproducts"`

	// Drawn is the stock taken from the pool across all requests.
	Drawn quantity.Map `json:"drawn"`

	// Intermediates is the crafted-and-consumed ledger.
	Intermediates quantity.Map `json:"intermediates"`

	// Pool is the inventory after the plan, crafted outputs included and stock draws removed.
	Pool pool.Pool `json:"pool"`
}

// Categories is the three-way split of a plan's products.
type Categories struct {
	Finished     quantity.Map `json:"finished"`
	Intermediate quantity.Map `json:"intermediate"`
	Byproduct    quantity.Map `json:"byproduct"`
}

// Summary gives counts for quick display.
type Summary struct {
	Requests int `json:"requests"`

	// Complete is false when any demand was unmet.
	Complete bool `json:"complete"`

	BaseResources int      `json:"base_resources"`
	Missing       []string `json:"missing"`
	Finished      int      `json:"finished"`
	Intermediate  int      `json:"intermediate"`
	Byproduct     int      `json:"byproduct"`
}

// Plan is the full outcome of one calculation.
type Plan struct {
	Requests []request.Item `json:"requests"`
	Totals
	Trees      []*resolver.Node `json:"trees"`
	Categories Categories       `json:"categories"`
	Summary    Summary          `json:"summary"`
}

// Requested returns the requested item names in order.
func (p *Plan) Requested() []string {
	names := make([]string, len(p.Requests))
	for i, r := range p.Requests {
		names[i] = r.Name
	}
	return names
}
