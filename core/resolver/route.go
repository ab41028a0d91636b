package resolver

import (
	"craft-planner/core/catalog"
	"craft-planner/core/pool"
	"craft-planner/core/quantity"
)

// score orders routes: less material first, then fewer crafted sub-inputs.
type score struct {
	material  float64
	subRoutes int
}

func (s score) less(o score) bool {
	if !quantity.Equal(s.material, o.material) {
		return s.material < o.material
	}
	return s.subRoutes < o.subRoutes
}

// route is one evaluated recipe for a demand.
type route struct {
	index   int
	batches float64
	output  float64

	viable bool
	failed *Node

	inputs     quantity.Map
	unmet      quantity.Map
	byproducts quantity.Map
	ledger     quantity.Map
	drawn      quantity.Map
	pool       pool.Pool
	children   []*Node
	score      score
}

// evalRoute expands one recipe for need units of item. Inputs are resolved in recipe
// order, each one against the pool the previous input left behind; start is never
// shared with another route.
func (r *Resolver) evalRoute(item string, need float64, candidate catalog.Indexed, start pool.Pool, on *chain, depth int) *route {
	recipe := candidate.Recipe
	batches := quantity.Batches(need, recipe.Output(item))
	rt := &route{
		index:      candidate.Index,
		batches:    batches,
		output:     recipe.Output(item) * batches,
		inputs:     quantity.Map{},
		unmet:      quantity.Map{},
		byproducts: quantity.Map{},
		ledger:     quantity.Map{},
		drawn:      quantity.Map{},
		pool:       start,
	}

	// A crafted input only sinks the route when none of it could be supplied.
	// Partial shortfalls are carried as unmet demand.
	for _, in := range recipe.Inputs {
		required := in.Qty * batches
		sub := r.resolve(in.Item, required, rt.pool, on, depth+1)
		if unmet := sub.unmet.Get(in.Item); !r.catalog.IsBase(in.Item) && quantity.Positive(unmet) && unmet >= required-quantity.Epsilon {
			rt.failed = sub.node
			return rt
		}
		rt.inputs.Merge(sub.inputs)
		rt.unmet.Merge(sub.unmet)
		rt.byproducts.Merge(sub.byproducts)
		rt.ledger.Merge(sub.ledger)
		rt.drawn.Merge(sub.drawn)
		rt.pool = sub.pool
		rt.children = append(rt.children, sub.node)
		if sub.node.Source.IsRecipe() {
			rt.score.subRoutes++
		}
	}

	own := quantity.Map{}
	if surplus := rt.output - need; quantity.Positive(surplus) {
		own.Add(item, surplus)
	}
	for _, o := range recipe.Outputs {
		if o.Item == item {
			continue
		}
		if q := o.Qty * batches; quantity.Positive(q) {
			own.Add(o.Item, q)
		}
	}
	rt.byproducts.Merge(own)
	rt.pool = rt.pool.Credit(own)

	rt.viable = true
	rt.score.material = rt.inputs.Sum()
	return rt
}
