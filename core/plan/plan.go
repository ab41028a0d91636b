package plan

import (
	"craft-planner/core/pool"
	"craft-planner/core/quantity"
	"craft-planner/core/request"
	"craft-planner/core/resolver"
)

// Build resolves requests in order against initial. Each request starts from the pool the
// previous one left, so later requests can use earlier leftovers and earlier outputs.
func Build(r *resolver.Resolver, requests []request.Item, initial pool.Pool) *Plan {
	totals := Totals{
		Inputs:        quantity.Map{},
		Unmet:         quantity.Map{},
		Outputs:       quantity.Map{},
		Surplus:       quantity.Map{},
		Drawn:         quantity.Map{},
		Intermediates: quantity.Map{},
	}
	trees := make([]*resolver.Node, 0, len(requests))

	current := initial
	for _, req := range requests {
		res := r.Resolve(req.Name, req.Qty, current)
		current = res.Pool

		totals.Inputs.Merge(res.Inputs)
		totals.Unmet.Merge(res.Unmet)
		totals.Outputs.Merge(res.Outputs)
		totals.Surplus.Merge(res.Surplus)
		totals.Drawn.Merge(res.Drawn)
		totals.Intermediates.Merge(res.Intermediates)
		trees = append(trees, res.Root)
	}
	totals.Pool = current

	totals.Inputs = totals.Inputs.Pruned()
	totals.Unmet = totals.Unmet.Pruned()
	totals.Outputs = totals.Outputs.Pruned()
	totals.Surplus = totals.Surplus.Pruned()
	totals.Drawn = totals.Drawn.Pruned()
	totals.Byproducts = resolver.NetSurplus(totals.Surplus, totals.Drawn, initial)
	totals.Intermediates = totals.Intermediates.Pruned()

	p := &Plan{
		Requests: append([]request.Item(nil), requests...),
		Totals:   totals,
		Trees:    trees,
	}
	p.Categories = Classify(totals, p.Requested(), r.Catalog().IsBase)
	p.Summary = summarize(p, r.Catalog().IsBase)
	return p
}

// Classify splits totals into finished, intermediate and byproduct quantities.
// A non-base item left in the pool counts as byproduct for whatever exceeds its finished amount.
func Classify(totals Totals, requested []string, isBase func(string) bool) Categories {
	wanted := make(map[string]struct{}, len(requested))
	for _, name := range requested {
		wanted[name] = struct{}{}
	}

	cat := Categories{
		Finished:     quantity.Map{},
		Intermediate: totals.Intermediates.Pruned(),
		Byproduct:    quantity.Map{},
	}
	for item, q := range totals.Outputs {
		if _, ok := wanted[item]; ok && quantity.Positive(q) {
			cat.Finished[item] = q
		}
	}
	for _, item := range totals.Pool.Items() {
		if isBase(item) {
			continue
		}
		excess := totals.Pool.Get(item) - cat.Finished.Get(item)
		if quantity.Positive(excess) {
			cat.Byproduct[item] = excess
		}
	}
	return cat
}

func summarize(p *Plan, isBase func(string) bool) Summary {
	s := Summary{
		Requests:     len(p.Requests),
		Complete:     len(p.Unmet) == 0,
		Missing:      p.Unmet.Keys(),
		Finished:     len(p.Categories.Finished),
		Intermediate: len(p.Categories.Intermediate),
		Byproduct:    len(p.Categories.Byproduct),
	}
	for item := range p.Inputs {
		if isBase(item) {
			s.BaseResources++
		}
	}
	return s
}
