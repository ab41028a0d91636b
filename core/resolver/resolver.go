package resolver

import (
	"fmt"

	"craft-planner/core/catalog"
	"craft-planner/core/pool"
	"craft-planner/core/quantity"

	"go.uber.org/zap"
)

// DefaultMaxDepth bounds recursion for catalogs with very long recipe chains.
const DefaultMaxDepth = 64

// Resolver resolves demands against one catalog. It holds no per-call state and is
// safe for concurrent use.
type Resolver struct {
	catalog  *catalog.Catalog
	log      *zap.Logger
	maxDepth int
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger used for debug-level route decisions.
func WithLogger(l *zap.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.log = l
		}
	}
}

// WithMaxDepth sets the recursion limit. Demands deeper than n resolve to no_viable_route.
func WithMaxDepth(n int) Option {
	return func(r *Resolver) {
		if n > 0 {
			r.maxDepth = n
		}
	}
}

// New creates a resolver for c.
func New(c *catalog.Catalog, opts ...Option) *Resolver {
	r := &Resolver{
		catalog:  c,
		log:      zap.NewNop(),
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Catalog returns the catalog the resolver works on.
func (r *Resolver) Catalog() *catalog.Catalog {
	return r.catalog
}

// Resolve satisfies qty of item against p. p itself is never modified. The crafted part
// of the demand is credited to the returned pool so that later requests can draw on it.
func (r *Resolver) Resolve(item string, qty float64, p pool.Pool) *Result {
	out := r.resolve(item, qty, p, nil, 0)

	outputs := quantity.Map{}
	final := out.pool
	if root := out.node; root.Source.IsRecipe() {
		if crafted := root.Produced - root.StockUsed; quantity.Positive(crafted) {
			outputs.Add(item, crafted)
			final = final.Credit(outputs)
		}
	}

	return &Result{
		Item:          item,
		Requested:     qty,
		Inputs:        out.inputs.Pruned(),
		Unmet:         out.unmet.Pruned(),
		Outputs:       outputs,
		Surplus:       out.byproducts.Pruned(),
		Byproducts:    NetSurplus(out.byproducts, out.drawn, p),
		Drawn:         out.drawn.Pruned(),
		Intermediates: out.ledger.Pruned(),
		Pool:          final,
		Root:          out.node,
	}
}

func (r *Resolver) resolve(item string, qty float64, p pool.Pool, on *chain, depth int) *outcome {
	node := &Node{Item: item, Needed: qty, Depth: depth}
	out := newOutcome(p, node)

	if quantity.IsZero(qty) {
		node.Source = ZeroNeeded
		return out
	}
	if on.contains(item) {
		node.Source = UnresolvedLoop
		out.fail(item, qty)
		return out
	}

	remaining := qty
	if next, used := p.Take(item, qty); used > 0 {
		p = next
		remaining -= used
		out.drawn.Add(item, used)
		node.StockUsed = used
		node.Produced = used
		node.Children = append(node.Children, &Node{
			Item:      item,
			Needed:    used,
			StockUsed: used,
			Produced:  used,
			Source:    Stock,
			Depth:     depth + 1,
		})
	}
	out.pool = p

	if quantity.IsZero(remaining) {
		node.Source = StockOnly
		return out
	}
	if depth >= r.maxDepth {
		r.log.Debug("max depth reached", zap.String("item", item), zap.Int("depth", depth))
		node.Source = NoViableRoute
		out.fail(item, remaining)
		return out
	}

	routes := r.catalog.RecipesProducing(item)
	if len(routes) == 0 {
		if r.catalog.IsBase(item) {
			node.Source = Base
			node.Produced += remaining
			out.inputs.Add(item, remaining)
		} else {
			node.Source = MissingDefinition
			out.fail(item, remaining)
		}
		return out
	}

	next := on.push(item)
	var best *route
	var rejected []*Node
	for _, candidate := range routes {
		rt := r.evalRoute(item, remaining, candidate, p, next, depth)
		if !rt.viable {
			r.log.Debug("route rejected",
				zap.String("item", item),
				zap.Int("recipe", rt.index),
				zap.String("failed_input", rt.failed.Item),
				zap.Stringer("failed_source", rt.failed.Source),
			)
			rejected = append(rejected, rt.failed)
			continue
		}
		if best == nil || rt.score.less(best.score) {
			best = rt
		}
	}

	if best == nil {
		node.Source = NoViableRoute
		node.Children = append(node.Children, rejected...)
		out.fail(item, remaining)
		return out
	}

	if r.catalog.IsBase(item) {
		panic(fmt.Sprintf("resolver: base item %q resolved through recipe %d", item, best.index))
	}

	recipe := r.catalog.Recipe(best.index)
	node.Source = FromRecipe(best.index)
	node.Recipe = &recipe
	node.Batches = best.batches
	node.BatchOutput = best.output
	node.Produced += remaining
	node.Children = append(node.Children, best.children...)

	out.inputs.Merge(best.inputs)
	out.unmet.Merge(best.unmet)
	out.byproducts.Merge(best.byproducts)
	out.ledger.Merge(best.ledger)
	out.drawn.Merge(best.drawn)
	out.pool = best.pool

	if depth > 0 && quantity.Positive(node.Produced) {
		out.ledger.Add(item, node.Produced)
	}

	r.log.Debug("route selected",
		zap.String("item", item),
		zap.Int("recipe", best.index),
		zap.Float64("batches", best.batches),
		zap.Float64("material", best.score.material),
		zap.Int("sub_routes", best.score.subRoutes),
	)
	return out
}
