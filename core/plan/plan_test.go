package plan

import (
	"testing"

	"craft-planner/core/catalog"
	"craft-planner/core/pool"
	"craft-planner/core/quantity"
	"craft-planner/core/request"
	"craft-planner/core/resolver"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_WoodenPickaxe(t *testing.T) {
	r := resolver.New(catalog.Default())

	p := Build(r, []request.Item{{Name: "Wooden Pickaxe", Qty: 1}}, pool.Pool{})

	assert.Equal(t, quantity.Map{"Log": 2}, p.Inputs)
	assert.Empty(t, p.Unmet)
	assert.Equal(t, quantity.Map{"Wooden Pickaxe": 1}, p.Categories.Finished)
	assert.Equal(t, quantity.Map{"Planks": 5, "Stick": 2}, p.Categories.Intermediate)
	assert.Equal(t, quantity.Map{"Planks": 3, "Stick": 2}, p.Categories.Byproduct)
	assert.Equal(t, quantity.Map{"Planks": 3, "Stick": 2, "Wooden Pickaxe": 1}, p.Pool.Map())
	assert.Equal(t, quantity.Map{"Planks": 3, "Stick": 2}, p.Byproducts)
	assert.Equal(t, quantity.Map{"Planks": 4, "Stick": 2}, p.Surplus)
	require.Len(t, p.Trees, 1)

	assert.True(t, p.Summary.Complete)
	assert.Equal(t, 1, p.Summary.Requests)
	assert.Equal(t, 1, p.Summary.BaseResources)
	assert.Empty(t, p.Summary.Missing)
}

func TestBuild_ThreadsPoolBetweenRequests(t *testing.T) {
	r := resolver.New(catalog.Default())

	// The first request leaves the crafted plank and 3 surplus ones behind, which covers
	// the second one entirely.
	p := Build(r, []request.Item{{Name: "Planks", Qty: 1}, {Name: "Planks", Qty: 3}}, pool.Pool{})

	require.Len(t, p.Trees, 2)
	assert.Equal(t, resolver.FromRecipe(0), p.Trees[0].Source)
	assert.Equal(t, resolver.StockOnly, p.Trees[1].Source)
	assert.Equal(t, quantity.Map{"Log": 1}, p.Inputs)
	assert.Equal(t, quantity.Map{"Planks": 1}, p.Outputs)
	assert.Equal(t, quantity.Map{"Planks": 1}, p.Pool.Map())
	assert.Equal(t, quantity.Map{"Planks": 1}, p.Categories.Finished)
	assert.Empty(t, p.Categories.Byproduct)
	assert.Empty(t, p.Byproducts)
}

func TestBuild_LaterRequestsDrawEarlierOutputs(t *testing.T) {
	r := resolver.New(catalog.Default())

	p := Build(r, []request.Item{{Name: "Planks", Qty: 4}, {Name: "Stick", Qty: 4}}, pool.Pool{})

	assert.Equal(t, quantity.Map{"Log": 1}, p.Inputs)
	assert.Equal(t, quantity.Map{"Planks": 4, "Stick": 4}, p.Outputs)
	assert.Equal(t, quantity.Map{"Planks": 2, "Stick": 4}, p.Pool.Map())
	assert.Equal(t, quantity.Map{"Planks": 4, "Stick": 4}, p.Categories.Finished)
	assert.Empty(t, p.Categories.Byproduct)
	assert.Empty(t, p.Categories.Intermediate)
}

func TestBuild_DebitsStockDraws(t *testing.T) {
	r := resolver.New(catalog.Default())
	initial := pool.New(map[string]float64{"Planks": 5})

	p := Build(r, []request.Item{{Name: "Planks", Qty: 2}}, initial)

	assert.Equal(t, resolver.StockOnly, p.Trees[0].Source)
	assert.Empty(t, p.Inputs)
	assert.Empty(t, p.Outputs)
	assert.Equal(t, quantity.Map{"Planks": 2}, p.Drawn)
	assert.Equal(t, quantity.Map{"Planks": 3}, p.Pool.Map())
	assert.Empty(t, p.Categories.Finished)
	assert.Equal(t, quantity.Map{"Planks": 3}, p.Categories.Byproduct)
}

func TestBuild_UsesInitialStock(t *testing.T) {
	r := resolver.New(catalog.Default())
	initial := pool.New(map[string]float64{"Log": 5, "Stick": 2})

	p := Build(r, []request.Item{{Name: "Wooden Pickaxe", Qty: 1}}, initial)

	assert.Empty(t, p.Inputs)
	assert.Equal(t, quantity.Map{"Log": 4, "Planks": 1, "Wooden Pickaxe": 1}, p.Pool.Map())
	assert.Equal(t, quantity.Map{"Planks": 1}, p.Categories.Byproduct)
	assert.Equal(t, 5.0, initial.Get("Log"))
}

func TestBuild_ReportsUnmet(t *testing.T) {
	c, err := catalog.New([]catalog.Recipe{
		{Inputs: []catalog.Stack{{Item: "A", Qty: 1}}, Outputs: []catalog.Stack{{Item: "A", Qty: 1}}},
	})
	require.NoError(t, err)

	p := Build(resolver.New(c), []request.Item{{Name: "A", Qty: 2}, {Name: "Ghost", Qty: 1}}, pool.Pool{})

	assert.Equal(t, quantity.Map{"A": 2, "Ghost": 1}, p.Unmet)
	assert.False(t, p.Summary.Complete)
	assert.Equal(t, []string{"A", "Ghost"}, p.Summary.Missing)
	assert.Empty(t, p.Categories.Finished)
	assert.Equal(t, 0, p.Summary.BaseResources)
}

func TestClassify(t *testing.T) {
	isBase := func(item string) bool { return item == "Log" }
	totals := Totals{
		Outputs:       quantity.Map{"Door": 2, "Plank": 1e-12},
		Intermediates: quantity.Map{"Plank": 6, "Nail": 0},
		Pool:          pool.New(map[string]float64{"Door": 5, "Log": 3, "Sawdust": 2, "Plank": 1}),
	}

	cat := Classify(totals, []string{"Door", "Plank"}, isBase)

	assert.Equal(t, quantity.Map{"Door": 2}, cat.Finished)
	assert.Equal(t, quantity.Map{"Plank": 6}, cat.Intermediate)
	assert.Equal(t, quantity.Map{"Door": 3, "Sawdust": 2, "Plank": 1}, cat.Byproduct)
}
