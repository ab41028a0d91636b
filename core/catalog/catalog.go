package catalog

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"

	"craft-planner/core/quantity"
)

// Catalog is a validated, indexed and immutable recipe table.
type Catalog struct {
	recipes   []Recipe
	items     []string
	known     map[string]struct{}
	base      map[string]struct{}
	baseList  []string
	producing map[string][]Indexed
	digest    string
}

// New validates recipes and derives the item sets and the output index.
// The slice is copied; later changes by the caller do not affect the catalog.
func New(recipes []Recipe) (*Catalog, error) {
	c := &Catalog{
		recipes:   make([]Recipe, 0, len(recipes)),
		known:     make(map[string]struct{}),
		base:      make(map[string]struct{}),
		producing: make(map[string][]Indexed),
	}

	outputs := make(map[string]struct{})
	for i, r := range recipes {
		if err := validateRecipe(r); err != nil {
			return nil, fmt.Errorf("%w: recipe %d: %v", ErrInvalidCatalog, i, err)
		}
		r = cloneRecipe(r)
		c.recipes = append(c.recipes, r)

		for _, s := range r.Inputs {
			c.known[s.Item] = struct{}{}
		}
		for _, s := range r.Outputs {
			c.known[s.Item] = struct{}{}
			outputs[s.Item] = struct{}{}
			c.producing[s.Item] = append(c.producing[s.Item], Indexed{Index: i, Recipe: r})
		}
	}

	c.items = make([]string, 0, len(c.known))
	for item := range c.known {
		c.items = append(c.items, item)
		if _, ok := outputs[item]; !ok {
			c.base[item] = struct{}{}
			c.baseList = append(c.baseList, item)
		}
	}
	sort.Strings(c.items)
	sort.Strings(c.baseList)

	raw, err := json.Marshal(Document{Recipes: c.recipes})
	if err != nil {
		return nil, fmt.Errorf("failed to encode catalog digest: %w", err)
	}
	sum := sha256.Sum256(raw)
	c.digest = hex.EncodeToString(sum[:])

	return c, nil
}

// MustNew is like New but panics on error. It is meant for compiled-in catalogs.
func MustNew(recipes []Recipe) *Catalog {
	c, err := New(recipes)
	if err != nil {
		panic(err)
	}
	return c
}

func validateRecipe(r Recipe) error {
	if len(r.Outputs) == 0 {
		return fmt.Errorf("no outputs")
	}
	if err := validateStacks("input", r.Inputs); err != nil {
		return err
	}
	if err := validateStacks("output", r.Outputs); err != nil {
		return err
	}
	for _, s := range r.Outputs {
		if !quantity.Positive(s.Qty) {
			return fmt.Errorf("output %q has non-positive quantity %g", s.Item, s.Qty)
		}
	}
	return nil
}

func validateStacks(side string, stacks []Stack) error {
	seen := make(map[string]struct{}, len(stacks))
	for _, s := range stacks {
		if s.Item == "" {
			return fmt.Errorf("%s with empty item name", side)
		}
		if !quantity.Finite(s.Qty) {
			return fmt.Errorf("%s %q has non-finite quantity %g", side, s.Item, s.Qty)
		}
		if s.Qty < 0 {
			return fmt.Errorf("%s %q has negative quantity %g", side, s.Item, s.Qty)
		}
		if _, dup := seen[s.Item]; dup {
			return fmt.Errorf("%s %q listed twice", side, s.Item)
		}
		seen[s.Item] = struct{}{}
	}
	return nil
}

func cloneRecipe(r Recipe) Recipe {
	return Recipe{
		ID:      r.ID,
		Inputs:  append([]Stack(nil), r.Inputs...),
		Outputs: append([]Stack(nil), r.Outputs...),
	}
}

// Len returns the number of recipes.
func (c *Catalog) Len() int {
	return len(c.recipes)
}

// Recipe returns the recipe at index i.
func (c *Catalog) Recipe(i int) Recipe {
	return c.recipes[i]
}

// Recipes returns a copy of all recipes in catalog order.
func (c *Catalog) Recipes() []Recipe {
	out := make([]Recipe, len(c.recipes))
	copy(out, c.recipes)
	return out
}

// AllItems returns every item named by any recipe, sorted.
func (c *Catalog) AllItems() []string {
	return append([]string(nil), c.items...)
}

// BaseResources returns the items that no recipe produces, sorted.
func (c *Catalog) BaseResources() []string {
	return append([]string(nil), c.baseList...)
}

// Has reports whether item appears anywhere in the catalog.
func (c *Catalog) Has(item string) bool {
	_, ok := c.known[item]
	return ok
}

// IsBase reports whether item is a known item that no recipe produces.
func (c *Catalog) IsBase(item string) bool {
	_, ok := c.base[item]
	return ok
}

// RecipesProducing returns the recipes whose outputs contain item, in catalog order.
func (c *Catalog) RecipesProducing(item string) []Indexed {
	return c.producing[item]
}

// Digest is the sha256 of the catalog's canonical JSON encoding.
func (c *Catalog) Digest() string {
	return c.digest
}

// Default returns the compiled-in sample catalog.
func Default() *Catalog {
	return MustNew([]Recipe{
		{
			ID:      "planks",
			Inputs:  []Stack{{Item: "Log", Qty: 1}},
			Outputs: []Stack{{Item: "Planks", Qty: 4}},
		},
		{
			ID:      "sticks",
			Inputs:  []Stack{{Item: "Planks", Qty: 2}},
			Outputs: []Stack{{Item: "Stick", Qty: 4}},
		},
		{
			ID:      "wooden_pickaxe",
			Inputs:  []Stack{{Item: "Planks", Qty: 3}, {Item: "Stick", Qty: 2}},
			Outputs: []Stack{{Item: "Wooden Pickaxe", Qty: 1}},
		},
	})
}
