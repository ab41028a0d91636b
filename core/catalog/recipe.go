package catalog

import (
	"fmt"
	"strings"
)

// Stack is a quantity of one item.
type Stack struct {
	Item string  `json:"item" yaml:"item"`
	Qty  float64 `json:"qty" yaml:"qty"`
}

// Recipe converts Inputs into Outputs, per batch.
type Recipe struct {
	// ID is an optional human label. Provenance refers to recipes by index, not ID.
	ID      string  `json:"id,omitempty" yaml:"id,omitempty"`
	Inputs  []Stack `json:"inputs" yaml:"inputs"`
	Outputs []Stack `json:"outputs" yaml:"outputs"`
}

// Output returns the per-batch output quantity of item, zero if the recipe does not produce it.
func (r Recipe) Output(item string) float64 {
	for _, s := range r.Outputs {
		if s.Item == item {
			return s.Qty
		}
	}
	return 0
}

// Consumes reports whether item is one of the recipe inputs.
func (r Recipe) Consumes(item string) bool {
	for _, s := range r.Inputs {
		if s.Item == item {
			return true
		}
	}
	return false
}

// String renders the recipe as "Log x1 -> Planks x4".
func (r Recipe) String() string {
	return formatStacks(r.Inputs) + " -> " + formatStacks(r.Outputs)
}

func formatStacks(stacks []Stack) string {
	if len(stacks) == 0 {
		return "nothing"
	}
	parts := make([]string, 0, len(stacks))
	for _, s := range stacks {
		parts = append(parts, fmt.Sprintf("%s x%g", s.Item, s.Qty))
	}
	return strings.Join(parts, " + ")
}

// Indexed pairs a recipe with its position in the catalog.
type Indexed struct {
	Index  int    `json:"index"`
	Recipe Recipe `json:"recipe"`
}
