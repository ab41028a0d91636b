package resolver

import "craft-planner/core/catalog"

// Node is one resolution decision for one item at one depth.
type Node struct {
	Item   string  `json:"item"`
	Needed float64 `json:"needed"`

	// StockUsed is the part of Needed drawn from the pool.
	StockUsed float64 `json:"stock_used"`

	// Produced is the part of Needed that was satisfied, from stock or by the chosen source.
	Produced float64 `json:"produced"`

	// BatchOutput is what the chosen recipe actually made. Batch rounding can push it
	// above the remaining need.
	BatchOutput float64 `json:"batch_output,omitempty"`
	Batches     float64 `json:"batches,omitempty"`

	Source Source          `json:"source"`
	Recipe *catalog.Recipe `json:"recipe,omitempty"`
	Depth  int             `json:"depth"`

	Children []*Node `json:"children,omitempty"`
}

// Walk calls fn for n and every descendant, depth first, stopping early when fn returns false.
func (n *Node) Walk(fn func(*Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, c := range n.Children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}

// Find returns the first node in the tree with the given source kind, or nil.
func (n *Node) Find(kind Kind) *Node {
	var found *Node
	n.Walk(func(c *Node) bool {
		if c.Source.Kind == kind {
			found = c
			return false
		}
		return true
	})
	return found
}
