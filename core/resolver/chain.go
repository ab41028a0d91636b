package resolver

// chain is the list of items being resolved on the current call stack.
// Each frame points at its parent, so sibling branches never share a tail they can modify.
type chain struct {
	item   string
	parent *chain
}

func (c *chain) push(item string) *chain {
	return &chain{item: item, parent: c}
}

func (c *chain) contains(item string) bool {
	for f := c; f != nil; f = f.parent {
		if f.item == item {
			return true
		}
	}
	return false
}
