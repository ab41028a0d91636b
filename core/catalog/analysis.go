package catalog

// Analysis summarises structural problems of a catalog that resolution would only surface
// as failure-tagged provenance nodes.
type Analysis struct {
	Items     int `json:"items"`
	Base      int `json:"base"`
	Craftable int `json:"craftable"`
	Recipes   int `json:"recipes"`

	// Unproducible lists craftable items that cannot be made from base resources alone,
	// because every route loops back on itself or needs another unproducible item.
	Unproducible []string `json:"unproducible"`

	// SelfReferencing lists recipe indexes that consume one of their own outputs.
	SelfReferencing []int `json:"self_referencing"`

	// Unused lists base resources no recipe consumes. They can only be requested directly.
	Unused []string `json:"unused"`
}

// Healthy reports whether every craftable item can be produced from an empty inventory.
func (a Analysis) Healthy() bool {
	return len(a.Unproducible) == 0
}

// Analyze computes the reachability of every craftable item from base resources.
func Analyze(c *Catalog) Analysis {
	a := Analysis{
		Items:           len(c.items),
		Base:            len(c.baseList),
		Craftable:       len(c.items) - len(c.baseList),
		Recipes:         len(c.recipes),
		Unproducible:    []string{},
		SelfReferencing: []int{},
		Unused:          []string{},
	}

	producible := make(map[string]bool, len(c.items))
	for _, item := range c.baseList {
		producible[item] = true
	}
	applied := make([]bool, len(c.recipes))
	for changed := true; changed; {
		changed = false
		for i, r := range c.recipes {
			if applied[i] || !allProducible(r.Inputs, producible) {
				continue
			}
			applied[i] = true
			for _, s := range r.Outputs {
				if !producible[s.Item] {
					producible[s.Item] = true
					changed = true
				}
			}
		}
	}

	consumed := make(map[string]bool)
	for i, r := range c.recipes {
		self := false
		for _, s := range r.Inputs {
			consumed[s.Item] = true
			if r.Output(s.Item) > 0 {
				self = true
			}
		}
		if self {
			a.SelfReferencing = append(a.SelfReferencing, i)
		}
	}

	for _, item := range c.items {
		if !producible[item] {
			a.Unproducible = append(a.Unproducible, item)
		}
		if c.IsBase(item) && !consumed[item] {
			a.Unused = append(a.Unused, item)
		}
	}
	return a
}

func allProducible(stacks []Stack, producible map[string]bool) bool {
	for _, s := range stacks {
		if !producible[s.Item] {
			return false
		}
	}
	return true
}
