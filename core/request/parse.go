package request

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"craft-planner/core/pool"
)

// Matcher is the view of a catalog the parser needs.
type Matcher interface {
	Has(item string) bool
	AllItems() []string
}

// MaxQuantity is the largest quantity a request or stock entry may carry. Above it,
// batch arithmetic loses whole-unit precision.
const MaxQuantity = 1e15

// Item is one validated demand.
type Item struct {
	Name string  `json:"item"`
	Qty  float64 `json:"qty"`
}

// Assumption records an input name that was replaced by a fuzzy match.
type Assumption struct {
	Input   string `json:"input"`
	Matched string `json:"matched"`
}

// Parsed is the outcome of a successful parse.
type Parsed struct {
	Items       []Item       `json:"items"`
	Assumptions []Assumption `json:"assumptions,omitempty"`
}

// Names returns the item names in request order.
func (p Parsed) Names() []string {
	names := make([]string, len(p.Items))
	for i, it := range p.Items {
		names[i] = it.Name
	}
	return names
}

// Parse reads a "name[, qty]; ..." list and resolves every name against m.
func Parse(input string, m Matcher) (Parsed, error) {
	var items []Item
	var positions []int
	var errs []EntryError
	pos := 0

	for _, raw := range strings.Split(input, ";") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		pos++

		parts := strings.Split(raw, ",")
		if len(parts) > 2 {
			errs = append(errs, EntryError{Position: pos, Raw: raw, Reason: "invalid format, expected name[, quantity]"})
			continue
		}
		name := strings.TrimSpace(parts[0])
		if name == "" {
			errs = append(errs, EntryError{Position: pos, Raw: raw, Reason: "missing item name"})
			continue
		}
		qty := 1.0
		if len(parts) == 2 {
			q, ok := parseQuantity(parts[1])
			if !ok {
				errs = append(errs, EntryError{Position: pos, Raw: raw, Reason: "invalid quantity for " + name})
				continue
			}
			qty = q
		}
		items = append(items, Item{Name: name, Qty: qty})
		positions = append(positions, pos)
	}

	if len(errs) == 0 && len(items) == 0 {
		return Parsed{}, ErrNoItems
	}

	parsed, matchErr := resolveNames(items, positions, m)
	if matchErr != nil {
		errs = append(errs, matchErr.Entries...)
		sort.SliceStable(errs, func(i, j int) bool { return errs[i].Position < errs[j].Position })
	}
	if len(errs) > 0 {
		return Parsed{}, &Error{Entries: errs}
	}
	return parsed, nil
}

// Normalize validates an already structured list the same way Parse does.
func Normalize(items []Item, m Matcher) (Parsed, error) {
	if len(items) == 0 {
		return Parsed{}, ErrNoItems
	}
	var errs []EntryError
	positions := make([]int, len(items))
	for i, it := range items {
		positions[i] = i + 1
		if !validQuantity(it.Qty) {
			errs = append(errs, EntryError{Position: i + 1, Raw: it.Name, Reason: "invalid quantity for " + it.Name})
		}
	}
	parsed, matchErr := resolveNames(items, positions, m)
	if matchErr != nil {
		errs = append(errs, matchErr.Entries...)
	}
	if len(errs) > 0 {
		return Parsed{}, &Error{Entries: errs}
	}
	return parsed, nil
}

// ParsePool reads the same syntax as Parse into a pool. Repeated names add up.
func ParsePool(input string, m Matcher) (pool.Pool, []Assumption, error) {
	if strings.TrimSpace(input) == "" {
		return pool.Pool{}, nil, nil
	}
	parsed, err := Parse(input, m)
	if err != nil {
		return pool.Pool{}, nil, err
	}
	stock := make(map[string]float64, len(parsed.Items))
	for _, it := range parsed.Items {
		stock[it.Name] += it.Qty
	}
	return pool.New(stock), parsed.Assumptions, nil
}

// resolveNames replaces unknown names by their best match. positions[i] is the
// input position of items[i], used in error reports.
func resolveNames(items []Item, positions []int, m Matcher) (Parsed, *Error) {
	out := Parsed{Items: make([]Item, 0, len(items))}
	var errs []EntryError
	var known []string

	for i, it := range items {
		if m.Has(it.Name) {
			out.Items = append(out.Items, it)
			continue
		}
		if known == nil {
			known = m.AllItems()
		}
		suggestions := Suggest(it.Name, known)
		if len(suggestions) == 0 {
			errs = append(errs, EntryError{Position: positions[i], Raw: it.Name, Reason: "item not found"})
			continue
		}
		out.Assumptions = append(out.Assumptions, Assumption{Input: it.Name, Matched: suggestions[0]})
		out.Items = append(out.Items, Item{Name: suggestions[0], Qty: it.Qty})
	}
	if len(errs) > 0 {
		return out, &Error{Entries: errs}
	}
	return out, nil
}

func parseQuantity(raw string) (float64, bool) {
	q, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || !validQuantity(q) {
		return 0, false
	}
	return q, true
}

func validQuantity(q float64) bool {
	return q > 0 && q <= MaxQuantity && !math.IsNaN(q)
}
