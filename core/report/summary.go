package report

import (
	"io"
	"math"
	"strings"

	"craft-planner/core/plan"
	"craft-planner/core/quantity"
)

// WriteSummary writes the calculation result: base resources to gather, missing items,
// the categorised products and the inventory carried to the next calculation.
// Base quantities are rounded up, since raw resources come in whole units.
func WriteSummary(w io.Writer, p *plan.Plan, isBase func(string) bool) error {
	pr := &printer{w: w}

	pr.printf("\n--- Calculation Result ---\n")
	pr.printf("\nTotal base resources needed:\n")
	found := false
	for _, item := range p.Inputs.Keys() {
		if isBase(item) {
			pr.printf("  %s: %s\n", item, FormatQuantity(math.Ceil(p.Inputs[item]-quantity.Epsilon)))
			found = true
		}
	}
	if !found {
		pr.printf("  None\n")
	}

	if len(p.Unmet) > 0 {
		pr.printf("\nMissing (no viable route):\n")
		for _, item := range p.Unmet.Keys() {
			pr.printf("  %s: %s\n", item, FormatQuantity(p.Unmet[item]))
		}
	}

	pr.printf("\nOutputs:\n")
	cat := p.Categories
	listed := section(pr, "Finished products (Requested)", cat.Finished)
	listed = section(pr, "Intermediate products (Crafted & Consumed)", cat.Intermediate) || listed
	listed = section(pr, "Byproducts / Excess (Remaining non-base)", cat.Byproduct) || listed
	switch {
	case !listed && len(p.Inputs) == 0:
		pr.printf("  No products generated or resources needed/remaining.\n")
	case !listed:
		pr.printf("  Only base inputs consumed, no specific products generated or remaining.\n")
	}

	pr.printf("\nUpdated available resources for next calculation:\n")
	if p.Pool.IsEmpty() {
		pr.printf("  None\n")
	}
	for _, item := range p.Pool.Items() {
		pr.printf("  %s: %s\n", item, FormatQuantity(p.Pool.Get(item)))
	}
	return pr.err
}

func section(pr *printer, title string, m quantity.Map) bool {
	if len(m) == 0 {
		return false
	}
	pr.printf("  %s:\n", title)
	for _, item := range m.Keys() {
		pr.printf("    %s: %s\n", item, FormatQuantity(m[item]))
	}
	return true
}

// Render returns the tree followed by the summary.
func Render(p *plan.Plan, isBase func(string) bool) string {
	var b strings.Builder
	_ = WriteTree(&b, p.Trees)
	_ = WriteSummary(&b, p, isBase)
	return b.String()
}
