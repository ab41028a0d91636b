package report

import (
	"fmt"
	"io"
	"sort"

	"craft-planner/core/quantity"
	"craft-planner/core/resolver"
)

const (
	branch = "├─ "
	last   = "└─ "
	pipe   = "│   "
	blank  = "    "
)

// WriteTree writes one box-drawn tree per root.
func WriteTree(w io.Writer, roots []*resolver.Node) error {
	p := &printer{w: w}
	p.printf("\n--- Recipe Tree ---\n")
	if len(roots) == 0 {
		p.printf("  (No tree generated)\n")
		return p.err
	}
	for _, root := range roots {
		p.printf("\nTree for: %s (Needed: %s) [%s]\n", root.Item, FormatQuantity(root.Needed), root.Source)
		p.children(root, "")
	}
	return p.err
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) children(n *resolver.Node, prefix string) {
	kids := SortedChildren(n)
	for i, c := range kids {
		p.node(c, prefix, i == len(kids)-1)
	}
}

func (p *printer) node(n *resolver.Node, prefix string, isLast bool) {
	connector, indent := branch, pipe
	if isLast {
		connector, indent = last, blank
	}

	detail := ""
	switch {
	case n.Source.IsRecipe() && quantity.Positive(n.BatchOutput):
		detail = ", Produced: " + FormatQuantity(n.BatchOutput)
	case n.Source == resolver.Stock && quantity.Positive(n.Produced):
		detail = ", Used from Stock: " + FormatQuantity(n.Produced)
	}
	p.printf("%s%s%s (Needed: %s%s) [%s]\n", prefix, connector, n.Item, FormatQuantity(n.Needed), detail, n.Source)
	p.children(n, prefix+indent)
}

// SortedChildren orders children stock first, then base, then crafted, then everything
// else, each group by item name.
func SortedChildren(n *resolver.Node) []*resolver.Node {
	kids := append([]*resolver.Node(nil), n.Children...)
	sort.SliceStable(kids, func(i, j int) bool {
		ri, rj := rank(kids[i].Source), rank(kids[j].Source)
		if ri != rj {
			return ri < rj
		}
		return kids[i].Item < kids[j].Item
	})
	return kids
}

func rank(s resolver.Source) int {
	switch s.Kind {
	case resolver.KindStock:
		return 0
	case resolver.KindBase:
		return 1
	case resolver.KindRecipe:
		return 2
	default:
		return 3
	}
}
