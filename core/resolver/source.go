package resolver

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind classifies how a node was satisfied.
type Kind uint8

const (
	KindZeroNeeded Kind = iota
	KindStock
	KindStockOnly
	KindBase
	KindRecipe
	KindUnresolvedLoop
	KindNoViableRoute
	KindMissingDefinition
)

var kindNames = [...]string{
	KindZeroNeeded:        "zero_needed",
	KindStock:             "stock",
	KindStockOnly:         "stock_only",
	KindBase:              "base",
	KindRecipe:            "recipe",
	KindUnresolvedLoop:    "unresolved_loop",
	KindNoViableRoute:     "no_viable_route",
	KindMissingDefinition: "missing_recipe_or_base",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Source is the decision recorded on a node. Recipe is the catalog index and is
// only meaningful when Kind is KindRecipe.
type Source struct {
	Kind   Kind
	Recipe int
}

var (
	ZeroNeeded        = Source{Kind: KindZeroNeeded}
	Stock             = Source{Kind: KindStock}
	StockOnly         = Source{Kind: KindStockOnly}
	Base              = Source{Kind: KindBase}
	UnresolvedLoop    = Source{Kind: KindUnresolvedLoop}
	NoViableRoute     = Source{Kind: KindNoViableRoute}
	MissingDefinition = Source{Kind: KindMissingDefinition}
)

// FromRecipe returns the source for the recipe at catalog index i.
func FromRecipe(i int) Source {
	return Source{Kind: KindRecipe, Recipe: i}
}

// IsRecipe reports whether the node was crafted.
func (s Source) IsRecipe() bool {
	return s.Kind == KindRecipe
}

// Failed reports whether the source is one of the unsatisfiable outcomes.
func (s Source) Failed() bool {
	switch s.Kind {
	case KindUnresolvedLoop, KindNoViableRoute, KindMissingDefinition:
		return true
	default:
		return false
	}
}

// String renders the source as its tag, "recipe:<index>" for recipes.
func (s Source) String() string {
	if s.Kind == KindRecipe {
		return "recipe:" + strconv.Itoa(s.Recipe)
	}
	return s.Kind.String()
}

func (s Source) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Source) UnmarshalText(text []byte) error {
	parsed, err := ParseSource(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseSource is the inverse of Source.String.
func ParseSource(text string) (Source, error) {
	if rest, ok := strings.CutPrefix(text, "recipe:"); ok {
		i, err := strconv.Atoi(rest)
		if err != nil || i < 0 {
			return Source{}, fmt.Errorf("invalid recipe source %q", text)
		}
		return FromRecipe(i), nil
	}
	for k, name := range kindNames {
		if name == text && Kind(k) != KindRecipe {
			return Source{Kind: Kind(k)}, nil
		}
	}
	return Source{}, fmt.Errorf("unknown source %q", text)
}
