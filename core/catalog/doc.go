// Package catalog holds the static table of conversion recipes and the facts derived from it.
//
// A Catalog is validated and indexed once, at construction. Afterwards it is immutable and
// safe to share between goroutines: the set of known items, the set of base resources
// (items no recipe produces) and the output -> recipes index never change for the lifetime
// of the value.
//
// # Recipes
//
// A Recipe converts an ordered list of input stacks into an ordered list of output stacks,
// per batch. Recipes are referenced by their position in the catalog; that index is what
// provenance trees record.
//
// # Loading
//
// Catalog documents are JSON or YAML:
//
//	recipes:
//	  - id: planks
//	    inputs:  [{item: Log, qty: 1}]
//	    outputs: [{item: Planks, qty: 4}]
//
// Every document is checked against an embedded JSON Schema before it is decoded, then the
// recipes go through New, which rejects malformed recipes with ErrInvalidCatalog. Documents
// can be read from disk (LoadFile) or from object storage (LoadObject). Loader picks the
// source from configuration and Cache keeps the result for a TTL.
//
// # Usage
//
//	c, err := catalog.New(recipes)
//	if err != nil {
//	    return err
//	}
//	for _, r := range c.RecipesProducing("Planks") {
//	    fmt.Println(r.Index, r.Recipe)
//	}
package catalog
