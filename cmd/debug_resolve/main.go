package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"

	"craft-planner/core/catalog"
	"craft-planner/core/config"
	"craft-planner/core/pool"
	"craft-planner/core/report"
	"craft-planner/core/resolver"
	"craft-planner/core/storage"

	"go.uber.org/zap"
)

// Resolves one item with debug logging enabled and dumps the tree and the raw result.
// Usage: debug_resolve <item> [qty]
func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: debug_resolve <item> [qty]")
	}
	item := os.Args[1]
	qty := 1.0
	if len(os.Args) > 2 {
		q, err := strconv.ParseFloat(os.Args[2], 64)
		if err != nil {
			log.Fatalf("invalid quantity %q: %v", os.Args[2], err)
		}
		qty = q
	}

	// Load config
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal(err)
	}

	client, err := catalogClient(cfg)
	if err != nil {
		log.Fatal(err)
	}

	c, err := catalog.NewLoader(cfg.Catalog, client, cfg.Storage.Bucket).Load(context.Background())
	if err != nil {
		log.Fatal(err)
	}

	logg, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logg.Sync() }()

	fmt.Println("=== Catalog ===")
	fmt.Printf("Digest: %s\n", c.Digest())
	fmt.Printf("Recipes: %d, Items: %d, Base resources: %d\n", c.Len(), len(c.AllItems()), len(c.BaseResources()))

	if !c.Has(item) {
		fmt.Printf("NOT FOUND in catalog: %s\n", item)
		os.Exit(1)
	}

	fmt.Printf("\n=== Producers of %s ===\n", item)
	producers := c.RecipesProducing(item)
	if len(producers) == 0 {
		fmt.Println("None (base resource)")
	}
	for _, p := range producers {
		fmt.Printf("  recipe:%d %s\n", p.Index, p.Recipe)
	}

	fmt.Println("\n=== Resolution ===")
	r := resolver.New(c, resolver.WithLogger(logg), resolver.WithMaxDepth(cfg.Calculator.MaxDepth))
	res := r.Resolve(item, qty, pool.Pool{})

	if err := report.WriteTree(os.Stdout, []*resolver.Node{res.Root}); err != nil {
		log.Fatal(err)
	}

	fmt.Println("\n=== Raw Result ===")
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("\nComplete: %v\n", res.Complete())
}

// catalogClient returns a storage client when the catalog is read from object storage,
// and nil for every other source.
func catalogClient(cfg *config.Config) (storage.Client, error) {
	if cfg.Catalog.Source != catalog.SourceStorage {
		return nil, nil
	}
	return storage.NewClient(cfg.Storage)
}
