package cmd

import (
	"fmt"
	"io"
	"strings"

	"craft-planner/core/catalog"
	"craft-planner/core/report"
	"craft-planner/core/request"
	"craft-planner/core/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var catalogFormat string

// catalogCmd is the parent command for catalog operations.
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect, validate and publish recipe catalogs",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the recipes of the configured catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := setup(cmd.Context())
		if err != nil {
			return err
		}
		printCatalog(cmd.OutOrStdout(), d.catalog)
		return nil
	},
}

var catalogShowCmd = &cobra.Command{
	Use:   "show [item]",
	Short: "Show the recipes producing an item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := setup(cmd.Context())
		if err != nil {
			return err
		}
		return printItem(cmd.OutOrStdout(), d.catalog, args[0])
	},
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a catalog document (JSON or YAML)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := catalog.LoadFile(args[0])
		if err != nil {
			return err
		}
		printAnalysis(cmd.OutOrStdout(), catalog.Analyze(c))
		return nil
	},
}

var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the configured catalog as a document",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := setup(cmd.Context())
		if err != nil {
			return err
		}
		raw, err := catalog.Encode(d.catalog, catalog.Format(catalogFormat))
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(raw)
		return err
	},
}

var catalogPushCmd = &cobra.Command{
	Use:   "push [file]",
	Short: "Validate a catalog document and upload it to the catalog object",
	Long: `Validates a local catalog document and uploads it to the bucket under
catalog.object, creating the bucket when needed. Servers using the storage
source pick it up once their catalog cache expires.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		d, err := setup(ctx)
		if err != nil {
			return err
		}
		c, err := catalog.LoadFile(args[0])
		if err != nil {
			return err
		}
		if err := storage.EnsureBucket(ctx, d.client, d.cfg.Storage.Bucket, d.cfg.Storage.Region); err != nil {
			return err
		}
		if err := catalog.StoreObject(ctx, d.client, d.cfg.Storage.Bucket, d.cfg.Catalog.Object, c); err != nil {
			return err
		}
		d.logg.Info("Catalog uploaded",
			zap.String("bucket", d.cfg.Storage.Bucket),
			zap.String("object", d.cfg.Catalog.Object),
			zap.String("digest", c.Digest()))
		return nil
	},
}

func init() {
	catalogExportCmd.Flags().StringVar(&catalogFormat, "format", string(catalog.FormatYAML), "Document format (json or yaml)")
	catalogCmd.AddCommand(catalogListCmd, catalogShowCmd, catalogValidateCmd, catalogExportCmd, catalogPushCmd)
	RootCmd.AddCommand(catalogCmd)
}

func printCatalog(out io.Writer, c *catalog.Catalog) {
	fmt.Fprintf(out, "Recipes (%d):\n", c.Len())
	for i, r := range c.Recipes() {
		label := ""
		if r.ID != "" {
			label = " (" + r.ID + ")"
		}
		fmt.Fprintf(out, "  %d%s: %s\n", i, label, r.String())
	}
	fmt.Fprintln(out, "Available items:", strings.Join(c.AllItems(), ", "))
	fmt.Fprintln(out, "Base resources:", strings.Join(c.BaseResources(), ", "))
}

func printItem(out io.Writer, c *catalog.Catalog, name string) error {
	if !c.Has(name) {
		if suggestions := request.Suggest(name, c.AllItems()); len(suggestions) > 0 {
			return fmt.Errorf("unknown item %q (did you mean %s?)", name, strings.Join(suggestions, ", "))
		}
		return fmt.Errorf("unknown item %q", name)
	}

	fmt.Fprintf(out, "%s\n", name)
	if c.IsBase(name) {
		fmt.Fprintln(out, "  Base resource: gathered, never crafted")
		return nil
	}
	for _, ix := range c.RecipesProducing(name) {
		fmt.Fprintf(out, "  recipe %d: %s (makes %s per batch)\n", ix.Index, ix.Recipe.String(), report.FormatQuantity(ix.Recipe.Output(name)))
	}
	return nil
}

func printAnalysis(out io.Writer, a catalog.Analysis) {
	fmt.Fprintf(out, "Catalog is valid: %d recipes, %d items (%d base, %d craftable)\n", a.Recipes, a.Items, a.Base, a.Craftable)
	if len(a.Unproducible) > 0 {
		fmt.Fprintln(out, "Unproducible from base resources:", strings.Join(a.Unproducible, ", "))
	}
	if len(a.SelfReferencing) > 0 {
		ids := make([]string, len(a.SelfReferencing))
		for i, ix := range a.SelfReferencing {
			ids[i] = fmt.Sprint(ix)
		}
		fmt.Fprintln(out, "Self-referencing recipes:", strings.Join(ids, ", "))
	}
	if len(a.Unused) > 0 {
		fmt.Fprintln(out, "Unused base resources:", strings.Join(a.Unused, ", "))
	}
}
