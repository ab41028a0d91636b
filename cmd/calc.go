package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"craft-planner/core/catalog"
	"craft-planner/core/plan"
	"craft-planner/core/report"
	"craft-planner/core/request"
	"craft-planner/core/resolver"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for calc command
	calcStock string
	calcJSON  bool
)

// calcCmd resolves one item list and prints the report.
var calcCmd = &cobra.Command{
	Use:   "calc [items]",
	Short: "Calculate the materials for a list of items",
	Long: `Resolves a list of items against the catalog and prints the recipe tree and the
material summary.

Items use the "name[, quantity]; ..." syntax. The quantity defaults to 1 and names are
matched case-insensitively against the catalog when they are not exact.

Examples:
  calc "Wooden Pickaxe, 1"

  # Start from an existing inventory
  calc "Wooden Pickaxe" --stock "Planks, 3; Log, 2"

  # Machine readable output
  calc "Stick, 8" --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := setup(cmd.Context())
		if err != nil {
			return err
		}
		r := resolver.New(d.catalog, resolver.WithLogger(d.logg), resolver.WithMaxDepth(d.cfg.Calculator.MaxDepth))
		return runCalc(cmd.OutOrStdout(), d.logg, d.catalog, r, args[0], calcStock, calcJSON)
	},
}

func init() {
	calcCmd.Flags().StringVar(&calcStock, "stock", "", "Starting inventory, same syntax as the items")
	calcCmd.Flags().BoolVar(&calcJSON, "json", false, "Print the plan as JSON")
	RootCmd.AddCommand(calcCmd)
}

func runCalc(out io.Writer, l *zap.Logger, c *catalog.Catalog, r *resolver.Resolver, items, stock string, asJSON bool) error {
	parsed, err := request.Parse(items, c)
	if err != nil {
		return err
	}
	initial, stockAssumptions, err := request.ParsePool(stock, c)
	if err != nil {
		return fmt.Errorf("invalid stock: %w", err)
	}

	p := plan.Build(r, parsed.Items, initial)

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			*plan.Plan
			Assumptions []request.Assumption `json:"assumptions"`
		}{p, append(parsed.Assumptions, stockAssumptions...)})
	}

	for _, a := range append(parsed.Assumptions, stockAssumptions...) {
		fmt.Fprintf(out, "Assuming '%s' meant '%s'\n", a.Input, a.Matched)
	}
	if _, err := io.WriteString(out, report.Render(p, c.IsBase)); err != nil {
		return err
	}
	if !p.Summary.Complete {
		l.Warn("Some demand could not be met", zap.Strings("missing", p.Summary.Missing))
	}
	return nil
}
