package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"craft-planner/core/catalog"
	"craft-planner/core/database"
	"craft-planner/core/plan"
	"craft-planner/core/pool"
	"craft-planner/core/report"
	"craft-planner/core/request"
	"craft-planner/core/resolver"
	"craft-planner/core/session"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// Flags for session command
	sessionID      string
	sessionPersist bool
)

// sessionCmd runs the interactive calculation loop.
var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Start an interactive calculation session",
	Long: `Reads item lists from standard input, one per line, and prints the recipe tree and
material summary for each. The inventory left by one calculation is the starting
inventory of the next.

Commands:
  quit            Exit the session
  stock           Show the current inventory
  add <items>     Add items to the inventory
  reset           Empty the inventory

With --persist the inventory is kept in the configured session store and the session
can be resumed later with --id.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		d, err := setup(ctx)
		if err != nil {
			return err
		}

		loop := &repl{
			in:       bufio.NewScanner(cmd.InOrStdin()),
			out:      cmd.OutOrStdout(),
			catalog:  d.catalog,
			resolver: resolver.New(d.catalog, resolver.WithLogger(d.logg), resolver.WithMaxDepth(d.cfg.Calculator.MaxDepth)),
			logg:     d.logg,
		}

		if sessionPersist || sessionID != "" {
			var db *gorm.DB
			if d.cfg.Session.Store == session.StoreDatabase {
				if db, err = database.Connect(d.cfg.Database); err != nil {
					return err
				}
			}
			store, err := session.New(d.cfg.Session, db)
			if err != nil {
				return err
			}

			var s *session.Session
			if sessionID != "" {
				s, err = store.Get(ctx, sessionID)
			} else {
				s, err = store.Create(ctx)
			}
			if err != nil {
				return fmt.Errorf("failed to open session: %w", err)
			}
			fmt.Fprintf(loop.out, "Session: %s\n", s.ID)

			loop.pool = s.Pool
			loop.save = func(ctx context.Context, p pool.Pool) error {
				_, err := store.SavePool(ctx, s.ID, p)
				return err
			}
		}

		return loop.run(ctx)
	},
}

func init() {
	sessionCmd.Flags().StringVar(&sessionID, "id", "", "Resume a persisted session")
	sessionCmd.Flags().BoolVar(&sessionPersist, "persist", false, "Persist the inventory in the session store")
	RootCmd.AddCommand(sessionCmd)
}

// repl is the interactive loop. save, when set, is called after every inventory change.
type repl struct {
	in       *bufio.Scanner
	out      io.Writer
	catalog  *catalog.Catalog
	resolver *resolver.Resolver
	pool     pool.Pool
	save     func(context.Context, pool.Pool) error
	logg     *zap.Logger
}

func (r *repl) run(ctx context.Context) error {
	fmt.Fprintln(r.out, "Welcome! Enter items and quantities (e.g., 'Planks, 5; Stick, 2').")
	fmt.Fprintln(r.out, "Available items:", strings.Join(r.catalog.AllItems(), ", "))
	fmt.Fprintln(r.out, "Base resources:", strings.Join(r.catalog.BaseResources(), ", "))
	fmt.Fprintln(r.out, "Type 'quit' to exit.")

	for {
		fmt.Fprint(r.out, "\nEnter items: ")
		if !r.in.Scan() {
			break
		}
		line := strings.TrimSpace(r.in.Text())
		if strings.EqualFold(line, "quit") {
			break
		}
		if err := r.handle(ctx, line); err != nil {
			return err
		}
		fmt.Fprintln(r.out, strings.Repeat("-", 30))
	}
	if err := r.in.Err(); err != nil {
		return err
	}
	fmt.Fprintln(r.out, "Exiting program.")
	return nil
}

// handle runs one line. Only persistence failures are returned; input errors are printed.
func (r *repl) handle(ctx context.Context, line string) error {
	lower := strings.ToLower(line)
	switch {
	case lower == "stock":
		r.printStock()
		return nil
	case lower == "reset":
		return r.update(ctx, pool.Pool{})
	case strings.HasPrefix(lower, "add "):
		added, assumptions, err := request.ParsePool(line[len("add "):], r.catalog)
		if err != nil {
			r.printError(err)
			return nil
		}
		r.printAssumptions(assumptions)
		return r.update(ctx, r.pool.Credit(added.Map()))
	}

	parsed, err := request.Parse(line, r.catalog)
	if err != nil {
		r.printError(err)
		return nil
	}
	r.printAssumptions(parsed.Assumptions)

	p := plan.Build(r.resolver, parsed.Items, r.pool)
	fmt.Fprint(r.out, report.Render(p, r.catalog.IsBase))
	r.logg.Debug("Session calculation",
		zap.Strings("items", parsed.Names()),
		zap.Bool("complete", p.Summary.Complete))
	return r.update(ctx, p.Pool)
}

func (r *repl) update(ctx context.Context, p pool.Pool) error {
	r.pool = p
	if r.save == nil {
		return nil
	}
	if err := r.save(ctx, p); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (r *repl) printStock() {
	fmt.Fprintln(r.out, "Available resources:")
	if r.pool.IsEmpty() {
		fmt.Fprintln(r.out, "  None")
		return
	}
	for _, item := range r.pool.Items() {
		fmt.Fprintf(r.out, "  %s: %s\n", item, report.FormatQuantity(r.pool.Get(item)))
	}
}

func (r *repl) printAssumptions(assumptions []request.Assumption) {
	for _, a := range assumptions {
		fmt.Fprintf(r.out, "Assuming '%s' meant '%s'\n", a.Input, a.Matched)
	}
}

func (r *repl) printError(err error) {
	var reqErr *request.Error
	if errors.As(err, &reqErr) {
		for _, e := range reqErr.Entries {
			fmt.Fprintf(r.out, "Error: %s\n", e.String())
		}
		return
	}
	fmt.Fprintf(r.out, "Error: %v\n", err)
}
