package cmd

import (
	"context"

	"craft-planner/core/database"
	"craft-planner/feature/integrity"
	"craft-planner/feature/integrity/checks"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform integrity checks on the catalog, storage and database",
	Long:  `Checks that the catalog can produce every item, that the storage bucket has the required layout and that the database schema matches the session model.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, true, true)
	},
}

// catalogCheckCmd represents the integrity catalog command
var catalogCheckCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Check that every craftable item can be produced",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, false, false)
	},
}

// storageCheckCmd represents the integrity storage command
var storageCheckCmd = &cobra.Command{
	Use:   "storage",
	Short: "Check and fix the bucket layout",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, true, false)
	},
}

// serverCheckCmd represents the integrity server command
var serverCheckCmd = &cobra.Command{
	Use:   "server",
	Short: "Check the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, false, true)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(catalogCheckCmd, storageCheckCmd, serverCheckCmd)

	storageCheckCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create the bucket and missing folders")
}

func runIntegrityChecks(ctx context.Context, runCatalog, runStorage, runServer bool) error {
	d, err := setup(ctx)
	if err != nil {
		return err
	}
	logg := d.logg

	// Connect to Database (Optional)
	var db *gorm.DB
	if runServer {
		if conn, err := database.Connect(d.cfg.Database); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			db = conn
			logg = logg.With(zap.String("driver", db.Dialector.Name()))
		}
	}

	svc := integrity.NewService(d.client, d.cfg.Storage, d.loader, d.cfg.Catalog, db, logg)

	if runCatalog {
		logg.Info("Checking catalog...")
		report, err := svc.CheckCatalog(ctx)
		if err != nil {
			return err
		}
		if report.Healthy {
			logg.Info("Every craftable item can be produced.", zap.Int("recipes", report.Analysis.Recipes))
		} else {
			logg.Warn("Unproducible items detected", zap.Strings("items", report.Analysis.Unproducible))
		}
		if len(report.Analysis.SelfReferencing) > 0 {
			logg.Info("Self-referencing recipes", zap.Ints("recipes", report.Analysis.SelfReferencing))
		}
		if len(report.Analysis.Unused) > 0 {
			logg.Info("Unused base resources", zap.Strings("items", report.Analysis.Unused))
		}
	}

	if runStorage {
		logg.Info("Checking storage layout...")
		report, err := svc.CheckStorage(ctx)
		switch {
		case err != nil && !fixFlag:
			return err
		case err != nil:
			logg.Warn("Storage check failed, recreating layout", zap.Error(err))
			if err := svc.FixStorage(ctx, checks.RequiredFolders); err != nil {
				return err
			}
			logg.Info("Storage layout created.")
		case len(report.MissingFolders) == 0:
			logg.Info("Storage layout is intact.")
		default:
			logg.Warn("Missing folders detected", zap.Strings("missing", report.MissingFolders))
			if fixFlag {
				logg.Info("Fixing missing folders...")
				if err := svc.FixStorage(ctx, report.MissingFolders); err != nil {
					return err
				}
				logg.Info("Storage layout fixed successfully.")
			} else {
				logg.Info("Run with --fix to create missing folders.")
			}
		}
		if report != nil && len(report.MissingObjects) > 0 {
			logg.Warn("Missing objects detected", zap.Strings("missing", report.MissingObjects))
		}
	}

	if runServer {
		logg.Info("Checking server schema integrity...")
		report, err := svc.CheckServer()
		if err != nil {
			logg.Error("Server schema check failed", zap.Error(err))
			return nil
		}
		if report.Matched {
			logg.Info("Server schema matches expected definition.", zap.String("driver", report.Driver))
			return nil
		}
		logg.Warn("Server schema mismatches found", zap.String("driver", report.Driver))
		for table, tblReport := range report.Tables {
			if tblReport.Status == "ok" {
				continue
			}
			if len(tblReport.MissingColumns) > 0 {
				logg.Warn("Missing Columns", zap.String("table", table), zap.Strings("columns", tblReport.MissingColumns))
			}
			if len(tblReport.TypeMismatches) > 0 {
				logg.Warn("Type Mismatches", zap.String("table", table), zap.Strings("mismatches", tblReport.TypeMismatches))
			}
		}
		for _, e := range report.Errors {
			logg.Error("Inspection Error", zap.String("error", e))
		}
	}
	return nil
}
