package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"craft-planner/core/catalog"
	"craft-planner/core/config"
	"craft-planner/core/database"
	"craft-planner/core/loader"
	"craft-planner/core/logger"
	"craft-planner/core/middleware/auth"
	"craft-planner/core/middleware/rayid"
	coresession "craft-planner/core/session"
	"craft-planner/core/storage"

	"craft-planner/feature/calculator"
	catalogfeature "craft-planner/feature/catalog"
	"craft-planner/feature/integrity"
	"craft-planner/feature/session"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "craft-planner/docs/swagger"
)

// @title Craft Planner API
// @version 1.0
// @description API for calculating crafting material requirements.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the craft planner server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to Database (Optional, required by the database session store)
		var db *gorm.DB
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			db = conn
			logg.Info("Connected to database", zap.String("driver", db.Dialector.Name()))
		}

		// 4. Initialize Storage
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}

		// 5. Catalog and session store
		catalogLoader := catalog.NewLoader(cfg.Catalog, store, cfg.Storage.Bucket)
		if _, err := catalogLoader.Load(cmd.Context()); err != nil {
			logg.Fatal("Failed to load catalog", zap.Error(err))
		}

		sessions, err := coresession.New(cfg.Session, db)
		if err != nil {
			logg.Warn("Session store unavailable, sessions disabled", zap.Error(err))
		}

		// 6. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 7. Initialize Feature Loader
		mgr := loader.NewManager(logg)

		calc := calculator.NewFeature(catalogLoader, cfg.Calculator, logg)
		mgr.Register(calc)
		mgr.Register(catalogfeature.NewFeature(catalogLoader, logg))
		mgr.Register(session.NewFeature(sessions, coresession.NewSnapshots(store, cfg.Storage.Bucket), calc.Service(), logg))
		mgr.Register(integrity.NewFeature(store, cfg.Storage, catalogLoader, cfg.Catalog, db, logg))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Custom to use Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 3. Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 4. Auth (Protect API)
		if !cfg.Server.AuthEnabled() {
			logg.Warn("No API key configured, the API is unprotected")
		}
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 8. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 9. Start Server
		go func() {
			logg.Info("Starting server", zap.String("address", cfg.Server.Address()))
			if err := app.Listen(cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 10. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
