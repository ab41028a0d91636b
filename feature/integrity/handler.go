package integrity

import (
	"craft-planner/core/logger"
	"craft-planner/feature/integrity/checks"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/catalog", h.HandleCatalogCheck)
	group.Get("/storage", h.HandleStorageCheck)
	group.Get("/server", h.HandleServerCheck)
}

// HandleIntegrityCheck triggers all integrity checks.
// @Summary Run All Integrity Checks
// @Description Performs all available integrity checks (Catalog, Storage, Server).
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	ctx := c.Context()
	report := make(map[string]interface{})

	if catReport, err := h.service.CheckCatalog(ctx); err != nil {
		report["catalog"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["catalog"] = catReport
	}

	if stReport, err := h.service.CheckStorage(ctx); err != nil {
		report["storage"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["storage"] = stReport
	}

	if srvReport, err := h.service.CheckServer(); err != nil {
		report["server"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["server"] = srvReport
	}

	return c.JSON(report)
}

// HandleCatalogCheck analyzes the catalog.
// @Summary Check Catalog
// @Description Loads the configured catalog and reports items that cannot be produced from base resources.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.CatalogReport "Catalog Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/catalog [get]
func (h *Handler) HandleCatalogCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckCatalog(c.Context())
	if err != nil {
		l.Error("Catalog check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if !report.Healthy {
		l.Warn("Unproducible items detected", zap.Strings("items", report.Analysis.Unproducible))
	}
	return c.JSON(report)
}

// HandleStorageCheck checks and optionally fixes the bucket layout.
// @Summary Check Storage
// @Description Checks the bucket folders and the catalog object. Optionally creates the bucket and missing folders.
// @Tags integrity
// @Produce json
// @Param fix query boolean false "Fix missing folders"
// @Success 200 {object} map[string]interface{} "Storage Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/storage [get]
func (h *Handler) HandleStorageCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := c.Query("fix") == "true"

	report, err := h.service.CheckStorage(c.Context())
	if err != nil && !fix {
		l.Error("Storage check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if fix {
		missing := checks.RequiredFolders
		if report != nil {
			missing = report.MissingFolders
		} else {
			l.Warn("Storage check failed, recreating layout", zap.Error(err))
		}
		if len(missing) == 0 {
			return c.JSON(fiber.Map{"status": "checked", "report": report})
		}

		l.Info("Attempting to fix storage layout", zap.Strings("missing", missing))
		if err := h.service.FixStorage(c.Context(), missing); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":   "Failed to fix storage",
				"details": err.Error(),
				"missing": missing,
			})
		}
		return c.JSON(fiber.Map{
			"status": "fixed",
			"fixed":  missing,
		})
	}

	if len(report.MissingFolders) > 0 || len(report.MissingObjects) > 0 {
		l.Warn("Storage is incomplete",
			zap.Strings("folders", report.MissingFolders),
			zap.Strings("objects", report.MissingObjects))
	}
	return c.JSON(fiber.Map{
		"status": "checked",
		"report": report,
	})
}

// HandleServerCheck checks server schema integrity.
// @Summary Check Server Schema
// @Description Checks if the database schema matches the expected models.
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} checks.ServerReport "Server Check Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/server [get]
func (h *Handler) HandleServerCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Starting server schema check")

	report, err := h.service.CheckServer()
	if err != nil {
		l.Error("Server schema check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(report)
}
