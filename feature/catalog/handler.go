package catalog

import (
	"net/url"

	"craft-planner/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the catalog.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/catalog")
	group.Get("/", h.HandleOverview)
	group.Get("/items/:name", h.HandleItem)
	group.Get("/analysis", h.HandleAnalysis)
	group.Post("/reload", h.HandleReload)
}

// HandleOverview returns the catalog.
// @Summary Get Catalog
// @Description Returns every item, the base resources and the recipes in catalog order.
// @Tags catalog
// @Produce json
// @Success 200 {object} Overview "Catalog"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /catalog [get]
func (h *Handler) HandleOverview(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	overview, err := h.service.Overview(c.Context())
	if err != nil {
		l.Error("Failed to load catalog", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(overview)
}

// HandleItem describes one item.
// @Summary Get Item
// @Description Returns the recipes producing an item. Unknown items return 404 with suggestions.
// @Tags catalog
// @Produce json
// @Param name path string true "Item name"
// @Success 200 {object} ItemInfo "Item"
// @Failure 404 {object} ItemInfo "Unknown Item"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /catalog/items/{name} [get]
func (h *Handler) HandleItem(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid item name"})
	}

	info, err := h.service.Item(c.Context(), name)
	if err != nil {
		l.Error("Failed to load catalog", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if !info.Known {
		return c.Status(fiber.StatusNotFound).JSON(info)
	}
	return c.JSON(info)
}

// HandleAnalysis runs the catalog analysis.
// @Summary Analyze Catalog
// @Description Reports craftable items that cannot be produced from base resources, self-referencing recipes and unused base resources.
// @Tags catalog
// @Produce json
// @Success 200 {object} catalog.Analysis "Analysis"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /catalog/analysis [get]
func (h *Handler) HandleAnalysis(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	analysis, err := h.service.Analyze(c.Context())
	if err != nil {
		l.Error("Failed to analyze catalog", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if !analysis.Healthy() {
		l.Warn("Catalog has unproducible items", zap.Strings("items", analysis.Unproducible))
	}
	return c.JSON(analysis)
}

// HandleReload invalidates the cached catalog.
// @Summary Reload Catalog
// @Description Drops the cached catalog so the next request reads the configured source again.
// @Tags catalog
// @Produce json
// @Success 200 {object} map[string]string "Status"
// @Router /catalog/reload [post]
func (h *Handler) HandleReload(c *fiber.Ctx) error {
	h.service.Reload()
	return c.JSON(fiber.Map{"status": "reloaded"})
}
