package calculator

import (
	"errors"

	"craft-planner/core/logger"
	"craft-planner/core/request"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for calculations.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the calculator routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/calculate")
	group.Post("/", h.HandleCalculate)
	group.Post("/text", h.HandleCalculateText)
}

// HandleCalculate resolves an item list.
// @Summary Calculate Materials
// @Description Resolves the requested items against the catalog and an optional starting inventory.
// @Tags calculator
// @Accept json
// @Produce json
// @Param input body Input true "Items and starting inventory"
// @Success 200 {object} Output "Plan"
// @Failure 400 {object} map[string]interface{} "Invalid Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /calculate [post]
func (h *Handler) HandleCalculate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var in Input
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body", "details": err.Error()})
	}

	out, err := h.service.Calculate(c.Context(), in)
	if err != nil {
		return RespondError(c, l, err)
	}

	l.Info("Calculation completed",
		zap.Int("requests", out.Summary.Requests),
		zap.Bool("complete", out.Summary.Complete),
		zap.Bool("cached", out.Cached))
	return c.JSON(out)
}

// HandleCalculateText resolves an item list and renders the text report.
// @Summary Calculate Materials (Text)
// @Description Same as /calculate but returns the human readable report.
// @Tags calculator
// @Accept json
// @Produce plain
// @Param input body Input true "Items and starting inventory"
// @Success 200 {string} string "Report"
// @Failure 400 {object} map[string]interface{} "Invalid Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /calculate/text [post]
func (h *Handler) HandleCalculateText(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var in Input
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body", "details": err.Error()})
	}

	text, err := h.service.Render(c.Context(), in)
	if err != nil {
		return RespondError(c, l, err)
	}
	return c.SendString(text)
}

// RespondError maps a calculation error to its HTTP response.
func RespondError(c *fiber.Ctx, l *zap.Logger, err error) error {
	var reqErr *request.Error
	switch {
	case errors.As(err, &reqErr):
		l.Warn("Rejected calculation request", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": request.ErrInvalidRequest.Error(), "details": reqErr.Entries})
	case errors.Is(err, request.ErrInvalidRequest):
		l.Warn("Rejected calculation request", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": request.ErrInvalidRequest.Error(), "details": err.Error()})
	default:
		l.Error("Calculation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}
