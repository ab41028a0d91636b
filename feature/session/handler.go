package session

import (
	"errors"

	"craft-planner/core/logger"
	"craft-planner/core/request"
	coresession "craft-planner/core/session"
	"craft-planner/feature/calculator"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for sessions.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the session routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/sessions")
	group.Post("/", h.HandleCreate)
	group.Get("/:id", h.HandleGet)
	group.Put("/:id/pool", h.HandleUpdatePool)
	group.Delete("/:id", h.HandleDelete)
	group.Post("/:id/calculate", h.HandleCalculate)
	group.Post("/:id/export", h.HandleExport)
	group.Post("/:id/import", h.HandleImport)
}

// respond maps session errors to HTTP responses.
func (h *Handler) respond(c *fiber.Ctx, l *zap.Logger, err error) error {
	switch {
	case errors.Is(err, coresession.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ErrSnapshotsDisabled):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, request.ErrInvalidRequest):
		return calculator.RespondError(c, l, err)
	default:
		l.Error("Session operation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}

// HandleCreate creates a session.
// @Summary Create Session
// @Description Creates a session with an empty inventory.
// @Tags sessions
// @Produce json
// @Success 201 {object} session.Session "Session"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /sessions [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	s, err := h.service.Create(c.Context())
	if err != nil {
		return h.respond(c, l, err)
	}
	l.Info("Session created", zap.String("session", s.ID))
	return c.Status(fiber.StatusCreated).JSON(s)
}

// HandleGet returns a session.
// @Summary Get Session
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} session.Session "Session"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /sessions/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	s, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return h.respond(c, l, err)
	}
	return c.JSON(s)
}

// HandleUpdatePool edits the session inventory.
// @Summary Update Session Pool
// @Description Replaces the inventory, or adds to it with mode=add.
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param input body PoolInput true "Inventory edit"
// @Success 200 {object} session.Session "Session"
// @Failure 400 {object} map[string]interface{} "Invalid Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /sessions/{id}/pool [put]
func (h *Handler) HandleUpdatePool(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var in PoolInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body", "details": err.Error()})
	}

	s, err := h.service.UpdatePool(c.Context(), c.Params("id"), in)
	if err != nil {
		return h.respond(c, l, err)
	}
	return c.JSON(s)
}

// HandleDelete deletes a session.
// @Summary Delete Session
// @Tags sessions
// @Param id path string true "Session ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /sessions/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		return h.respond(c, l, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleCalculate calculates against the session inventory.
// @Summary Calculate In Session
// @Description Resolves the items against the stored inventory and stores the resulting inventory.
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param input body calculator.Input true "Items; pool is ignored"
// @Success 200 {object} calculator.Output "Plan"
// @Failure 400 {object} map[string]interface{} "Invalid Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /sessions/{id}/calculate [post]
func (h *Handler) HandleCalculate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var in calculator.Input
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body", "details": err.Error()})
	}

	out, err := h.service.Calculate(c.Context(), c.Params("id"), in)
	if err != nil {
		return h.respond(c, l, err)
	}
	return c.JSON(out)
}

// HandleExport writes a session snapshot to object storage.
// @Summary Export Session
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} map[string]string "Snapshot key"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 503 {object} map[string]string "Storage Disabled"
// @Router /sessions/{id}/export [post]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	key, err := h.service.Export(c.Context(), c.Params("id"))
	if err != nil {
		return h.respond(c, l, err)
	}
	l.Info("Session exported", zap.String("key", key))
	return c.JSON(fiber.Map{"status": "exported", "key": key})
}

// HandleImport restores a session snapshot.
// @Summary Import Session
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} session.Session "Session"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 503 {object} map[string]string "Storage Disabled"
// @Router /sessions/{id}/import [post]
func (h *Handler) HandleImport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	s, err := h.service.Import(c.Context(), c.Params("id"))
	if err != nil {
		return h.respond(c, l, err)
	}
	return c.JSON(s)
}
