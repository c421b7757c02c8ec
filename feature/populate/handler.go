package populate

import (
	"errors"

	"holiday-manager/core/graph"
	"holiday-manager/core/holiday"
	"holiday-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for holiday population.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the populate routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/populate", h.HandlePopulateAll)
	app.Post("/populate/:subject", h.HandlePopulateSubject)
	app.Post("/clear/:subject", h.HandleClearSubject)
}

// optionsFromQuery reads the narrowing options shared by the populate
// endpoints.
func optionsFromQuery(c *fiber.Ctx) Options {
	return Options{
		Category: c.Query("category"),
		Location: c.Query("location"),
		DryRun:   c.QueryBool("dry_run"),
	}
}

// HandlePopulateSubject reconciles a single subject's calendar.
// @Summary Populate one subject
// @Description Reconciles one subject's calendar against the canonical holiday set.
// @Tags populate
// @Produce json
// @Param subject path string true "Subject principal (UPN or ID)"
// @Param category query string false "Restrict to one pack category"
// @Param location query string false "Restrict to holidays observed near this location"
// @Param dry_run query bool false "Plan without executing mutations"
// @Success 200 {object} populate.Report "Population report"
// @Failure 404 {object} map[string]string "Subject Not Found"
// @Failure 503 {object} map[string]string "Pack Source Unavailable"
// @Router /populate/{subject} [post]
func (h *Handler) HandlePopulateSubject(c *fiber.Ctx) error {
	principal := c.Params("subject")
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.PopulateSubject(c.Context(), principal, optionsFromQuery(c))
	if err != nil {
		l.Error("Populate failed", zap.String("subject", principal), zap.Error(err))
		return errorResponse(c, err)
	}

	return c.JSON(report)
}

// HandlePopulateAll reconciles every enabled subject in the directory.
// @Summary Populate all subjects
// @Description Reconciles every enabled subject's calendar. Failing subjects are reported, not fatal.
// @Tags populate
// @Produce json
// @Param category query string false "Restrict to one pack category"
// @Param location query string false "Restrict to holidays observed near this location"
// @Param dry_run query bool false "Plan without executing mutations"
// @Success 200 {object} populate.BatchReport "Batch report"
// @Failure 503 {object} map[string]string "Pack Source Unavailable"
// @Router /populate [post]
func (h *Handler) HandlePopulateAll(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	batch, err := h.service.PopulateAll(c.Context(), optionsFromQuery(c))
	if err != nil {
		l.Error("Batch populate failed", zap.Error(err))
		return errorResponse(c, err)
	}

	return c.JSON(batch)
}

// HandleClearSubject removes all pack-managed holiday events from a
// subject's calendar.
// @Summary Clear one subject
// @Description Deletes every pack-managed holiday event from the subject's calendar.
// @Tags populate
// @Produce json
// @Param subject path string true "Subject principal (UPN or ID)"
// @Success 200 {object} map[string]int "Deletion count"
// @Failure 404 {object} map[string]string "Subject Not Found"
// @Failure 503 {object} map[string]string "Pack Source Unavailable"
// @Router /clear/{subject} [post]
func (h *Handler) HandleClearSubject(c *fiber.Ctx) error {
	principal := c.Params("subject")
	l := logger.WithRayID(h.service.logger, c)

	deleted, err := h.service.Clear(c.Context(), principal)
	if err != nil {
		l.Error("Clear failed", zap.String("subject", principal), zap.Error(err))
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{"deleted": deleted})
}

// errorResponse maps service errors onto HTTP statuses.
func errorResponse(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, holiday.ErrSourceUnavailable):
		status = fiber.StatusServiceUnavailable
	case errors.Is(err, graph.ErrUserNotFound):
		status = fiber.StatusNotFound
	}

	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}
