package packs

import (
	"errors"

	"holiday-manager/core/holiday"
	"holiday-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for pack administration.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the packs routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/packs")
	group.Get("/", h.HandleListPacks)
	group.Put("/:name", h.HandleUploadPack)
	group.Delete("/:name", h.HandleDeletePack)
}

// HandleListPacks summarizes every pack in the bucket.
// @Summary List packs
// @Description Lists every holiday pack with its id, category, and record count.
// @Tags packs
// @Produce json
// @Success 200 {array} packs.Summary "Pack summaries"
// @Failure 503 {object} map[string]string "Pack Source Unavailable"
// @Router /packs [get]
func (h *Handler) HandleListPacks(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	summaries, err := h.service.List(c.Context())
	if err != nil {
		l.Error("Pack listing failed", zap.Error(err))
		return errorResponse(c, err)
	}

	return c.JSON(summaries)
}

// HandleUploadPack validates and stores a pack document.
// @Summary Upload a pack
// @Description Validates a pack document and stores it under the given name. Assigns an ID when absent.
// @Tags packs
// @Accept json
// @Produce json
// @Param name path string true "Pack object name"
// @Success 200 {object} holiday.Pack "Stored pack"
// @Failure 400 {object} map[string]string "Malformed Pack"
// @Router /packs/{name} [put]
func (h *Handler) HandleUploadPack(c *fiber.Ctx) error {
	name := c.Params("name")
	l := logger.WithRayID(h.service.logger, c)

	pack, err := h.service.Upload(c.Context(), name, c.Body())
	if err != nil {
		l.Error("Pack upload failed", zap.String("name", name), zap.Error(err))
		return errorResponse(c, err)
	}

	return c.JSON(pack)
}

// HandleDeletePack removes a pack object.
// @Summary Delete a pack
// @Description Removes a pack object from the bucket.
// @Tags packs
// @Produce json
// @Param name path string true "Pack object name"
// @Success 200 {object} map[string]string "Deletion confirmation"
// @Failure 404 {object} map[string]string "Pack Not Found"
// @Router /packs/{name} [delete]
func (h *Handler) HandleDeletePack(c *fiber.Ctx) error {
	name := c.Params("name")
	l := logger.WithRayID(h.service.logger, c)

	if err := h.service.Delete(c.Context(), name); err != nil {
		l.Error("Pack deletion failed", zap.String("name", name), zap.Error(err))
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{"deleted": name})
}

// errorResponse maps service errors onto HTTP statuses.
func errorResponse(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, holiday.ErrSourceUnavailable):
		status = fiber.StatusServiceUnavailable
	case errors.Is(err, holiday.ErrMalformedRecord):
		status = fiber.StatusBadRequest
	case errors.Is(err, ErrPackNotFound):
		status = fiber.StatusNotFound
	}

	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}
