package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/library-catalog/catalog/internal/model"
)

// ListActivity godoc
// @Summary audit trail, newest first
// @Security BearerAuth
// @Success 200 {array} model.ActivityLogEntry
// @Router /activity [get]
func (h *Handler) ListActivity(c echo.Context) error {
	entries, err := h.catalogSvc.ListActivity(c.Request().Context(), session(c))
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, entries)
}

func (h *Handler) AddManualActivity(c echo.Context) error {
	var req model.ManualActivityRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	entry, err := h.catalogSvc.AddManualActivity(c.Request().Context(), session(c), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, entry)
}

func (h *Handler) UpdateActivity(c echo.Context) error {
	var patch model.ActivityPatch
	if err := bind(c, &patch); err != nil {
		return err
	}
	if err := h.catalogSvc.UpdateActivity(c.Request().Context(), session(c), c.Param("id"), patch); err != nil {
		return h.httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) DeleteActivity(c echo.Context) error {
	if err := h.catalogSvc.DeleteActivity(c.Request().Context(), session(c), c.Param("id")); err != nil {
		return h.httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
