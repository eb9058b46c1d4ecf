package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/library-catalog/catalog/internal/model"
)

func (h *Handler) ListWishlist(c echo.Context) error {
	items, err := h.catalogSvc.ListWishlist(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) AddWishlist(c echo.Context) error {
	var in model.WishlistInput
	if err := bind(c, &in); err != nil {
		return err
	}
	item, err := h.catalogSvc.AddWishlist(c.Request().Context(), session(c), in)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, item)
}

func (h *Handler) UpdateWishlist(c echo.Context) error {
	var patch model.WishlistPatch
	if err := bind(c, &patch); err != nil {
		return err
	}
	if err := h.catalogSvc.UpdateWishlist(c.Request().Context(), session(c), c.Param("id"), patch); err != nil {
		return h.httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) DeleteWishlist(c echo.Context) error {
	if err := h.catalogSvc.DeleteWishlist(c.Request().Context(), session(c), c.Param("id")); err != nil {
		return h.httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
