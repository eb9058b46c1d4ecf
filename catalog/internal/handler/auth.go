package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/library-catalog/catalog/internal/model"
)

// Login godoc
// @Summary exchange credentials for a bearer token
// @Param credentials body model.LoginRequest true "credentials"
// @Success 200 {object} model.LoginResponse
// @Failure 401 {object} echo.HTTPError
// @Router /auth/login [post]
func (h *Handler) Login(c echo.Context) error {
	var req model.LoginRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	resp, err := h.catalogSvc.Login(c.Request().Context(), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, resp)
}
