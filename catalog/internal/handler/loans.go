package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/library-catalog/catalog/internal/model"
)

// LoanBook godoc
// @Summary lend a book
// @Security BearerAuth
// @Param id path string true "book id"
// @Param loan body model.LoanRequest true "loan"
// @Success 201 {object} model.LoanRecord
// @Failure 409 {object} echo.HTTPError "already loaned"
// @Router /books/{id}/loan [post]
func (h *Handler) LoanBook(c echo.Context) error {
	var req model.LoanRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	rec, err := h.catalogSvc.LoanBook(c.Request().Context(), session(c), c.Param("id"), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, rec)
}

// ReturnBook godoc
// @Summary take a loaned book back
// @Security BearerAuth
// @Param id path string true "book id"
// @Param return body model.ReturnRequest false "return date"
// @Success 200 {object} model.LoanRecord
// @Router /books/{id}/return [post]
func (h *Handler) ReturnBook(c echo.Context) error {
	var req model.ReturnRequest
	if c.Request().ContentLength != 0 {
		if err := bind(c, &req); err != nil {
			return err
		}
	}
	rec, err := h.catalogSvc.ReturnBook(c.Request().Context(), session(c), c.Param("id"), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *Handler) LoanHistory(c echo.Context) error {
	history, err := h.catalogSvc.GetLoanHistory(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, history)
}

func (h *Handler) ReconcileLoans(c echo.Context) error {
	res, err := h.catalogSvc.ReconcileLoans(c.Request().Context(), session(c))
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, res)
}
