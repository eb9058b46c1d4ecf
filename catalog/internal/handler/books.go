package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Astemirdum/library-catalog/catalog/internal/model"
)

// ListBooks godoc
// @Summary page through the catalog
// @Param size query int false "page size"
// @Param after query string false "id of the last book of the previous page"
// @Param sort query string false "title|internalId|dateAdded|readingStatus|publishingHouse"
// @Param dir query string false "asc|desc"
// @Param filter query []string false "field:value equality filters"
// @Success 200 {object} model.BookPage
// @Router /books [get]
func (h *Handler) ListBooks(c echo.Context) error {
	var (
		err error
		q   = model.BookQuery{
			SortField: c.QueryParam("sort"),
			After:     c.QueryParam("after"),
		}
	)
	if sizeParam := c.QueryParam("size"); sizeParam != "" {
		if q.PageSize, err = strconv.Atoi(sizeParam); err != nil || q.PageSize < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "size is invalid")
		}
	}
	if q.Direction, err = parseDirection(c.QueryParam("dir")); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	for _, f := range c.QueryParams()["filter"] {
		field, value, ok := strings.Cut(f, ":")
		if !ok || field == "" {
			return echo.NewHTTPError(http.StatusBadRequest, "filter is invalid")
		}
		q.Filters = append(q.Filters, model.Filter{Field: field, Value: value})
	}

	page, err := h.catalogSvc.ListBooks(c.Request().Context(), q)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, page)
}

func parseDirection(v string) (model.SortDirection, error) {
	switch d := model.SortDirection(v); d {
	case "":
		return model.SortAsc, nil
	case model.SortAsc, model.SortDesc:
		return d, nil
	}
	return "", errors.New("dir is invalid")
}

// Browse godoc
// @Summary filter and sort the whole catalog
// @Param search query string false "free text"
// @Param genre query string false "genre"
// @Param subGenre query string false "sub genre"
// @Param status query string false "reading status"
// @Param loaned query bool false "loaned or available"
// @Param sort query string false "internalId|title|authors|genres|readingStatus"
// @Param dir query string false "asc|desc"
// @Success 200 {array} model.Book
// @Router /books/browse [get]
func (h *Handler) Browse(c echo.Context) error {
	q := model.BrowseQuery{
		Search:    c.QueryParam("search"),
		Genre:     c.QueryParam("genre"),
		SubGenre:  c.QueryParam("subGenre"),
		Status:    model.ReadingStatus(c.QueryParam("status")),
		SortField: c.QueryParam("sort"),
	}
	if q.Status != "" && !q.Status.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "status is invalid")
	}
	if loanedParam := c.QueryParam("loaned"); loanedParam != "" {
		loaned, err := strconv.ParseBool(loanedParam)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "loaned is invalid")
		}
		q.Loaned = &loaned
	}
	var err error
	if q.Direction, err = parseDirection(c.QueryParam("dir")); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	books, err := h.catalogSvc.Browse(c.Request().Context(), q)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) GetBook(c echo.Context) error {
	book, err := h.catalogSvc.GetBook(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}

// BookDetails godoc
// @Summary a book with its loan history
// @Param id path string true "book id"
// @Success 200 {object} model.BookDetails
// @Router /books/{id}/details [get]
func (h *Handler) BookDetails(c echo.Context) error {
	details, err := h.catalogSvc.BookDetails(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, details)
}

// CreateBook godoc
// @Summary add a book
// @Security BearerAuth
// @Param book body model.BookInput true "book"
// @Success 201 {object} model.Book
// @Router /books [post]
func (h *Handler) CreateBook(c echo.Context) error {
	var in model.BookInput
	if err := bind(c, &in); err != nil {
		return err
	}
	book, err := h.catalogSvc.CreateBook(c.Request().Context(), session(c), in)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, book)
}

func (h *Handler) UpdateBook(c echo.Context) error {
	var patch model.BookPatch
	if err := bind(c, &patch); err != nil {
		return err
	}
	book, err := h.catalogSvc.UpdateBook(c.Request().Context(), session(c), c.Param("id"), patch)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) DeleteBook(c echo.Context) error {
	if err := h.catalogSvc.DeleteBook(c.Request().Context(), session(c), c.Param("id")); err != nil {
		return h.httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) NextInternalID(c echo.Context) error {
	id, err := h.catalogSvc.NextInternalID(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"internalId": id})
}

func (h *Handler) Stats(c echo.Context) error {
	st, err := h.catalogSvc.Stats(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, st)
}
