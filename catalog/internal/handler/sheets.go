package handler

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/library-catalog/catalog/internal/importer"
)

const (
	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	mimeCSV  = "text/csv; charset=utf-8"
)

type upload struct {
	multipart.File
	format importer.Format
}

// openSheet opens the multipart "file" field. The format comes from the
// "format" form value when present, from the file extension otherwise.
func (h *Handler) openSheet(c echo.Context) (*upload, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "file is required")
	}
	var format importer.Format
	if v := c.FormValue("format"); v != "" {
		format, err = importer.ParseFormat(v)
	} else {
		format, err = importer.DetectFormat(fh.Filename)
	}
	if err != nil {
		return nil, h.httpError(err)
	}
	f, err := fh.Open()
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return &upload{File: f, format: format}, nil
}

// PreviewSheet godoc
// @Summary parse and validate a sheet without saving
// @Security BearerAuth
// @Accept multipart/form-data
// @Param file formData file true "xlsx or csv"
// @Success 200 {array} model.ParsedRow
// @Router /books/import/preview [post]
func (h *Handler) PreviewSheet(c echo.Context) error {
	sheet, err := h.openSheet(c)
	if err != nil {
		return err
	}
	defer sheet.Close()

	rows, err := h.catalogSvc.PreviewSheet(sheet, sheet.format)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, rows)
}

// ImportSheet godoc
// @Summary import the valid rows of a sheet
// @Security BearerAuth
// @Accept multipart/form-data
// @Param file formData file true "xlsx or csv"
// @Success 200 {object} model.ImportReport
// @Router /books/import [post]
func (h *Handler) ImportSheet(c echo.Context) error {
	sheet, err := h.openSheet(c)
	if err != nil {
		return err
	}
	defer sheet.Close()

	report, err := h.catalogSvc.ImportSheet(c.Request().Context(), session(c), sheet, sheet.format)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, report)
}

// ExportSheet godoc
// @Summary download the catalog
// @Security BearerAuth
// @Param format query string false "xlsx|csv"
// @Produce octet-stream
// @Router /books/export [get]
func (h *Handler) ExportSheet(c echo.Context) error {
	format, err := importer.ParseFormat(c.QueryParam("format"))
	if err != nil {
		return h.httpError(err)
	}
	var buf bytes.Buffer
	if err := h.catalogSvc.ExportSheet(c.Request().Context(), &buf, format); err != nil {
		return h.httpError(err)
	}
	contentType := mimeXLSX
	if format == importer.FormatCSV {
		contentType = mimeCSV
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="library.%s"`, format))
	return c.Blob(http.StatusOK, contentType, buf.Bytes())
}
