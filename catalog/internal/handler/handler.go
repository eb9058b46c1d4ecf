package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-catalog/catalog/internal/errs"
	"github.com/Astemirdum/library-catalog/pkg/auth"
	md "github.com/Astemirdum/library-catalog/pkg/middleware"
	"github.com/Astemirdum/library-catalog/pkg/validate"
	_ "github.com/Astemirdum/library-catalog/swagger"
)

type Handler struct {
	catalogSvc CatalogService
	log        *zap.Logger
}

func New(catalogSvc CatalogService, log *zap.Logger) *Handler {
	return &Handler{
		catalogSvc: catalogSvc,
		log:        log.Named("handler"),
	}
}

// @title Library catalog API
// @version 1.0
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func (h *Handler) NewRouter(tokens md.TokenParser) *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
		md.Authentication(tokens),
	)

	api.POST("/auth/login", h.Login)

	api.GET("/books", h.ListBooks)
	api.GET("/books/browse", h.Browse)
	api.GET("/books/next-internal-id", h.NextInternalID)
	api.GET("/books/export", h.ExportSheet, md.RequireAdmin)
	api.POST("/books/import/preview", h.PreviewSheet, md.RequireAdmin)
	api.POST("/books/import", h.ImportSheet, md.RequireAdmin)
	api.GET("/books/:id", h.GetBook)
	api.GET("/books/:id/details", h.BookDetails)
	api.POST("/books", h.CreateBook, md.RequireAdmin)
	api.PATCH("/books/:id", h.UpdateBook, md.RequireAdmin)
	api.DELETE("/books/:id", h.DeleteBook, md.RequireAdmin)

	api.GET("/books/:id/loans", h.LoanHistory)
	api.POST("/books/:id/loan", h.LoanBook, md.RequireAdmin)
	api.POST("/books/:id/return", h.ReturnBook, md.RequireAdmin)
	api.POST("/loans/reconcile", h.ReconcileLoans, md.RequireAdmin)

	api.GET("/stats", h.Stats)

	api.GET("/wishlist", h.ListWishlist)
	api.POST("/wishlist", h.AddWishlist, md.RequireAdmin)
	api.PATCH("/wishlist/:id", h.UpdateWishlist, md.RequireAdmin)
	api.DELETE("/wishlist/:id", h.DeleteWishlist, md.RequireAdmin)

	activity := api.Group("/activity", md.RequireAdmin)
	activity.GET("", h.ListActivity)
	activity.POST("", h.AddManualActivity)
	activity.PATCH("/:id", h.UpdateActivity)
	activity.DELETE("/:id", h.DeleteActivity)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func session(c echo.Context) auth.Session {
	s, _ := auth.FromContext(c.Request().Context())
	return s
}

// bind decodes and validates the request body.
func bind(c echo.Context, v interface{}) error {
	if err := c.Bind(v); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(v); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// httpError maps service errors to status codes.
func (h *Handler) httpError(err error) *echo.HTTPError {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrAlreadyLoaned), errors.Is(err, errs.ErrAlreadyExists):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrNotLoaned),
		errors.Is(err, errs.ErrLoanerName),
		errors.Is(err, errs.ErrBookName),
		errors.Is(err, errs.ErrEmptyPatch),
		errors.Is(err, errs.ErrBadQuery),
		errors.Is(err, errs.ErrInvalidDate),
		errors.Is(err, errs.ErrUnsupportedFormat):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrInvalidCredentials):
		code = http.StatusUnauthorized
	case errors.Is(err, errs.ErrForbidden):
		code = http.StatusForbidden
	}
	if code == http.StatusInternalServerError {
		h.log.Error("internal", zap.Error(err))
	}
	return echo.NewHTTPError(code, err.Error())
}
