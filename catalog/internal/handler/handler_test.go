package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-catalog/catalog/internal/errs"
	"github.com/Astemirdum/library-catalog/catalog/internal/handler"
	"github.com/Astemirdum/library-catalog/catalog/internal/model"
	"github.com/Astemirdum/library-catalog/pkg/auth"
	md "github.com/Astemirdum/library-catalog/pkg/middleware"
	"github.com/Astemirdum/library-catalog/pkg/validate"

	service_mocks "github.com/Astemirdum/library-catalog/catalog/internal/handler/mocks"
)

var (
	admin    = auth.Session{UserID: "u-1", Email: "owner@example.com", IsAdmin: true}
	loanDate = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
)

type response struct {
	expectedCode int
	expectedBody string
}

func asAdmin(r *http.Request) *http.Request {
	return r.WithContext(auth.WithSession(r.Context(), admin))
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validate.NewCustomValidator()
	return e
}

func TestHandler_ListBooks(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *service_mocks.MockCatalogService)

	var tests = []struct {
		name         string
		query        string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name:  "ok",
			query: "?size=1&sort=title&dir=desc&filter=genres:sf&after=b-0",
			mockBehavior: func(r *service_mocks.MockCatalogService) {
				r.EXPECT().
					ListBooks(context.Background(), model.BookQuery{
						PageSize:  1,
						SortField: "title",
						Direction: model.SortDesc,
						After:     "b-0",
						Filters:   []model.Filter{{Field: "genres", Value: "sf"}},
					}).
					Return(model.BookPage{
						Items: []model.Book{{
							ID:         "b-1",
							InternalID: "7",
							Title:      "Dune",
							Authors:    []model.Author{},
							Genres:     []string{"sf"},
							SubGenres:  []string{},
							DateAdded:  loanDate,
						}},
						Next: "b-1",
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"items":[{"id":"b-1","internalId":"7","title":"Dune","authors":[],"genres":["sf"],"subGenres":[],"dateAdded":"2024-05-01T10:00:00Z","currentLoan":null}],"next":"b-1"}`,
			},
		},
		{
			name:         "err. size",
			query:        "?size=abc",
			mockBehavior: func(r *service_mocks.MockCatalogService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"size is invalid"}`,
			},
		},
		{
			name:         "err. dir",
			query:        "?dir=up",
			mockBehavior: func(r *service_mocks.MockCatalogService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"dir is invalid"}`,
			},
		},
		{
			name:  "err. unknown sort field",
			query: "?sort=color",
			mockBehavior: func(r *service_mocks.MockCatalogService) {
				r.EXPECT().
					ListBooks(context.Background(), model.BookQuery{SortField: "color", Direction: model.SortAsc}).
					Return(model.BookPage{}, errors.Wrapf(errs.ErrBadQuery, "sort field %q", "color"))
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"sort field \"color\": invalid query"}`,
			},
		},
		{
			name:  "err. internal",
			query: "",
			mockBehavior: func(r *service_mocks.MockCatalogService) {
				r.EXPECT().
					ListBooks(context.Background(), model.BookQuery{Direction: model.SortAsc}).
					Return(model.BookPage{}, errors.New("db internal"))
			},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"db internal"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockCatalogService(c)
			h := handler.New(svc, zap.NewExample().Named("test"))

			e := newEcho()
			e.GET("/books", h.ListBooks)

			r := httptest.NewRequest(http.MethodGet, "/books"+tt.query, http.NoBody)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_Browse(t *testing.T) {
	t.Parallel()
	loaned := true
	type mockBehavior func(r *service_mocks.MockCatalogService)

	var tests = []struct {
		name         string
		query        string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name:  "ok",
			query: "?search=dune&genre=sf&status=read&loaned=true&sort=internalId&dir=desc",
			mockBehavior: func(r *service_mocks.MockCatalogService) {
				r.EXPECT().
					Browse(context.Background(), model.BrowseQuery{
						Search:    "dune",
						Genre:     "sf",
						Status:    model.ReadingStatusRead,
						Loaned:    &loaned,
						SortField: "internalId",
						Direction: model.SortDesc,
					}).
					Return([]model.Book{}, nil)
			},
			response: response{expectedCode: http.StatusOK, expectedBody: `[]`},
		},
		{
			name:         "err. status",
			query:        "?status=finished",
			mockBehavior: func(r *service_mocks.MockCatalogService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"status is invalid"}`,
			},
		},
		{
			name:         "err. loaned",
			query:        "?loaned=maybe",
			mockBehavior: func(r *service_mocks.MockCatalogService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"loaned is invalid"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockCatalogService(c)
			h := handler.New(svc, zap.NewExample().Named("test"))

			e := newEcho()
			e.GET("/books/browse", h.Browse)

			r := httptest.NewRequest(http.MethodGet, "/books/browse"+tt.query, http.NoBody)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_CreateBook(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *service_mocks.MockCatalogService)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			body: `{"internalId":"7","title":"Dune"}`,
			mockBehavior: func(r *service_mocks.MockCatalogService) {
				r.EXPECT().
					CreateBook(gomock.Any(), admin, model.BookInput{InternalID: "7", Title: "Dune"}).
					Return(model.Book{
						ID:         "b-1",
						InternalID: "7",
						Title:      "Dune",
						Authors:    []model.Author{},
						Genres:     []string{},
						SubGenres:  []string{},
						DateAdded:  loanDate,
					}, nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"id":"b-1","internalId":"7","title":"Dune","authors":[],"genres":[],"subGenres":[],"dateAdded":"2024-05-01T10:00:00Z","currentLoan":null}`,
			},
		},
		{
			name:         "err. title required",
			body:         `{"internalId":"7"}`,
			mockBehavior: func(r *service_mocks.MockCatalogService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"Key: 'BookInput.Title' Error:Field validation for 'Title' failed on the 'required' tag"}`,
			},
		},
		{
			name: "err. conflict",
			body: `{"title":"Dune"}`,
			mockBehavior: func(r *service_mocks.MockCatalogService) {
				r.EXPECT().
					CreateBook(gomock.Any(), admin, model.BookInput{Title: "Dune"}).
					Return(model.Book{}, errors.Wrap(errs.ErrAlreadyExists, "create book"))
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"create book: already exists"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockCatalogService(c)
			h := handler.New(svc, zap.NewExample().Named("test"))

			e := newEcho()
			e.POST("/books", h.CreateBook)

			r := asAdmin(httptest.NewRequest(http.MethodPost, "/books", strings.NewReader(tt.body)))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_UpdateDeleteBook(t *testing.T) {
	t.Parallel()
	title := "Dune Messiah"
	type mockBehavior func(r *service_mocks.MockCatalogService)

	var tests = []struct {
		name         string
		method       string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name:   "patch ok",
			method: http.MethodPatch,
			body:   `{"title":"Dune Messiah"}`,
			mockBehavior: func(r *service_mocks.MockCatalogService) {
				r.EXPECT().
					UpdateBook(gomock.Any(), admin, "b-1", model.BookPatch{Title: &title}).
					Return(model.Book{ID: "b-1", Title: title, Authors: []model.Author{}, Genres: []string{}, SubGenres: []string{}, DateAdded: loanDate}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"id":"b-1","internalId":"","title":"Dune Messiah","authors":[],"genres":[],"subGenres":[],"dateAdded":"2024-05-01T10:00:00Z","currentLoan":null}`,
			},
		},
		{
			name:   "patch empty",
			method: http.MethodPatch,
			body:   `{}`,
			mockBehavior: func(r *service_mocks.MockCatalogService) {
				r.EXPECT().
					UpdateBook(gomock.Any(), admin, "b-1", model.BookPatch{}).
					Return(model.Book{}, errs.ErrEmptyPatch)
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"nothing to update"}`,
			},
		},
		{
			name:   "delete ok",
			method: http.MethodDelete,
			mockBehavior: func(r *service_mocks.MockCatalogService) {
				r.EXPECT().DeleteBook(gomock.Any(), admin, "b-1").Return(nil)
			},
			response: response{expectedCode: http.StatusNoContent},
		},
		{
			name:   "delete missing",
			method: http.MethodDelete,
			mockBehavior: func(r *service_mocks.MockCatalogService) {
				r.EXPECT().DeleteBook(gomock.Any(), admin, "b-1").Return(errs.ErrNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"not found"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockCatalogService(c)
			h := handler.New(svc, zap.NewExample().Named("test"))

			e := newEcho()
			e.PATCH("/books/:id", h.UpdateBook)
			e.DELETE("/books/:id", h.DeleteBook)

			r := asAdmin(httptest.NewRequest(tt.method, "/books/b-1", strings.NewReader(tt.body)))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_Router(t *testing.T) {
	t.Parallel()
	tokens := auth.NewTokenManager(auth.Config{Secret: "s", TTL: time.Hour})
	readerToken, err := tokens.Issue(auth.Session{UserID: "u-2", Email: "guest@example.com"})
	require.NoError(t, err)

	var tests = []struct {
		name          string
		method        string
		path          string
		authorization string
		response      response
	}{
		{
			name:     "health",
			method:   http.MethodGet,
			path:     "/manage/health",
			response: response{expectedCode: http.StatusOK, expectedBody: "OK"},
		},
		{
			name:     "anonymous create",
			method:   http.MethodPost,
			path:     "/api/v1/books",
			response: response{expectedCode: http.StatusUnauthorized, expectedBody: `{"message":"sign in required"}`},
		},
		{
			name:          "reader reads activity",
			method:        http.MethodGet,
			path:          "/api/v1/activity",
			authorization: "Bearer " + readerToken,
			response:      response{expectedCode: http.StatusForbidden, expectedBody: `{"message":"admin only"}`},
		},
		{
			name:          "reader loans",
			method:        http.MethodPost,
			path:          "/api/v1/books/b-1/loan",
			authorization: "Bearer " + readerToken,
			response:      response{expectedCode: http.StatusForbidden, expectedBody: `{"message":"admin only"}`},
		},
		{
			name:     "anonymous export",
			method:   http.MethodGet,
			path:     "/api/v1/books/export?format=csv",
			response: response{expectedCode: http.StatusUnauthorized, expectedBody: `{"message":"sign in required"}`},
		},
		{
			name:          "reader export",
			method:        http.MethodGet,
			path:          "/api/v1/books/export?format=csv",
			authorization: "Bearer " + readerToken,
			response:      response{expectedCode: http.StatusForbidden, expectedBody: `{"message":"admin only"}`},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockCatalogService(c)
			e := handler.New(svc, zap.NewExample().Named("test")).NewRouter(tokens)

			r := httptest.NewRequest(tt.method, tt.path, http.NoBody)
			if tt.authorization != "" {
				r.Header.Set(md.AuthorizationHeader, tt.authorization)
			}
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}
