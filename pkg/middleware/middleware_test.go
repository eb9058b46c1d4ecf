package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Astemirdum/library-catalog/pkg/auth"
	md "github.com/Astemirdum/library-catalog/pkg/middleware"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestAuthentication(t *testing.T) {
	t.Parallel()
	tokens := auth.NewTokenManager(auth.Config{Secret: "s", TTL: time.Hour})
	adminToken, err := tokens.Issue(auth.Session{UserID: "1", Email: "a@x.io", IsAdmin: true})
	require.NoError(t, err)
	readerToken, err := tokens.Issue(auth.Session{UserID: "2", Email: "r@x.io"})
	require.NoError(t, err)

	type response struct {
		expectedCode int
		expectedBody string
	}
	tests := []struct {
		name          string
		authorization string
		path          string
		response      response
	}{
		{
			name:     "anonymous read",
			path:     "/read",
			response: response{expectedCode: http.StatusOK, expectedBody: "anonymous"},
		},
		{
			name:          "reader read",
			authorization: "Bearer " + readerToken,
			path:          "/read",
			response:      response{expectedCode: http.StatusOK, expectedBody: "r@x.io"},
		},
		{
			name:     "anonymous write",
			path:     "/write",
			response: response{expectedCode: http.StatusUnauthorized, expectedBody: `{"message":"sign in required"}`},
		},
		{
			name:          "reader write",
			authorization: "Bearer " + readerToken,
			path:          "/write",
			response:      response{expectedCode: http.StatusForbidden, expectedBody: `{"message":"admin only"}`},
		},
		{
			name:          "admin write",
			authorization: "Bearer " + adminToken,
			path:          "/write",
			response:      response{expectedCode: http.StatusOK, expectedBody: "a@x.io"},
		},
		{
			name:          "bad scheme",
			authorization: "Basic abc",
			path:          "/read",
			response:      response{expectedCode: http.StatusUnauthorized, expectedBody: `{"message":"invalid authorization header"}`},
		},
		{
			name:          "bad token",
			authorization: "Bearer abc",
			path:          "/read",
			response:      response{expectedCode: http.StatusUnauthorized, expectedBody: `{"message":"invalid token"}`},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			whoami := func(c echo.Context) error {
				s, ok := auth.FromContext(c.Request().Context())
				if !ok {
					return c.String(http.StatusOK, "anonymous")
				}
				return c.String(http.StatusOK, s.Email)
			}
			e := echo.New()
			g := e.Group("", md.Authentication(tokens))
			g.GET("/read", whoami)
			g.GET("/write", whoami, md.RequireAdmin)

			r := httptest.NewRequest(http.MethodGet, tt.path, http.NoBody)
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
