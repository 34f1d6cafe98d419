package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deppfellow/bff-service/internal/config"
	"github.com/deppfellow/bff-service/internal/errs"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func newErrorEcho(handler echo.HandlerFunc) *echo.Echo {
	e := echo.New()
	global := NewGlobalMiddlewares(config.DefaultConfig())
	e.HTTPErrorHandler = global.GlobalErrorHandler
	e.Use(global.CORS())
	e.GET("/thing", handler)
	return e
}

func TestGlobalErrorHandler(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{
			name:   "not found",
			err:    errs.NewNotFoundError("User not found", nil),
			status: http.StatusNotFound,
			body:   `{"detail":"User not found"}`,
		},
		{
			name:   "wrapped conflict",
			err:    fmt.Errorf("create: %w", errs.NewConflictError("Email already registered", nil)),
			status: http.StatusConflict,
			body:   `{"detail":"Email already registered"}`,
		},
		{
			name:   "validation",
			err:    errs.NewBadRequestError("Validation failed", nil, []errs.FieldError{{Field: "email", Error: "is required"}}),
			status: http.StatusBadRequest,
			body:   `{"detail":"Validation failed","errors":[{"field":"email","error":"is required"}]}`,
		},
		{
			name:   "foreign key violation",
			err:    pkgerrors.Wrap(&pgconn.PgError{Code: "23503", TableName: "items", ConstraintName: "items_owner_id_fkey"}, "failed to create item"),
			status: http.StatusBadRequest,
			body:   `{"detail":"The referenced Owner does not exist"}`,
		},
		{
			name:   "unknown error is hidden",
			err:    pkgerrors.New("dial tcp 10.0.0.1:5432: connection refused"),
			status: http.StatusInternalServerError,
			body:   `{"detail":"Internal server error"}`,
		},
		{
			name:   "echo error keeps status",
			err:    echo.NewHTTPError(http.StatusRequestEntityTooLarge, "Request Entity Too Large"),
			status: http.StatusRequestEntityTooLarge,
			body:   `{"detail":"Request Entity Too Large"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newErrorEcho(func(c echo.Context) error { return tt.err })

			rec := serve(e, http.MethodGet, "/thing")
			assert.Equal(t, tt.status, rec.Code)
			assert.JSONEq(t, tt.body, rec.Body.String())
			assert.Equal(t, tt.status, StatusFromError(tt.err))
		})
	}
}

func TestGlobalErrorHandler_UnknownRoute(t *testing.T) {
	e := newErrorEcho(func(c echo.Context) error { return nil })

	rec := serve(e, http.MethodGet, "/missing")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"detail":"Not Found"}`, rec.Body.String())
}

func TestGlobalErrorHandler_MethodNotAllowed(t *testing.T) {
	e := newErrorEcho(func(c echo.Context) error { return nil })

	rec := serve(e, http.MethodDelete, "/thing")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.JSONEq(t, `{"detail":"Method Not Allowed"}`, rec.Body.String())
}

func TestCORS_HeadersOnErrorResponses(t *testing.T) {
	e := newErrorEcho(func(c echo.Context) error { return errs.NewNotFoundError("User not found", nil) })

	req := httptest.NewRequest(http.MethodGet, "/thing", nil)
	req.Header.Set(echo.HeaderOrigin, "http://localhost:3000")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

func TestRequestID(t *testing.T) {
	e := echo.New()
	e.Use(RequestID())

	var seen string
	e.GET("/", func(c echo.Context) error {
		seen = GetRequestID(c)
		return c.NoContent(http.StatusOK)
	})

	rec := serve(e, http.MethodGet, "/")
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}
