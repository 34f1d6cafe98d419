package handler

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/deppfellow/bff-service/internal/config"
	"github.com/deppfellow/bff-service/internal/database"
	"github.com/deppfellow/bff-service/internal/middleware"
	"github.com/deppfellow/bff-service/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type sqlOpener struct {
	db *sql.DB
}

func (o sqlOpener) Session(ctx context.Context) (*sql.Conn, error) {
	return o.db.Conn(ctx)
}

// newTestServer returns an application container backed by sqlmock. No
// query expectations are set: handler tests run against fake services.
func newTestServer(t *testing.T) (*server.Server, *sql.DB) {
	t.Helper()

	db, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	logger := zerolog.Nop()
	return &server.Server{
		Config: config.DefaultConfig(),
		Logger: &logger,
		DB:     &database.Database{SQL: db},
	}, db
}

// newTestEcho wires the error funnel and a per-request session the way the
// router does, with register mounting the routes under test on /api/v1.
func newTestEcho(t *testing.T, register func(s *server.Server, v1 *echo.Group)) *echo.Echo {
	t.Helper()

	s, db := newTestServer(t)
	global := middleware.NewGlobalMiddlewares(s.Config)

	e := echo.New()
	e.HTTPErrorHandler = global.GlobalErrorHandler
	e.Use(middleware.RequestID(), middleware.NewContextEnhancer(s.Logger).EnhanceContext())

	register(s, e.Group("/api/v1", middleware.NewSessionMiddleware(sqlOpener{db: db}).Session()))
	return e
}

func doRequest(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}
