package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/deppfellow/bff-service/internal/config"
	"github.com/deppfellow/bff-service/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnhanceContext_LoggerInEchoAndRequestContext(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf)

	e := echo.New()
	e.Use(RequestID(), NewContextEnhancer(&base).EnhanceContext())
	e.GET("/users/:id", func(c echo.Context) error {
		assert.NotNil(t, GetLogger(c))
		zerolog.Ctx(c.Request().Context()).Info().Msg("inside")
		return c.NoContent(http.StatusOK)
	})

	serve(e, http.MethodGet, "/users/1")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "inside", entry["message"])
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/users/:id", entry["path"])
	assert.NotEmpty(t, entry["request_id"])
}

func TestRequestLogger_OneLinePerRequestWithFinalStatus(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf)
	global := NewGlobalMiddlewares(config.DefaultConfig())

	e := echo.New()
	e.HTTPErrorHandler = global.GlobalErrorHandler
	e.Use(NewContextEnhancer(&base).EnhanceContext(), global.RequestLogger())
	e.GET("/users/:id", func(c echo.Context) error {
		return errs.NewNotFoundError("User not found", nil)
	})

	serve(e, http.MethodGet, "/users/7")

	var apiLines []map[string]any
	for _, line := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(line, &entry))
		if entry["message"] == "API" {
			apiLines = append(apiLines, entry)
		}
	}

	require.Len(t, apiLines, 1)
	assert.Equal(t, float64(http.StatusNotFound), apiLines[0]["status"])
	assert.Equal(t, "warn", apiLines[0]["level"])
	assert.Equal(t, "/users/7", apiLines[0]["uri"])
	assert.Contains(t, apiLines[0], "latency")
}

func TestGetLogger_FallbackIsNop(t *testing.T) {
	e := echo.New()
	c := e.NewContext(nil, nil)
	assert.NotNil(t, GetLogger(c))
}
