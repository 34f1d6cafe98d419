package router

import (
	"github.com/deppfellow/bff-service/internal/handler"
	"github.com/deppfellow/bff-service/internal/server"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers endpoints that are not part of the API:
// health, the docs UI and the static assets it loads (openapi.json).
func registerSystemRoutes(r *echo.Echo, s *server.Server, h *handler.Handlers) {
	r.GET("/health", h.Health.CheckHealth)

	r.Static("/static", s.Config.Server.StaticDir)

	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
