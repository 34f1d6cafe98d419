// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers
package router

import (
	"github.com/deppfellow/bff-service/internal/handler"
	"github.com/deppfellow/bff-service/internal/middleware"
	"github.com/deppfellow/bff-service/internal/server"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

// NewRouter builds the Echo instance: global middleware, the error funnel,
// system routes and the versioned API.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.Debug = s.Config.Primary.Debug

	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	// "/api/v1/users/" and "/api/v1/users" route the same.
	router.Pre(echoMiddleware.RemoveTrailingSlash())

	router.Use(
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, s, h)

	v1 := router.Group("/api/v1", middlewares.Session.Session())
	registerV1Routes(v1, h)

	return router
}

func registerV1Routes(v1 *echo.Group, h *handler.Handlers) {
	h.Users.Register(v1.Group("/users"))
	h.Items.Register(v1.Group("/items"))
}
