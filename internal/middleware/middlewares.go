package middleware

import (
	"github.com/deppfellow/bff-service/internal/server"
)

// Middlewares groups all middleware components used by the HTTP server,
// built once from the application container and reused by the router.
type Middlewares struct {
	// Global holds CORS, request logging, recovery, secure headers
	// and the global error handler.
	Global *GlobalMiddlewares

	// ContextEnhancer attaches a request-scoped logger to every request.
	ContextEnhancer *ContextEnhancer

	// Tracing wires New Relic transactions and custom attributes.
	Tracing *TracingMiddleware

	// Session checks out one database connection per API request.
	Session *SessionMiddleware
}

// NewMiddlewares constructs all middleware components using the application container.
//
// When New Relic is not configured the tracing middleware degrades into a no-op.
func NewMiddlewares(s *server.Server) *Middlewares {
	return &Middlewares{
		Global:          NewGlobalMiddlewares(s.Config),
		ContextEnhancer: NewContextEnhancer(s.Logger),
		Tracing:         NewTracingMiddleware(s.LoggerService.GetApplication()),
		Session:         NewSessionMiddleware(s.DB),
	}
}
