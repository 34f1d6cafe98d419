// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns
// such as request logging, CORS, request ids, panic recovery,
// tracing and the per-request database session
package middleware
