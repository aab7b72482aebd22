// Package middleware provides observability middleware for the docs
// server: Prometheus request metrics and OpenTelemetry tracing.
//
// Both middlewares are configured with functional options and compose
// with any net/http router:
//
//	r.Use(middleware.Prometheus())
//	r.Use(middleware.OTel(middleware.WithTracerName("treeline-docs")))
package middleware
