// Package middleware provides reusable HTTP middleware for the share gallery server.
package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// corsMaxAge is how long, in seconds, a browser may reuse a preflight answer.
const corsMaxAge = 600

// NewCORSHandler returns a middleware that lets the listed origins call the
// share API. Each entry must be a full origin (scheme + host, no trailing
// slash). Cards are edited with PATCH and removed with DELETE, and a
// rate-limited write exposes Retry-After so a cross-origin editor can back off.
func NewCORSHandler(allowedOrigins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
		ExposedHeaders: []string{"Retry-After"},
		MaxAge:         corsMaxAge,
	})
	return func(next http.Handler) http.Handler {
		return c.Handler(next)
	}
}
