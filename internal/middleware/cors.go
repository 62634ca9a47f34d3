// Package middleware provides reusable HTTP middleware for the namebook server.
package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// NewCORSHandler returns a middleware that applies CORS headers for
// allowedOrigins. Each entry must be a full origin (scheme + host, no
// trailing slash). With no origins configured the middleware is a
// pass-through, so same-origin form posts work without any CORS headers.
func NewCORSHandler(allowedOrigins []string) func(http.Handler) http.Handler {
	if len(allowedOrigins) == 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler
}
