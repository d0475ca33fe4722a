// Package middleware holds the HTTP middleware stack: request IDs,
// logging, panic recovery, CORS, per-IP rate limiting, and bearer-token
// authentication. Composition is the router's job.
package middleware

import "net/http"

// Middleware is a function that wraps an http.Handler.
type Middleware func(http.Handler) http.Handler
