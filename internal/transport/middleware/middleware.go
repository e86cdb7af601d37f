// Package middleware holds the HTTP middleware of the blog API: request ids,
// request logging, panic recovery, CORS for the browser client, per-IP rate
// limits and cookie sessions.
package middleware

import "net/http"

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler
