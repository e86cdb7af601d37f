package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/WillSanton/WebSite/internal/config"
)

// CORS answers preflight requests and decorates responses for allowed
// origins. The request origin is echoed rather than "*" because browsers
// refuse credentialed (session cookie) responses with a wildcard origin.
// Exposed headers let the client read the request id and the archive
// filename of downloads.
func CORS(cfg config.CORSConfig) Middleware {
	allowAny, allowed := parseOrigins(cfg.AllowedOrigins)
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			h := w.Header()
			h.Add("Vary", "Origin")

			ok := allowAny || allowed[origin]
			if ok {
				h.Set("Access-Control-Allow-Origin", origin)
				if cfg.AllowCredentials {
					h.Set("Access-Control-Allow-Credentials", "true")
				}
				if cfg.ExposedHeaders != "" {
					h.Set("Access-Control-Expose-Headers", cfg.ExposedHeaders)
				}
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				if ok {
					h.Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
					h.Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)
					h.Set("Access-Control-Max-Age", maxAge)
				}
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func parseOrigins(list string) (bool, map[string]bool) {
	allowed := make(map[string]bool)
	for _, o := range strings.Split(list, ",") {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		switch o {
		case "":
		case "*":
			return true, nil
		default:
			allowed[o] = true
		}
	}
	return false, allowed
}
