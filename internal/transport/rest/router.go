package rest

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/WillSanton/WebSite/internal/config"
	"github.com/WillSanton/WebSite/internal/metrics"
	"github.com/WillSanton/WebSite/internal/transport/middleware"
)

// Handlers groups the endpoint handlers mounted by NewRouter.
type Handlers struct {
	Auth      *AuthHandler
	Posts     *PostHandler
	Assistant *AssistantHandler
	Payment   *PaymentHandler
	Export    *ExportHandler
	Health    *HealthHandler
}

// RouterDeps holds the cross-cutting pieces of the HTTP stack.
type RouterDeps struct {
	Session     middleware.Middleware
	RateLimiter *middleware.RateLimiter
	CORS        config.CORSConfig
	RateLimit   config.RateLimitConfig
	Logger      *slog.Logger
}

// NewRouter builds the full HTTP handler: the API routes wrapped in the
// global middleware chain. Session runs before Logger so request logs carry
// the user id.
func NewRouter(h Handlers, deps RouterDeps) http.Handler {
	r := mux.NewRouter()

	r.Handle("/live", http.HandlerFunc(h.Health.Live)).Methods(http.MethodGet)
	r.Handle("/ready", http.HandlerFunc(h.Health.Ready)).Methods(http.MethodGet)
	r.Handle("/health", http.HandlerFunc(h.Health.Health)).Methods(http.MethodGet)
	r.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	limited := func(scope string, fn http.HandlerFunc) http.Handler {
		if deps.RateLimiter == nil || deps.RateLimit.AuthPerMinute <= 0 {
			return fn
		}
		return deps.RateLimiter.Limit(scope, deps.RateLimit.AuthPerMinute)(fn)
	}
	protected := func(fn http.HandlerFunc) http.Handler {
		return middleware.RequireAuth(fn)
	}

	api.Handle("/login", limited("login", h.Auth.Login)).Methods(http.MethodPost)
	api.Handle("/register", limited("register", h.Auth.Register)).Methods(http.MethodPost)
	api.Handle("/logout", http.HandlerFunc(h.Auth.Logout)).Methods(http.MethodPost)
	api.Handle("/user", protected(h.Auth.CurrentUser)).Methods(http.MethodGet)
	api.Handle("/change-password", protected(h.Auth.ChangePassword)).Methods(http.MethodPost)

	// search must be registered before {slug} so it is not taken for a slug.
	api.Handle("/posts", http.HandlerFunc(h.Posts.List)).Methods(http.MethodGet)
	api.Handle("/posts", protected(h.Posts.Create)).Methods(http.MethodPost)
	api.Handle("/posts/search", http.HandlerFunc(h.Posts.Search)).Methods(http.MethodGet)
	api.Handle("/posts/{slug}", http.HandlerFunc(h.Posts.Get)).Methods(http.MethodGet)
	api.Handle("/posts/{slug}/comments", http.HandlerFunc(h.Posts.ListComments)).Methods(http.MethodGet)
	api.Handle("/posts/{slug}/comments", protected(h.Posts.CreateComment)).Methods(http.MethodPost)

	api.Handle("/witch-assistant", protected(h.Assistant.Get)).Methods(http.MethodGet)
	api.Handle("/witch-assistant", protected(h.Assistant.Update)).Methods(http.MethodPatch)

	api.Handle("/create-payment-intent", protected(h.Payment.CreateIntent)).Methods(http.MethodPost)
	api.Handle("/payment-status/{id}", protected(h.Payment.Status)).Methods(http.MethodGet)

	api.Handle("/export-zip", http.HandlerFunc(h.Export.ExportPosts)).Methods(http.MethodGet)
	api.Handle("/download-project", http.HandlerFunc(h.Export.DownloadProject)).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	session := deps.Session
	if session == nil {
		session = func(next http.Handler) http.Handler { return next }
	}

	return stack(r,
		middleware.RequestID(),
		middleware.Recovery(deps.Logger),
		middleware.CORS(deps.CORS),
		session,
		middleware.Logger(deps.Logger),
		metrics.InstrumentHandler(routeTemplate(r)),
	)
}

// stack wraps h so the first middleware is the outermost. The stack sits
// outside the mux so 404, 405 and CORS preflight responses pass through it
// too; mux.Router.Use only runs for matched routes.
func stack(h http.Handler, mws ...middleware.Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

// routeTemplate labels requests with the matched mux path template, so
// /api/posts/a and /api/posts/b share one series.
func routeTemplate(r *mux.Router) metrics.RouteFunc {
	return func(req *http.Request) string {
		var m mux.RouteMatch
		if !r.Match(req, &m) || m.Route == nil {
			return ""
		}
		tpl, err := m.Route.GetPathTemplate()
		if err != nil {
			return ""
		}
		return tpl
	}
}
