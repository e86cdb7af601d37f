package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/WillSanton/WebSite/internal/metrics"
	"github.com/WillSanton/WebSite/pkg/ctxutil"
)

// Recovery turns handler panics into a 500 {"message"} response. When the
// response has already started (an archive mid-stream) the connection is
// aborted instead, so the client never mistakes a truncated zip for a
// complete one. http.ErrAbortHandler passes through untouched.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tw := &startedWriter{ResponseWriter: w}

			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler { //nolint:errorlint // sentinel compared as panic value
					panic(rec)
				}

				metrics.RecordPanic()
				logger.ErrorContext(r.Context(), "panic recovered",
					slog.Any("error", rec),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
					slog.Bool("response_started", tw.started),
				)

				if tw.started {
					panic(http.ErrAbortHandler)
				}
				writeMessage(w, http.StatusInternalServerError, "Internal server error")
			}()

			next.ServeHTTP(tw, r)
		})
	}
}

// startedWriter records whether the response header has been sent.
type startedWriter struct {
	http.ResponseWriter
	started bool
}

func (w *startedWriter) WriteHeader(code int) {
	w.started = true
	w.ResponseWriter.WriteHeader(code)
}

func (w *startedWriter) Write(b []byte) (int, error) {
	w.started = true
	return w.ResponseWriter.Write(b)
}

func (w *startedWriter) Flush() {
	w.started = true
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (w *startedWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
