package mvc

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// statusRecorder wraps http.ResponseWriter to capture the status code and size.
type statusRecorder struct {
	http.ResponseWriter
	status int
	size   int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	n, err := r.ResponseWriter.Write(b)
	r.size += n
	return n, err
}

// Unwrap returns the underlying ResponseWriter (supports http.ResponseController).
func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

// Logger returns middleware that logs one line per request. The matched
// route pattern is included, so every verb of a controller can be told apart.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			// The mux fills in r.Pattern on its own copy of the request;
			// a shared holder lets it travel back out.
			var pattern string
			next.ServeHTTP(rec, withPatternSink(r, &pattern))

			level := slog.LevelInfo
			if rec.status >= http.StatusInternalServerError {
				level = slog.LevelWarn
			}

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("route", pattern),
				slog.Int("status", rec.status),
				slog.Duration("latency", time.Since(start)),
				slog.Int("size", rec.size),
				slog.String("remote", r.RemoteAddr),
			}
			if id := GetRequestID(r); id != "" {
				attrs = append(attrs, slog.String("request_id", id))
			}

			logger.LogAttrs(r.Context(), level, "request", attrs...)
		})
	}
}

type patternSinkKey struct{}

func withPatternSink(r *http.Request, dst *string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), patternSinkKey{}, dst))
}

// notePattern reports the matched route pattern to an enclosing Logger.
func notePattern(r *http.Request) {
	if dst, ok := r.Context().Value(patternSinkKey{}).(*string); ok {
		*dst = r.Pattern
	}
}
