package routerhandlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/vitalvas/arbor/router"
)

// LoggingConfig configures the Logging middleware behaviour.
type LoggingConfig struct {
	// Logger is the structured logger to write to. Defaults to
	// slog.Default when nil.
	Logger *slog.Logger

	// Message overrides the log message. Defaults to "http request".
	Message string
}

// statusWriter records the status code written to the response so the log
// line can report it. An unset status means the handler wrote a body without
// an explicit WriteHeader, which net/http treats as 200 OK.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	if w.status == 0 {
		w.status = status
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	return w.ResponseWriter.Write(b)
}

// Logging returns a middleware that writes one structured log line per
// request: method, path, response status and duration.
func Logging(cfg LoggingConfig) router.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	message := cfg.Message
	if message == "" {
		message = "http request"
	}

	return func(c *router.Context, next func()) {
		sw := &statusWriter{ResponseWriter: c.Writer}
		prev := c.Writer
		c.Writer = sw

		start := time.Now()
		next()
		c.Writer = prev

		status := sw.status
		if status == 0 {
			status = http.StatusOK
		}

		logger.LogAttrs(c.Request.Context(), slog.LevelInfo, message,
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", status),
			slog.Duration("duration", time.Since(start)),
		)
	}
}
