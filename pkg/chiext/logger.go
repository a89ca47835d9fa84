package chiext

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// Logger logs one line per request with the default slog logger.
func Logger() func(next http.Handler) http.Handler {
	return middleware.RequestLogger(&LogFormatter{})
}

// LogFormatter implements middleware.LogFormatter on top of slog.
type LogFormatter struct {
	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

func (f *LogFormatter) NewLogEntry(r *http.Request) middleware.LogEntry {
	log := f.Logger
	if log == nil {
		log = slog.Default()
	}

	attrs := []any{slog.String("method", r.Method)}
	if reqID := middleware.GetReqID(r.Context()); reqID != "" {
		attrs = append(attrs, slog.String("request", reqID))
	}
	attrs = append(attrs, slog.String("from", r.RemoteAddr))

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}

	return &logEntry{
		log: log.With(attrs...),
		msg: fmt.Sprintf("%s://%s%s %s", scheme, r.Host, r.RequestURI, r.Proto),
	}
}

type logEntry struct {
	log *slog.Logger
	msg string
}

func (e *logEntry) Write(status, bytes int, header http.Header, elapsed time.Duration, extra interface{}) {
	attrs := []any{
		slog.Int("status", status),
		slog.Int("bytes", bytes),
		slog.String("elapsed", elapsed.String()),
	}

	switch {
	case status >= 500:
		e.log.Error(e.msg, attrs...)
	case status >= 400:
		e.log.Warn(e.msg, attrs...)
	default:
		e.log.Info(e.msg, attrs...)
	}
}

func (e *logEntry) Panic(v interface{}, stack []byte) {
	e.log.Error("Request panicked", "panic", v, "stack", string(stack))
}
