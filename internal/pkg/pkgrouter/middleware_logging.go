package pkgrouter

import (
	"bufio"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"
)

//nolint:gochecknoglobals // global for fast reuse
var sensitiveHeaders = map[string]struct{}{
	"authorization": {},
	"cookie":        {},
	"set-cookie":    {},
}

func maskHeaders(headers http.Header) http.Header {
	result := headers.Clone()
	for key := range result {
		if _, found := sensitiveHeaders[strings.ToLower(key)]; found {
			result.Set(key, "***")
		}
	}
	return result
}

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusRecorder) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusRecorder) Write(p []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}

	n, err := w.ResponseWriter.Write(p)
	w.bytes += n
	return n, err
}

func (w *statusRecorder) Status() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

func (w *statusRecorder) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

//nolint:err113 // it use dynamic error
func (w *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := w.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("hijack not supported")
	}
	return h.Hijack()
}

func matchedRoutePath(r *http.Request) string {
	pattern := httprouter.ParamsFromContext(r.Context()).MatchedRoutePath()
	if pattern != "" {
		return pattern
	}
	return r.URL.Path
}

// middlewareLogging logs one line per request and one per response. Bodies
// are not logged: they only ever hold UUIDs and small JSON documents.
func middlewareLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route := matchedRoutePath(r)
		start := time.Now()

		slog.InfoContext(
			r.Context(),
			"request received",
			"method", r.Method,
			"route", route,
			"path", r.URL.Path,
			"query", r.URL.RawQuery,
			"headers", maskHeaders(r.Header),
		)

		rec := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r)

		slog.InfoContext(
			r.Context(),
			"response sent",
			"method", r.Method,
			"route", route,
			"path", r.URL.Path,
			"status", rec.Status(),
			"bytes", rec.bytes,
			"latency_ms", time.Since(start).Milliseconds(),
		)
	})
}
