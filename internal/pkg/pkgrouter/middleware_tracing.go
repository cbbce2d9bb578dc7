package pkgrouter

import (
	"net/http"

	"github.com/Wildcard209/UUID-Generator/internal/pkg/pkglog"
	"github.com/Wildcard209/UUID-Generator/internal/pkg/pkgtrace"
)

func middlewareTracing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route := matchedRoutePath(r)

		ctx, span := pkgtrace.StartSpan(r.Context(), r.Method+" "+route, "SERVER")
		defer span.End()

		span.SetAttributes(map[string]string{
			"http.method":    r.Method,
			"http.route":     route,
			"correlation.id": pkglog.CorrelationID(ctx),
		})

		rec := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r.WithContext(ctx))

		span.SetStatusFromHTTPCode(rec.Status())
	})
}
