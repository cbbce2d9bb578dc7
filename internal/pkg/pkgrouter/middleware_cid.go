package pkgrouter

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/Wildcard209/UUID-Generator/internal/pkg/pkglog"
)

// Generator produces correlation IDs for requests that arrive without one.
type Generator interface {
	Generate() string
}

const (
	// HeaderCorrelationID is read from requests and always set on responses.
	HeaderCorrelationID = "X-Correlation-ID"
	// HeaderRequestID is accepted as a fallback, as set by some proxies.
	HeaderRequestID = "X-Request-ID"

	maxCIDLen = 128
)

// normalizeCID trims v and truncates it to maxCIDLen bytes. Values holding
// anything other than printable ASCII are dropped so they cannot be used to
// inject into logs or response headers.
func normalizeCID(v string) string {
	v = strings.TrimSpace(v)
	if len(v) > maxCIDLen {
		v = v[:maxCIDLen]
	}
	for i := 0; i < len(v); i++ {
		if v[i] < 0x20 || v[i] > 0x7e {
			return ""
		}
	}
	return v
}

func incomingCID(r *http.Request) string {
	for _, h := range []string{HeaderCorrelationID, HeaderRequestID} {
		if cid := normalizeCID(r.Header.Get(h)); cid != "" {
			return cid
		}
	}
	return ""
}

func middlewareCorrelationID(gen Generator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cid := incomingCID(r)
			if cid == "" && gen != nil {
				if cid = gen.Generate(); cid == "" {
					slog.WarnContext(r.Context(), "correlation id generation failed, continuing without one")
				}
			}

			if cid != "" {
				w.Header().Set(HeaderCorrelationID, cid)
				r = r.WithContext(pkglog.WithCorrelationID(r.Context(), cid))
			}

			next.ServeHTTP(w, r)
		})
	}
}
