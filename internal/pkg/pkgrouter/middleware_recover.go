package pkgrouter

import (
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/Wildcard209/UUID-Generator/internal/pkg/pkgerror"
)

func middlewareRecoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			//nolint:err113,errorlint // sentinel must be compared directly
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}

			slog.ErrorContext(r.Context(), "panic on the server",
				"because", rvr,
				"stack", stackFrames(debug.Stack()),
			)

			if r.Header.Get("Connection") == "Upgrade" {
				return
			}

			writeJSON(w, errorResponse{
				Message: "Internal server error",
				Error: &errorDetail{
					Code: int32(pkgerror.CodeUnknown),
					Name: pkgerror.CodeUnknown.String(),
				},
			}, http.StatusInternalServerError)
		}()

		next.ServeHTTP(w, r)
	})
}

// stackFrames keeps the module's own frames from a debug.Stack dump, trimmed
// to "internal/.../file.go:line".
func stackFrames(stack []byte) []string {
	var frames []string
	for _, line := range strings.Split(string(stack), "\n") {
		line = strings.TrimSpace(line)

		idx := strings.Index(line, ".go:")
		if idx == -1 {
			continue
		}
		if end := strings.IndexByte(line[idx:], ' '); end != -1 {
			line = line[:idx+end]
		}

		for _, root := range []string{"/internal/", "/cmd/"} {
			if i := strings.Index(line, root); i != -1 {
				frames = append(frames, line[i+1:])
				break
			}
		}
	}
	return frames
}
