package pkgrouter

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"

	"github.com/Wildcard209/UUID-Generator/internal/pkg/pkgerror"
)

// GetParam reads a path parameter stored in ctx by httprouter.
func GetParam(ctx context.Context, key string) string {
	return httprouter.ParamsFromContext(ctx).ByName(key)
}

// QueryInt reads an integer query parameter, returning def when it is absent
// or blank. A value that is not an integer is an invalid parameter.
func QueryInt(r *http.Request, key string, def int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return def, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, pkgerror.NewInvalidParameter(fmt.Sprintf("invalid %s", key))
	}
	return v, nil
}
