package inbound

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/Wildcard209/UUID-Generator/internal/pkg/pkgerror"
	"github.com/Wildcard209/UUID-Generator/internal/pkg/pkgrouter"
)

const maxCompareBody = 1 << 10

type HTTPEndpoint struct {
	uc uc
}

func (h *HTTPEndpoint) Generate(ctx context.Context, r *http.Request) (any, error) {
	count, err := pkgrouter.QueryInt(r, "count", 1)
	if err != nil {
		return nil, err
	}

	ids, err := h.uc.Generate(ctx, count)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}

	return GenerateResponse{UUIDs: out}, nil
}

func (h *HTTPEndpoint) Inspect(ctx context.Context, r *http.Request) (any, error) {
	result, err := h.uc.Inspect(ctx, pkgrouter.GetParam(ctx, "id"))
	if err != nil {
		return nil, err
	}

	return InspectResponse{
		UUID:    result.UUID.String(),
		Version: result.Version,
		Variant: result.Variant,
		IsV4:    result.IsV4,
		Layout:  result.Layout,
	}, nil
}

func (h *HTTPEndpoint) Compare(ctx context.Context, r *http.Request) (any, error) {
	if r.Body == nil {
		return nil, pkgerror.NewInvalidParameter("empty request body")
	}

	var req CompareRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxCompareBody)).Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, pkgerror.NewInvalidParameter("empty request body")
		}
		return nil, pkgerror.NewInvalidParameter("invalid request body")
	}

	equal, err := h.uc.Compare(ctx, req.A, req.B)
	if err != nil {
		return nil, err
	}

	return CompareResponse{Equal: equal}, nil
}
