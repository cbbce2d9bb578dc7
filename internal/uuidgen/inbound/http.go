package inbound

import (
	"context"

	"github.com/Wildcard209/UUID-Generator/internal/pkg/pkgrouter"
	"github.com/Wildcard209/UUID-Generator/internal/uuidgen/entity"
	"github.com/Wildcard209/UUID-Generator/internal/uuidgen/usecase"
)

type uc interface {
	Generate(ctx context.Context, count int) ([]entity.UUID, error)
	Inspect(ctx context.Context, raw string) (usecase.InspectResult, error)
	Compare(ctx context.Context, a, b string) (bool, error)
}

func RegisterHTTPEndpoint(r *pkgrouter.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.GET("/uuids", end.Generate, pkgrouter.NoStore) // ?count=
	r.GET("/uuids/:id", end.Inspect)
	r.POST("/uuids/compare", end.Compare)
}
