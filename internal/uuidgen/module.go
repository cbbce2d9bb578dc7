package uuidgen

import (
	"context"
	"errors"

	"github.com/Wildcard209/UUID-Generator/internal/pkg/pkgconfig"
	"github.com/Wildcard209/UUID-Generator/internal/pkg/pkgentropy"
	"github.com/Wildcard209/UUID-Generator/internal/pkg/pkgrouter"
	"github.com/Wildcard209/UUID-Generator/internal/uuidgen/inbound"
	"github.com/Wildcard209/UUID-Generator/internal/uuidgen/usecase"
)

type Dependency struct {
	Config  pkgconfig.Config
	Router  *pkgrouter.Router
	Entropy pkgentropy.Source
}

func New(dep Dependency) (func(context.Context) error, error) {
	if dep.Config == nil || dep.Router == nil {
		return nil, errors.New("uuidgen: config and router are required")
	}

	uc := usecase.New(usecase.Dependency{
		Entropy:     dep.Entropy,
		MaxCount:    int(dep.Config.GetInt("modules.uuidgen.max_count")),
		MaxRetries:  int(dep.Config.GetInt("modules.uuidgen.entropy_retries")),
		BaseBackoff: dep.Config.GetDuration("modules.uuidgen.entropy_backoff"),
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil, nil
}
