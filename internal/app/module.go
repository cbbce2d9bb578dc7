package app

import (
	"context"
	"log/slog"
	"os"

	"github.com/Wildcard209/UUID-Generator/internal/uuidgen"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.uuidgen.enabled") {
		closer, err := uuidgen.New(uuidgen.Dependency{
			Config:  a.config,
			Router:  a.router,
			Entropy: a.entropy,
		})
		if err != nil {
			slog.Error("failed to init module uuidgen", "error", err)
			os.Exit(1)
		}
		if closer != nil {
			if a.closerFn == nil {
				a.closerFn = map[string]func(context.Context) error{}
			}
			a.closerFn["UUIDGen"] = closer
		}
	}
}
