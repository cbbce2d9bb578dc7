package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/rs/cors"

	"github.com/Wildcard209/UUID-Generator/internal/pkg/pkgconfig"
	"github.com/Wildcard209/UUID-Generator/internal/pkg/pkgentropy"
	"github.com/Wildcard209/UUID-Generator/internal/pkg/pkglog"
	"github.com/Wildcard209/UUID-Generator/internal/pkg/pkgrouter"
	"github.com/Wildcard209/UUID-Generator/internal/pkg/pkgtrace"
	"github.com/Wildcard209/UUID-Generator/internal/pkg/pkguid"
	"github.com/Wildcard209/UUID-Generator/internal/uuidgen/entity"
	"github.com/Wildcard209/UUID-Generator/internal/uuidgen/usecase"
)

const closerHTTPServer = "HTTP Server"

//nolint:gochecknoglobals // read once at startup
var configDefaults = map[string]any{
	"tz":                              "UTC",
	"server.address.http":             ":8080",
	"server.cors.allowed_origins":     "*",
	"modules.uuidgen.enabled":         true,
	"modules.uuidgen.max_count":       usecase.DefaultMaxCount,
	"modules.uuidgen.entropy_retries": usecase.DefaultMaxRetries,
	"modules.uuidgen.entropy_backoff": usecase.DefaultBaseBackoff.String(),
	"trace.enabled":                   false,
	"trace.output":                    "",
}

func configPath() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	if os.Getenv("LOCAL") == "true" {
		return "./config/config.yaml"
	}
	return "/config/config.yaml"
}

func (a *App) initConfig() {
	cfg, err := pkgconfig.NewViper(configPath(), configDefaults)
	if err != nil {
		slog.Error("failed to init config", "error", err)
		os.Exit(1)
	}

	//nolint:errcheck,gosec // ignore error
	os.Setenv("TZ", cfg.GetString("tz"))

	if level := cfg.GetString("log.level"); level != "" {
		pkglog.InitLogging(os.Stdout, pkglog.ParseLevel(level))
	}

	a.config = cfg
}

func (a *App) initLibraries() {
	a.entropy = pkgentropy.System{}
	a.uuid = pkguid.NewUUID(func() (string, error) {
		return entity.NewString(a.entropy)
	})
}

func (a *App) initTracing() {
	if !a.config.GetBool("trace.enabled") {
		return
	}

	out := os.Stdout
	if path := a.config.GetString("trace.output"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			slog.Error("failed to open trace output", "path", path, "error", err)
			os.Exit(1)
		}
		out = f
		a.traceOut = f
	}

	if err := pkgtrace.Init(a.ctx, pkglog.ServiceName, Version, out); err != nil {
		slog.Error("failed to init tracing", "error", err)
		os.Exit(1)
	}
}

func (a *App) initHTTPServer() {
	a.router = pkgrouter.NewRouter(a.uuid)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: a.config.GetArray("server.cors.allowed_origins"),
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{pkgrouter.HeaderCorrelationID},
	})

	a.httpServer = &http.Server{
		Addr:              a.config.GetString("server.address.http"),
		Handler:           corsHandler.Handler(a.router),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

//nolint:unparam // is always nil
func (a *App) initClosers() {
	if a.closerFn == nil {
		a.closerFn = map[string]func(context.Context) error{}
	}

	a.closerFn[closerHTTPServer] = func(ctx context.Context) error {
		return a.httpServer.Shutdown(ctx)
	}
	a.closerFn["Config"] = func(context.Context) error {
		return a.config.Close()
	}
	a.closerFn["Tracing"] = a.shutdownTracing
}

// shutdownTracing flushes the tracer provider before closing the file it
// writes to.
func (a *App) shutdownTracing(ctx context.Context) error {
	err := pkgtrace.Shutdown(ctx)
	if a.traceOut != nil {
		err = errors.Join(err, a.traceOut.Close())
		a.traceOut = nil
	}
	return err
}
