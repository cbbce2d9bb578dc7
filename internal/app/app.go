package app

import (
	"context"
	"io"
	"net/http"
	"os"

	"github.com/Wildcard209/UUID-Generator/internal/pkg/pkgconfig"
	"github.com/Wildcard209/UUID-Generator/internal/pkg/pkgentropy"
	"github.com/Wildcard209/UUID-Generator/internal/pkg/pkglog"
	"github.com/Wildcard209/UUID-Generator/internal/pkg/pkgrouter"
	"github.com/Wildcard209/UUID-Generator/internal/pkg/pkguid"
)

// Version is reported in traces. Overridden at link time.
var Version = "dev"

type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config pkgconfig.Config

	// libraries
	uuid    pkguid.StringID
	entropy pkgentropy.Source

	// server
	router     *pkgrouter.Router
	httpServer *http.Server

	// set only when traces go to a file
	traceOut io.Closer

	//
	closerFn map[string]func(context.Context) error
}

func New() *App {
	pkglog.InitLogging(os.Stdout, pkglog.ParseLevel(os.Getenv("LOG_LEVEL")))

	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initLibraries()
	app.initTracing()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
