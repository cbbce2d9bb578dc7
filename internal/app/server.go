package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"syscall"
)

// Start serves HTTP in the background. The returned channel is closed once
// the process receives SIGINT, SIGTERM or SIGHUP, or when the listener fails.
func (a *App) Start() <-chan struct{} {
	done := make(chan struct{})
	ctx, stop := signal.NotifyContext(a.ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)

	go func() {
		slog.Info("http server listening", "address", a.httpServer.Addr, "version", Version)

		if err := a.httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server stopped unexpectedly", "error", err)
			stop()
		}
	}()

	go func() {
		<-ctx.Done()
		stop()
		slog.Info("shutdown requested")
		close(done)
	}()

	return done
}

// Stop drains the HTTP server first, then runs the remaining closers in
// name order.
func (a *App) Stop(ctx context.Context) {
	if a.cancel != nil {
		a.cancel()
	}

	if err := a.httpServer.Shutdown(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to close resources", "name", closerHTTPServer, "error", err)
	}

	names := make([]string, 0, len(a.closerFn))
	for name := range a.closerFn {
		if name != closerHTTPServer {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	for _, name := range names {
		if err := a.closerFn[name](ctx); err != nil {
			slog.ErrorContext(ctx, "failed to close resources", "name", name, "error", err)
		}
	}

	slog.InfoContext(ctx, "application gracefully shutdown")
}
