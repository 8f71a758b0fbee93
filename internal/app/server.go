package app

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
)

// Start serves HTTP on the configured address. The returned channel is closed
// once SIGINT, SIGTERM or SIGHUP is received.
func (a *App) Start() <-chan struct{} {
	done := make(chan struct{})

	go func() {
		slog.Info("http server listening", "address", a.httpServer.Addr)

		err := a.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			fatal("http server stopped unexpectedly", "error", err)
		}
	}()

	go func() {
		ctx, stop := signal.NotifyContext(a.ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
		defer stop()

		<-ctx.Done()
		slog.Info("termination signal received, shutting down")
		close(done)
	}()

	return done
}

// Serve runs the HTTP server on l. Used by tests that need an ephemeral port.
func (a *App) Serve(l net.Listener) <-chan error {
	errc := make(chan error, 1)

	go func() {
		defer close(errc)
		errc <- a.httpServer.Serve(l)
	}()

	return errc
}

// Stop drains the HTTP server and then releases resources in order. Errors
// are logged; shutdown always runs to completion.
func (a *App) Stop(ctx context.Context) {
	defer a.cancel()

	if err := a.httpServer.Shutdown(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to shutdown http server", "error", err)
	}

	for _, c := range a.closers {
		if err := c.fn(ctx); err != nil {
			slog.ErrorContext(ctx, "failed to close resource", "name", c.name, "error", err)
		}
	}

	slog.InfoContext(ctx, "application stopped")
}
