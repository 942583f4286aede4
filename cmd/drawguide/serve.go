package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/fwojciec/drawguide/mcp"
)

// shutdownTimeout bounds graceful HTTP shutdown.
const shutdownTimeout = 5 * time.Second

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	srv := mcp.NewServer(deps.Service, deps.Version)

	if c.HTTP == "" {
		deps.Logger.Info("serving", "transport", "stdio", "version", deps.Version)
		return srv.Run(deps.Ctx)
	}

	httpServer := &http.Server{
		Addr:              c.HTTP,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		deps.Logger.Info("serving", "transport", "http", "addr", c.HTTP, "version", deps.Version)
		errc <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-deps.Ctx.Done():
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
