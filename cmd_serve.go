package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve path and trace queries over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup(cmd)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("addr") {
			a.cfg.Server.Addr, _ = cmd.Flags().GetString("addr")
		}
		logger := a.logger

		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		metrics := NewMetrics(reg)

		var cache ResponseCache = noCache{}
		if a.cfg.Cache.RedisAddr != "" {
			redisCache := NewRedisCache(a.cfg.Cache)
			defer redisCache.Close()

			pingCtx, cancel := context.WithTimeout(cmd.Context(), 2*time.Second)
			err := redisCache.Ping(pingCtx)
			cancel()
			if err != nil {
				logger.Warn("redis unavailable, serving without cache", "addr", a.cfg.Cache.RedisAddr, "error", err)
			} else {
				logger.Info("response cache enabled", "addr", a.cfg.Cache.RedisAddr, "ttl", a.cfg.Cache.TTL)
				cache = redisCache
			}
		}

		report := InspectMap(a.grid)
		for _, warning := range report.Warnings {
			logger.Warn("map check", "warning", warning)
		}

		planner := NewPlanner(a.grid, a.cfg, metrics, logger)
		srv := &http.Server{
			Addr:    a.cfg.Server.Addr,
			Handler: NewHandler(planner, cache, metrics, reg, logger),
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		logger.Info("server starting",
			"addr", srv.Addr,
			"map", a.grid.Name(),
			"mode", a.cfg.Search.Mode,
		)
		return runServer(ctx, srv, logger, a.cfg.Server.ShutdownTimeout)
	},
}

// runServer serves until the listener fails or ctx ends, then shuts down
// gracefully within timeout
func runServer(ctx context.Context, srv *http.Server, logger *slog.Logger, timeout time.Duration) error {
	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err

	case <-ctx.Done():
		logger.Info("shutdown started", "cause", context.Cause(ctx))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown did not complete", "timeout", timeout, "error", err)
			return srv.Close()
		}
		logger.Info("server stopped")
		return nil
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", ":8000", "Address to listen on")
}
