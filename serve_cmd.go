package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cipher-backend/config"
	"cipher-backend/handlers"
	"cipher-backend/metrics"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	var (
		cfgFile string
		port    int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the cipher HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			if port != 0 {
				cfg.Server.Port = port
				if err := config.Validate(cfg); err != nil {
					return err
				}
			}

			logger, err := config.NewLogger(cfg.Log, os.Stdout)
			if err != nil {
				return err
			}

			var m *metrics.Metrics
			if cfg.MetricsEnabled() {
				m = metrics.New()
			}

			gin.SetMode(gin.ReleaseMode)
			router := handlers.NewRouter(cfg, m, logger)

			srv := &http.Server{
				Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
				Handler:           router,
				ReadHeaderTimeout: 5 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				logger.Info("server starting", "port", cfg.Server.Port, "metrics", cfg.MetricsEnabled())
				logger.Info("API endpoints",
					"encrypt", "POST /api/v1/cipher/encrypt",
					"decrypt", "POST /api/v1/cipher/decrypt",
					"validate", "POST /api/v1/cipher/validate",
					"health", "GET /api/v1/health",
				)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				if err != nil {
					return fmt.Errorf("failed to start server: %w", err)
				}
				return nil
			case <-ctx.Done():
			}

			logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("shutdown: %w", err)
			}
			logger.Info("shutdown complete")
			return nil
		},
	}

	cmd.Flags().StringVarP(&cfgFile, "config", "c", "", "path to YAML configuration file")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "listen port (overrides config and PORT)")

	return cmd
}
