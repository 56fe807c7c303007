package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/zhangwenhan0216/reservation/cmd/bootstrap"
	"github.com/zhangwenhan0216/reservation/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := fx.New(
			bootstrap.Module(configPath),
			fx.Provide(
				func() *gin.Engine {
					return gin.New()
				},
			),
			fx.Invoke(
				startServer,
			),
			fx.NopLogger,
		)

		if err := app.Start(cmd.Context()); err != nil {
			slog.Error("failed to start application", "error", err)
			return err
		}

		<-app.Done()

		stopCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.Stop(stopCtx); err != nil {
			slog.Error("failed to stop application", "error", err)
		}

		slog.Info("application stopped")
		return nil
	},
}

// @title           reservation
// @version         1.0
// @description     Resource reservation service with overlap-free booking per resource.

// @BasePath  /
// @schemes http https
func startServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	srv := &http.Server{
		Addr:              cfg.Server.ListenAddr(),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			gin.EnableJsonDecoderDisallowUnknownFields()
			logger.Info("starting server", "address", srv.Addr, "mode", gin.Mode())
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("server failed", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping server")
			return srv.Shutdown(ctx)
		},
	})
}
