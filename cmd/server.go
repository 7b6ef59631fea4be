package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/prasanthkarthik25305/alma-connect-spark/internal/database"
	"github.com/prasanthkarthik25305/alma-connect-spark/internal/server"
)

// serverCmd runs the HTTP API server.
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the AlumniConnect API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Auth.JWTSecret == "" {
			zap.L().Warn("auth.jwt_secret is empty; set it in production")
		}

		database.SetPath(cfg.Database.Path)
		srv := server.NewHTTPServer(cfg)

		errCh := make(chan error, 1)
		go func() {
			if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return err
		case sig := <-quit:
			zap.L().Info("shutting down", zap.String("signal", sig.String()))
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Stop(ctx); err != nil {
			return err
		}
		return database.Close()
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
