package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/mixmini/mixmini/internal/api"
	"github.com/mixmini/mixmini/internal/config"
	"github.com/mixmini/mixmini/internal/repositories"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MixMini web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		repositories.ConnectDatabase()

		server := &http.Server{
			Addr:    fmt.Sprintf(":%s", config.Envs.Port),
			Handler: api.SetupRouter(),
			// Timeouts prevent resource exhaustion from slow clients
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  120 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		g, ctx := errgroup.WithContext(ctx)

		g.Go(func() error {
			log.Printf("Starting MixMini server on port: %s", config.Envs.Port)
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return err
			}
			return nil
		})

		g.Go(func() error {
			<-ctx.Done()
			log.Println("Shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		})

		return g.Wait()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
