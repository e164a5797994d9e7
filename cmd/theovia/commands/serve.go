package commands

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"TheoVia/internal/config"
	"TheoVia/internal/logger"
	"TheoVia/internal/server"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the landing page over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Load configuration
			cfg := config.Load()

			// Initialize JSON logging
			log.SetFlags(0)
			log.SetOutput(&logger.JSONLogger{Instance: cfg.InstanceName})

			log.Printf("Serving on port %s...", cfg.Port)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return server.New(cfg).ListenAndServe(ctx)
		},
	}
}
