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

	"github.com/ziadkadry99/patternbook/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the pattern page over HTTP",
	Long: `Starts an HTTP server that renders the pattern page at / and exposes
the pattern list and raw sources under /api/patterns. The pattern directory
is re-read on every request, so new snippets show up on reload.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, renderer, err := setup()
		if err != nil {
			return err
		}

		port := cfg.Server.Port
		if cmd.Flags().Changed("port") {
			port = servePort
		}

		srv := server.New(server.Config{
			Port:        port,
			PatternsDir: cfg.PatternsDir,
			List:        cfg.ListOptions(),
			AllowAll:    cfg.Server.AllowAllOrigins,
		}, renderer, logger)

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			logger.Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()

		logger.Info("patternbook starting", "version", Version, "name", cfg.Name)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on (overrides server.port)")
	rootCmd.AddCommand(serveCmd)
}
