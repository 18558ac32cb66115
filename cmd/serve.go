package cmd

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/chris-regnier/moodctl/internal/server"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

var (
	serveBind string
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the JSON HTTP API",
	Long: `Starts an HTTP server exposing the journal:

  GET    /api/health
  POST   /api/entries               submit an entry
  GET    /api/history?limit=N       recent entries with aggregates
  DELETE /api/entries?confirm=true  delete everything
  GET    /api/quote                 a motivational quote`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("bind") {
			appConfig.Server.Bind = serveBind
		}
		if cmd.Flags().Changed("port") {
			appConfig.Server.Port = servePort
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		ln, err := net.Listen("tcp", appConfig.ListenAddr())
		if err != nil {
			return err
		}
		return serveRun(ctx, ln)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveBind, "bind", "127.0.0.1", "address to bind")
	serveCmd.Flags().IntVar(&servePort, "port", 8737, "port to listen on")
	rootCmd.AddCommand(serveCmd)
}

// serveRun serves the API on ln until ctx is cancelled, then shuts down
// gracefully.
func serveRun(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           server.New(svc, appConfig.Storage, version, logger),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log := logger.With("component", "http")

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("listening", "addr", ln.Addr().String(), "backend", appConfig.Storage)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
