package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/helixml/rephrase"
	"github.com/helixml/rephrase/infrastructure/api"
	apimiddleware "github.com/helixml/rephrase/infrastructure/api/middleware"
	"github.com/helixml/rephrase/internal/config"
	"github.com/helixml/rephrase/internal/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	var (
		envFile string
		host    string
		port    int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long: `Start the HTTP API server.

Configuration is loaded in the following order (later sources override earlier):
  1. Default values
  2. .env file (if --env-file specified or .env exists in current directory)
  3. Environment variables
  4. Command line flags

Environment variables:
  HOST           Server host to bind to (default: 0.0.0.0)
  PORT           Server port to listen on (default: 8080)
  LOG_LEVEL      Log level: DEBUG, INFO, WARN, ERROR (default: INFO)
  LOG_FORMAT     Log format: pretty, json (default: pretty)
  FRONTEND_URL   Origin allowed by CORS (default: http://localhost:3000)
  AI_API_KEY     Anthropic API key
  AI_API_URL     Messages endpoint (default: https://api.anthropic.com/v1/messages)
  AI_MODEL       Model identifier (default: claude-3-haiku-20240307)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), envFile, host, port)
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to .env file (default: .env in current directory)")
	cmd.Flags().StringVar(&host, "host", "", "Server host to bind to (default: 0.0.0.0)")
	cmd.Flags().IntVar(&port, "port", 0, "Server port to listen on (default: 8080)")

	return cmd
}

func runServe(ctx context.Context, envFile, host string, port int) error {
	cfg, err := loadConfig(envFile)
	if err != nil {
		return err
	}

	// Flags take precedence over env vars
	cfg = applyServeOverrides(cfg, host, port)

	logger := log.NewLogger(cfg)
	slogger := logger.Slog()

	attrs := append([]slog.Attr{slog.String("version", version)}, cfg.LogAttrs()...)
	slogger.LogAttrs(context.Background(), slog.LevelInfo, "starting rephrase", attrs...)

	server := api.NewServer(cfg.Addr(), slogger)
	server.Router().Mount("/", newHandler(cfg, slogger))

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(server.Start)
	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	// A failed Start cancels gctx, which also stops the watcher
	if err := g.Wait(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	slogger.Info("server stopped")
	return nil
}

// newHandler builds the API handler with request logging and correlation IDs.
func newHandler(cfg config.AppConfig, logger *slog.Logger) http.Handler {
	client := rephrase.New(append(clientOptions(cfg), rephrase.WithLogger(logger))...)

	apiServer := api.NewAPIServer(client, cfg.FrontendURL())
	router := apiServer.Router()

	// Middleware MUST be added before MountRoutes
	router.Use(apimiddleware.CorrelationID)
	router.Use(apimiddleware.Logging(logger))

	apiServer.MountRoutes()

	return apiServer.Handler()
}

// applyServeOverrides applies command line flag overrides to the config.
func applyServeOverrides(cfg config.AppConfig, host string, port int) config.AppConfig {
	var opts []config.AppConfigOption

	if host != "" {
		opts = append(opts, config.WithHost(host))
	}
	if port != 0 {
		opts = append(opts, config.WithPort(port))
	}

	return cfg.Apply(opts...)
}
