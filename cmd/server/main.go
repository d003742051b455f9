// Package main provides the server entry point.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"github.com/joho/godotenv"
	zlog "github.com/rs/zerolog/log"

	"github.com/betaradio/nowplaying/internal/api/handlers"
	"github.com/betaradio/nowplaying/internal/api/server"
	"github.com/betaradio/nowplaying/internal/app/listeners"
	"github.com/betaradio/nowplaying/internal/app/nowplaying"
	"github.com/betaradio/nowplaying/internal/app/station"
	"github.com/betaradio/nowplaying/internal/infra/browser"
	"github.com/betaradio/nowplaying/internal/infra/config"
	"github.com/betaradio/nowplaying/internal/infra/logger"
	"github.com/betaradio/nowplaying/internal/infra/stationpage"
)

var (
	app        = kingpin.New("nowplaying-server", "Radio Beta now-playing server")
	configPath = app.Flag("config", "Path to config file").Default("config/server.yaml").String()
	verbose    = app.Flag("verbose", "Enable verbose (DEBUG) logging").Short('v').Bool()
	logfile    = app.Flag("logfile", "Path to log file (default: stdout)").String()
)

func main() {
	// Load .env file if it exists (errors are ignored)
	_ = godotenv.Load()

	kingpin.MustParse(app.Parse(os.Args[1:]))

	// Initialize logger
	loggerConfig := logger.Config{
		Level: "info",
	}
	// Override with command-line flags if specified
	if *verbose {
		loggerConfig.Level = "debug"
	}
	if *logfile != "" {
		loggerConfig.File = *logfile
	}
	if err := logger.Init(loggerConfig); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	// Load config
	zlog.Info().Msgf("Loading config from %s", *configPath)
	cfg, err := config.Load(*configPath)
	if err != nil {
		zlog.Fatal().Msgf("Failed to load config: %v", err)
	}

	if err := run(cfg); err != nil {
		zlog.Error().Msgf("Server error: %v", err)
		os.Exit(1)
	}
}

// run executes the main server logic. Using a separate function ensures
// defer statements are executed even when returning with an error.
func run(cfg *config.Config) error {
	loc, err := cfg.Location()
	if err != nil {
		return fmt.Errorf("invalid station timezone: %w", err)
	}

	// Create the page renderer
	renderer, err := browser.New(cfg.Browser.Type, cfg.Browser.Settings, browser.Options{
		UserAgent: cfg.Scrape.UserAgent,
		Timeout:   cfg.FetchTimeout(),
	})
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}

	// Create the playlist fetcher
	fetcher, err := stationpage.New(stationpage.Config{
		PageURL:   cfg.Station.PageURL,
		UserAgent: cfg.Scrape.UserAgent,
		Timeout:   cfg.FetchTimeout(),
	})
	if err != nil {
		return fmt.Errorf("failed to create station page client: %w", err)
	}

	// Playing state shared by the resolver and the listener simulator
	state := station.NewState()

	resolver := nowplaying.New(nowplaying.Config{
		RadioName:             cfg.Station.Name,
		PageURL:               cfg.Station.PageURL,
		Location:              loc,
		RenderTimeout:         cfg.RenderTimeout(),
		NothingPlayingMessage: cfg.Messages.NothingPlaying,
		UnavailableMessage:    cfg.Messages.UpstreamUnavailable,
	}, renderer, fetcher, state)

	simulator := listeners.New(state, loc)

	// Register metrics
	nowplaying.RegisterMetrics()
	handlers.RegisterMetrics()

	srv := server.New(cfg, resolver, simulator)

	// Channel to capture server startup errors
	serverErrCh := make(chan error, 1)

	// Start server
	go func() {
		zlog.Info().Msgf("Starting server: addr=%s radio=%s browser=%s",
			cfg.Server.Addr, cfg.Station.Name, cfg.Browser.Type)
		if err := srv.Start(); err != nil {
			serverErrCh <- err
		}
	}()

	// Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigCh:
		zlog.Info().Msg("Received shutdown signal...")
	case err := <-serverErrCh:
		return fmt.Errorf("server error: %w", err)
	}

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Error().Msgf("Failed to shutdown server: %v", err)
	}

	zlog.Info().Msg("Server stopped")

	return nil
}
