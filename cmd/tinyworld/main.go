// Package main is the entry point for Tiny World.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/samdwyer/tinyworld/internal/config"
	"github.com/samdwyer/tinyworld/internal/dice"
	"github.com/samdwyer/tinyworld/internal/game"
	"github.com/samdwyer/tinyworld/internal/gamedata"
	"github.com/samdwyer/tinyworld/internal/observability"
	"github.com/samdwyer/tinyworld/internal/telemetry"
	"github.com/samdwyer/tinyworld/internal/ui"
)

func main() {
	configPath := pflag.StringP("config", "c", os.Getenv("TINYWORLD_CONFIG"), "path to a YAML config file")
	seed := pflag.Int64("seed", 0, "random seed, overrides game.seed when non-zero")
	pflag.Parse()

	// Load .env file for local development.
	// Not fatal: env vars might be set directly.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	if err := run(*configPath, *seed); err != nil {
		fmt.Fprintf(os.Stderr, "tinyworld: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, seed int64) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if seed != 0 {
		cfg.Game.Seed = seed
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		// Continue without telemetry - game still works
		logger.Warn("telemetry setup failed", zap.Error(err))
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				logger.Error("shutting down telemetry", zap.Error(err))
			}
		}()
	}

	w, err := gamedata.LoadWorld()
	if err != nil {
		return fmt.Errorf("loading world: %w", err)
	}

	session, err := game.NewSession(w, dice.NewSource(cfg.Game.Seed), game.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("creating session: %w", err)
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}

	app := ui.NewApp(screen, ui.NewRenderer(screen, w), session, logger)
	if err := app.Run(ctx); err != nil {
		return fmt.Errorf("game error: %w", err)
	}
	return nil
}
