package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/nancyzera/jurassic-game/internal/agent"
	"github.com/nancyzera/jurassic-game/internal/engine"
	"github.com/nancyzera/jurassic-game/internal/server"
	"github.com/nancyzera/jurassic-game/internal/version"
	"github.com/nancyzera/jurassic-game/pkg/levels"
	"github.com/nancyzera/jurassic-game/pkg/logger"

	"github.com/sirupsen/logrus"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Config: defaults, then .env and JQ_* variables, then flags.
	cfg, err := engine.LoadConfig()
	if err != nil {
		logger.Log.WithError(err).Fatal("Invalid configuration")
	}

	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Master seed (default: JQ_SEED or time based)")
	flag.IntVar(&cfg.Port, "port", cfg.Port, "HTTP port")
	flag.IntVar(&cfg.TickHz, "tick-hz", cfg.TickHz, "Simulation ticks per second")
	flag.StringVar(&cfg.CatalogPath, "catalog", cfg.CatalogPath, "Level catalog YAML (default: embedded)")
	flag.IntVar(&cfg.Bots, "bots", cfg.Bots, "Autopilot sessions to start")
	flag.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Enable debug commands (DAMAGE)")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		logger.Log.WithError(err).Fatal("Invalid configuration")
	}

	logger.Log.Info("Starting Jurassic Quest...")
	logger.Log.Info(version.String())
	logger.Log.WithFields(logrus.Fields{
		"seed":          cfg.Seed,
		"tick_hz":       cfg.TickHz,
		"predator_step": cfg.PredatorStep.String(),
		"debug":         cfg.Debug,
	}).Info("Configuration loaded")

	// 2. Level catalog
	catalog := levels.Default()
	if cfg.CatalogPath != "" {
		if catalog, err = levels.Load(cfg.CatalogPath); err != nil {
			logger.Log.WithError(err).Fatal("Failed to load level catalog")
		}
	}
	logger.Log.WithField("levels", len(catalog.Levels)).Info("Level catalog ready")

	// 3. Engine and bots
	gameService := engine.NewService(cfg, catalog)

	botCtx, stopBots := context.WithCancel(context.Background())
	for i := 0; i < cfg.Bots; i++ {
		bot, err := agent.NewBot(gameService)
		if err != nil {
			logger.Log.WithError(err).Error("Failed to start bot")
			break
		}
		go bot.Run(botCtx)
	}

	// 4. HTTP server
	srv := server.New(gameService, strconv.Itoa(cfg.Port))
	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.WithError(err).Fatal("Server start error")
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	logger.Log.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stopBots()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.WithError(err).Warn("HTTP shutdown incomplete")
	}
	if err := gameService.Shutdown(ctx); err != nil {
		logger.Log.WithError(err).Warn("Engine shutdown incomplete")
	}

	logger.Log.Info("Done.")
}
