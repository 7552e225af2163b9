package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/angband/angband-sub026/internal/agent"
	"github.com/angband/angband-sub026/internal/data"
	"github.com/angband/angband-sub026/internal/domain"
	"github.com/angband/angband-sub026/internal/engine"
	"github.com/angband/angband-sub026/internal/server"
	"github.com/angband/angband-sub026/internal/version"
	"github.com/angband/angband-sub026/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	cfg := engine.NewConfig()

	// 1. Парсинг конфигурации
	var seed int64
	var loadPath string
	var bot bool
	flag.Int64Var(&seed, "seed", 0, "Master seed (0 for random)")
	flag.IntVar(&cfg.Depth, "depth", cfg.Depth, "Starting dungeon level")
	flag.StringVar(&cfg.DataDir, "data", "", "Directory with monsters.lua/objects.lua (empty: embedded)")
	flag.StringVar(&loadPath, "load", "", "Path to a .angs save to resume")
	flag.BoolVar(&bot, "bot", false, "Let the autopilot control the character")
	flag.Parse()

	logger.Log.Info("Starting Angband server...")
	logger.Log.Info(version.String())

	if seed != 0 {
		cfg.Seed = seed
		logger.Log.Infof("Using explicit master seed: %d", seed)
	} else {
		logger.Log.Infof("Using random master seed: %d", cfg.Seed)
	}
	cfg.SaveDir = os.Getenv("AB_SAVE_DIR")

	port := os.Getenv("AB_PORT")
	if port == "" {
		port = "8080"
	}

	// 2. Данные и партия
	reg, err := loadRegistry(cfg.DataDir)
	if err != nil {
		logger.Log.WithError(err).Fatal("failed to load game data")
	}

	var inst *engine.Instance
	if loadPath != "" {
		inst, err = engine.LoadInstance(cfg, reg, loadPath)
	} else {
		inst, err = engine.NewInstance(cfg, reg)
	}
	if err != nil {
		logger.Log.WithError(err).Fatal("failed to start game")
	}

	gameService := engine.NewService(inst)

	// Graceful Shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go gameService.Run(ctx)
	if bot {
		go agent.NewBot("bot_1", gameService, cfg.Seed).Run(ctx)
	}

	// 3. Запуск сервера
	srv := server.New(gameService, port)
	if err := srv.Run(ctx); err != nil {
		logger.Log.WithError(err).Error("server stopped with error")
	}

	logger.Log.Info("Shutting down...")
	if cfg.SaveDir != "" {
		if path, err := gameService.Save(); err != nil {
			logger.Log.WithError(err).Error("final save failed")
		} else {
			logger.Log.WithField("path", path).Info("final save written")
		}
	}
	logger.Log.Info("Done.")
}

func loadRegistry(dir string) (*domain.Registry, error) {
	if dir == "" {
		return data.LoadDefault()
	}
	return data.Load(dir)
}
