package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ocean-server/internal/agent"
	"ocean-server/internal/engine"
	"ocean-server/internal/infrastructure/storage"
	"ocean-server/internal/server"
	"ocean-server/internal/version"
	"ocean-server/pkg/logger"
	"ocean-server/pkg/ocean"

	"golang.org/x/sync/errgroup"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	var (
		seed       int64
		replayPath string
		replayDir  string
		botEnabled bool
		botDelay   time.Duration
		pirates    string
		monsters   int
	)
	// Читаем флаг -seed. По умолчанию 0 (значит сгенерировать случайно).
	flag.Int64Var(&seed, "seed", 0, "Session seed (0 for random)")
	flag.StringVar(&replayPath, "replay", "", "Path to .ocrp replay file to simulate")
	flag.StringVar(&replayDir, "replay-dir", "replays", "Directory for recorded replays")
	flag.BoolVar(&botEnabled, "bot", false, "Let the autopilot steer Columbus")
	flag.DurationVar(&botDelay, "bot-delay", 500*time.Millisecond, "Pause between autopilot moves")
	flag.StringVar(&pirates, "pirates", "PATROL,PREDICTIVE_CHASER", "Pirate roster: PATROL, CHASER, PREDICTIVE_CHASER separated by commas")
	flag.IntVar(&monsters, "monsters", 4, "Number of sea monsters")
	flag.Parse()

	logger.Log.Info("Starting Ocean Server...")
	logger.Log.Info(version.String())

	// Формируем конфиг. Реплей воспроизводится только с тем же составом.
	cfg := engine.NewConfig()
	roster, err := ocean.ParseRoster(pirates)
	if err != nil {
		logger.Log.WithError(err).Fatal("Invalid -pirates")
	}
	cfg.Pirates = roster
	cfg.Monsters = monsters

	// РЕЖИМ РЕПЛЕЯ
	if replayPath != "" {
		logger.Log.Info("💿 Mode: Replay Simulation")

		rs, err := storage.LoadFile(replayPath)
		if err != nil {
			logger.Log.WithError(err).Fatal("Failed to load replay")
		}
		if _, err := engine.PlayReplay(cfg, *rs); err != nil {
			logger.Log.WithError(err).Fatal("Replay failed")
		}
		return // Выходим после симуляции
	}

	if seed != 0 {
		cfg.Seed = seed
		logger.Log.Infof("🎲 Using explicit seed: %d", seed)
	} else {
		logger.Log.Infof("🎲 Using random seed: %d", cfg.Seed)
	}

	port := os.Getenv("OCEAN_PORT")
	if port == "" {
		port = "8080"
	}

	// 2. Инициализация ядра с конфигом
	gameService, err := engine.NewGameService(cfg)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to create game")
	}

	replays, err := storage.NewReplayService(replayDir)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to prepare replay storage")
	}

	// Graceful Shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	// 3. Запуск сервера
	srv := server.New(gameService, port)
	g.Go(func() error {
		return srv.Run(gctx)
	})

	if botEnabled {
		bot := agent.NewBot("autopilot", gameService, botDelay, 0)
		g.Go(func() error {
			if err := bot.Run(gctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.Log.WithError(err).Error("Server stopped with error")
	}
	logger.Log.Info("Shutting down...")

	// Сохраняем ленту команд
	rs := gameService.ReplaySession()
	if len(rs.Actions) > 0 {
		path, err := replays.Save(&rs)
		if err != nil {
			logger.Log.WithError(err).Error("Failed to save replay")
		} else {
			logger.Log.WithField("path", path).Info("Replay saved")
		}
	}

	logger.Log.Info("Done.")
}
