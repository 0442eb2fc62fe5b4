package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"neotokyo-core/internal/config"
	"neotokyo-core/internal/engine"
	"neotokyo-core/internal/engine/session"
	"neotokyo-core/internal/server"
	"neotokyo-core/pkg/logger"
)

func main() {
	// 0. .env необязателен: переменные окружения процесса важнее
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Init()
		logger.Log.Fatal("Config error:", err)
	}
	logger.Init(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})

	// 1. Флаги перекрывают окружение
	var dump bool
	flag.StringVar(&cfg.MasterSeed, "seed", cfg.MasterSeed, "Master seed (empty for random)")
	flag.IntVar(&cfg.DistrictCount, "districts", cfg.DistrictCount, "Number of districts to generate")
	flag.BoolVar(&dump, "dump", false, "Print the generated world as JSON and exit")
	flag.Parse()

	engineCfg := engine.NewConfig(cfg)
	if engineCfg.Seed == "" && dump {
		engineCfg.Seed = engine.RandomSeed()
	}

	logger.Log.Info("Starting Neo-Tokyo core...")

	// РЕЖИМ ДАМПА
	if dump {
		logger.Log.Infof("Using Master Seed: %s", engineCfg.Seed)

		sess, err := session.New(context.Background(), session.Config{
			Seed:          engineCfg.Seed,
			DistrictCount: engineCfg.DistrictCount,
		})
		if err != nil {
			logger.Log.Fatal("Generation failed:", err)
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(sess); err != nil {
			logger.Log.Fatal("Encode failed:", err)
		}
		return
	}

	if engineCfg.Seed != "" {
		logger.Log.Infof("Using explicit Master Seed: %s", engineCfg.Seed)
	} else {
		logger.Log.Info("No Master Seed: every new game gets a random one")
	}

	// 2. Инициализация ядра
	gameService := engine.NewService(engineCfg)

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// 3. Запуск сервера
	srv := server.New(gameService, cfg.Port)

	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.Fatal("Server start error:", err)
		}
	}()

	<-stop
	logger.Log.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.WithError(err).Warn("Shutdown error")
	}

	logger.Log.Info("Done.")
}
