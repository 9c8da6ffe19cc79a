package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"streamdesk/internal/application/broadcast/usecases"
	"streamdesk/internal/infrastructure/config"
	"streamdesk/internal/infrastructure/database"
	"streamdesk/internal/infrastructure/repository"
	"streamdesk/internal/infrastructure/scheduler"
	"streamdesk/internal/infrastructure/telegram"
	"streamdesk/internal/shared/logger"
)

func main() {
	env := "development"
	if len(os.Args) > 1 {
		env = os.Args[1]
	}
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger()
	log.Infow("starting broadcast worker", "environment", env)

	if cfg.Telegram.BotToken == "" {
		log.Errorw("telegram bot token is not configured, broadcasts cannot be delivered")
		os.Exit(1)
	}

	if err := database.Init(&cfg.Database); err != nil {
		log.Errorw("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	broadcastRepo := repository.NewBroadcastRepository(database.Get())
	botService := telegram.NewBotService(cfg.Telegram)

	sendInterval := time.Duration(cfg.Telegram.SendInterval) * time.Millisecond
	dispatchUC := usecases.NewDispatchBroadcastsUseCase(broadcastRepo, botService, sendInterval, log)

	manager, err := scheduler.NewSchedulerManager(log)
	if err != nil {
		log.Errorw("failed to create scheduler", "error", err)
		os.Exit(1)
	}

	dispatchInterval := time.Duration(cfg.Broadcast.DispatchInterval) * time.Second
	if err := manager.RegisterBroadcastJob(dispatchUC, dispatchInterval); err != nil {
		log.Errorw("failed to register broadcast job", "error", err)
		os.Exit(1)
	}

	manager.Start()
	log.Infow("broadcast worker started", "dispatch_interval", dispatchInterval.String())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan

	log.Infow("received signal, shutting down", "signal", sig.String())

	if err := manager.Stop(); err != nil {
		log.Errorw("scheduler shutdown failed", "error", err)
	}

	log.Infow("broadcast worker stopped")
}
