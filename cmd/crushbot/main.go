package main

import (
	"context"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"crushbot/bot"
	"crushbot/bot/ai"
	"crushbot/bot/games"
	"crushbot/bot/screens"
	"crushbot/bot/session"
	coreconfig "crushbot/core/config"
	coredatabase "crushbot/core/database"
	"crushbot/core/logger"
	coretelegram "crushbot/core/telegram"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}

func run() error {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.yaml"
	}

	cfg, err := coreconfig.Load(cfgPath)
	if err != nil {
		return err
	}
	logger.Init(cfg.Logging)
	appLog := logger.Component("app")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	store, err := buildStore(cfg)
	if err != nil {
		return err
	}

	engine := games.NewEngine(rand.NewSource(time.Now().UnixNano()))

	var gen ai.Generator
	if cfg.AIEnabled() {
		client, err := ai.NewGeminiClient(ctx, cfg.AI.APIKey, cfg.AI.Model,
			time.Duration(cfg.AI.TimeoutSeconds)*time.Second)
		if err != nil {
			return err
		}
		defer func() { _ = client.Close() }()
		gen = client
	} else {
		appLog.Warn("no AI key configured, replies run in fallback-only mode")
	}
	orch := ai.NewOrchestrator(gen,
		time.Duration(cfg.AI.MaxDelaySeconds)*time.Second,
		rand.NewSource(time.Now().UnixNano()))

	dispatcher := bot.NewDispatcher(store, screens.Default(engine), engine, orch)

	b, err := coretelegram.NewBot(cfg)
	if err != nil {
		return err
	}

	appLog.Info("starting bot")
	return coretelegram.Run(ctx, b, bot.Routes(dispatcher))
}

func buildStore(cfg *coreconfig.Config) (session.Store, error) {
	if cfg.Session.Backend != coreconfig.BackendPostgres {
		return session.NewMemoryStore(), nil
	}
	db, err := coredatabase.Connect(cfg.Database)
	if err != nil {
		return nil, err
	}
	if err := coredatabase.RunMigrations(cfg.Database, "migrations"); err != nil {
		_ = db.Close()
		return nil, err
	}
	return session.NewPostgresStore(db), nil
}
