package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"go.uber.org/zap"

	"devconnector/internal/auth"
	"devconnector/internal/config"
	"devconnector/internal/db"
	"devconnector/internal/events"
	"devconnector/internal/github"
	"devconnector/internal/logger"
	"devconnector/internal/seed"
	"devconnector/internal/service"
)

const seedTimeout = 5 * time.Minute

func main() {
	source := flag.String("source", "seed/developers.json", "seed file path or http(s) URL")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	zlog, err := logger.New(cfg.ServiceName+"-seed", cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	if err := run(cfg, *source, zlog); err != nil {
		zlog.Fatal("seed failed", zap.String("source", *source), zap.Error(err))
	}
}

func run(cfg *config.Config, source string, zlog *zap.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()

	store, closeStore, err := db.Open(ctx, cfg, false, zlog)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer closeStore()

	devs, err := seed.Load(ctx, source)
	if err != nil {
		return fmt.Errorf("load seed data: %w", err)
	}
	zlog.Info("loaded seed data", zap.String("source", source), zap.Int("developers", len(devs)))

	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.JWTExpiry)
	publisher := events.NewNop()
	githubClient := github.NewClient(cfg.GithubAPIURL, cfg.GithubClientID, cfg.GithubSecret, cfg.GithubToken)
	seeder := seed.NewSeeder(
		service.NewUserService(store.Users, jwtService, publisher, zlog),
		service.NewProfileService(store, githubClient, nil, publisher, zlog),
		store.Users,
		zlog,
	)

	res, err := seeder.Run(ctx, devs)
	if err != nil {
		return err
	}
	zlog.Info("seed completed",
		zap.Int("created", res.Created),
		zap.Int("existing", res.Existing),
		zap.Int("skipped", res.Skipped),
	)
	return nil
}
