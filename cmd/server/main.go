package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	_ "devconnector/docs" // swagger docs

	"devconnector/internal/auth"
	"devconnector/internal/cache"
	"devconnector/internal/config"
	"devconnector/internal/db"
	"devconnector/internal/events"
	"devconnector/internal/github"
	"devconnector/internal/handler"
	"devconnector/internal/logger"
	"devconnector/internal/middleware"
	"devconnector/internal/router"
	"devconnector/internal/service"
)

const shutdownTimeout = 10 * time.Second

// @title DevConnector API
// @version 1.0
// @description Developer social network API: users, authentication, profiles and posts.
// @host localhost:5000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name x-auth-token
// @description Session token returned by register or login.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zlog, err := logger.New(cfg.ServiceName, cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	if err := run(cfg, zlog); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, zlog *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := db.Open(ctx, cfg, cfg.ResetDB, zlog)
	if err != nil {
		return err
	}
	defer closeStore()

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, zlog)
	defer cacheClient.Close()
	if err := cacheClient.Ping(ctx); err != nil {
		zlog.Warn("redis unavailable, caching and token revocation disabled until it recovers", zap.Error(err))
	}

	publisher := events.NewNop()
	if cfg.EventsEnabled() {
		publisher = events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopicPrefix, zlog)
		zlog.Info("publishing events", zap.Strings("brokers", cfg.KafkaBrokers))
	}
	defer publisher.Close()

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.JWTExpiry)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	githubClient := github.NewClient(cfg.GithubAPIURL, cfg.GithubClientID, cfg.GithubSecret, cfg.GithubToken)
	userService := service.NewUserService(store.Users, jwtService, publisher, zlog)
	authService := service.NewAuthService(store.Users, jwtService, tokenStore)
	profileService := service.NewProfileService(store, githubClient, cacheClient, publisher, zlog)
	postService := service.NewPostService(store.Posts, store.Users, publisher, zlog)

	e := echo.New()
	router.Register(e, cfg, zlog, router.Handlers{
		Users:    handler.NewUserHandler(userService, zlog),
		Auth:     handler.NewAuthHandler(userService, authService, zlog),
		Profiles: handler.NewProfileHandler(profileService, zlog),
		Posts:    handler.NewPostHandler(postService, zlog),
	}, middleware.Auth(jwtService, tokenStore))

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + cfg.ServerPort
		zlog.Info("server starting", zap.String("addr", addr), zap.String("db_driver", cfg.DBDriver))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server start: %w", err)
	case <-ctx.Done():
	}

	zlog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
