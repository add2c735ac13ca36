package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/festops/scoreboard-service/internal/config"
	"github.com/festops/scoreboard-service/internal/handler"
	"github.com/festops/scoreboard-service/internal/logger"
	"github.com/festops/scoreboard-service/internal/repository/mongodb"
	"github.com/festops/scoreboard-service/internal/service"
)

func main() {
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("config loading failed: %v", err)
	}

	appLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		log.Fatalf("logger initialization failed: %v", err)
	}

	connectCtx, cancel := context.WithTimeout(context.Background(), cfg.Mongo.ConnectTimeout)
	defer cancel()
	store, err := mongodb.New(connectCtx, cfg.Mongo.URI, cfg.Mongo.Database, cfg.Mongo.Collection, appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("mongo connection failed")
	}

	activitySvc := service.NewActivityService(store, appLogger)
	scoreSvc := service.NewScoreService(store, appLogger)

	if cfg.Logger.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	handler.Register(engine, store, activitySvc, scoreSvc)

	srv := &http.Server{Addr: cfg.Server.Addr, Handler: engine}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		appLogger.Info().Str("addr", cfg.Server.Addr).Msg("service started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error().Err(err).Msg("http server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	appLogger.Info().Msg("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error().Err(err).Msg("graceful shutdown failed")
	}
	if err := store.Close(shutdownCtx); err != nil {
		appLogger.Error().Err(err).Msg("mongo disconnect failed")
	}
}
