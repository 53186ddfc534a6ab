package main

import (
	"context"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"susanalopezstudio/internal/api"
	"susanalopezstudio/internal/auth"
	"susanalopezstudio/internal/config"
	"susanalopezstudio/internal/db"
	"susanalopezstudio/internal/devcontrol"
	"susanalopezstudio/internal/kvstore"
	"susanalopezstudio/internal/logger"
)

func main() {
	_ = godotenv.Load()

	log := logger.New()
	cfg := config.Load()

	var kv kvstore.Store
	switch cfg.StorageDriver {
	case "memory":
		log.Warn().Msg("using in-memory storage; nothing survives a restart")
		kv = kvstore.NewMemory()
	default:
		sqlDB, err := db.OpenMySQL(cfg.MySQL)
		if err != nil {
			log.Fatal().Err(err).Msg("opening mysql")
		}
		defer sqlDB.Close()
		kv = kvstore.NewMySQL(sqlDB)
	}

	flags := devcontrol.NewStore(kv, log)
	ctx := context.Background()
	source := flags.Resolve(ctx, url.Values{})
	log.Info().Str("source", string(source)).Msg("config resolved")

	authSvc := auth.NewService(kv, log)
	authSvc.Bootstrap(ctx)

	server := api.NewServer(cfg, log, flags, authSvc)

	// No write timeout: /config/ws holds long-lived websocket connections.
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           server.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
	log.Info().Msg("stopped")
}
