package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sttm-catalog-api/config"
	"sttm-catalog-api/internal/assist"
	"sttm-catalog-api/internal/database"
	"sttm-catalog-api/internal/logtrace"
	"sttm-catalog-api/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.LoadConfig()
	logtrace.InitLogger(cfg.LogLevel)
	gin.SetMode(gin.ReleaseMode)

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.Backend()).Msg("failed to open database")
	}
	defer database.Close(db)

	client, err := assist.NewClient(context.Background(), cfg)
	if err != nil {
		// the API still serves everything except description suggestions
		log.Error().Err(err).Msg("failed to create Gemini client")
	}

	app, err := server.NewApp(cfg, db, client)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialise application")
	}

	srv := server.NewServer(cfg, server.NewRouter(app))

	go func() {
		log.Info().
			Str("addr", srv.Addr).
			Str("backend", cfg.Backend()).
			Bool("assist", client != nil).
			Bool("snapshots", cfg.GCSBucket != "").
			Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	log.Info().Msg("server exiting")
}
