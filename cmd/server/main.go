// Package main is the entry point for the chat message server.
//
// It loads configuration, sets up logging and tracing, opens the SQLite
// store, wires the presence and message services with the translation and
// audio caches, mounts the HTTP API, and runs until SIGINT/SIGTERM with a
// graceful drain. A background loop sweeps stale audio artifacts for as long
// as the process lives.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/charlesolisa/chat-message/internal/cache"
	"github.com/charlesolisa/chat-message/internal/config"
	httpapi "github.com/charlesolisa/chat-message/internal/http"
	"github.com/charlesolisa/chat-message/internal/observability"
	"github.com/charlesolisa/chat-message/internal/repo"
	"github.com/charlesolisa/chat-message/internal/services"
	"github.com/charlesolisa/chat-message/internal/speech"
	"github.com/charlesolisa/chat-message/internal/sysutil"
	"github.com/charlesolisa/chat-message/internal/translate"
)

// version is stamped at build time via -ldflags "-X main.version=v1.2.3".
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	// DEV_MODE flips the handful of settings that matter on a laptop.
	if sysutil.IsTruthy(os.Getenv("DEV_MODE")) {
		cfg.LogPretty = true
		cfg.SwaggerEnabled = true
		cfg.GinMode = "debug"
	}

	setupLogging(cfg)
	ver := sysutil.FirstNonEmpty(os.Getenv("BUILD_VERSION"), version)
	log.Info().Str("version", ver).Str("port", cfg.Port).Msg("starting chat server")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownOTel, err := observability.SetupOTel(ctx, cfg.OTEL, ver)
	if err != nil {
		log.Fatal().Err(err).Msg("opentelemetry setup failed")
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownOTel(sctx); err != nil {
			log.Warn().Err(err).Msg("tracer shutdown")
		}
	}()

	db, err := repo.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("open database")
	}
	if err := repo.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("migrate database")
	}

	audio, err := cache.NewAudioCache(cfg.AudioCacheDir, cfg.AudioFreshness, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Str("dir", cfg.AudioCacheDir).Msg("audio cache")
	}

	presence := services.NewPresenceService(db, cfg.PresenceWindow, log.Logger)
	presence.DefaultLang = cfg.DefaultLang

	messages := services.NewMessageService(db)
	messages.MaxBodyRunes = cfg.MaxMessageLen
	messages.DedupWindow = cfg.DedupWindow
	messages.HistoryLimit = cfg.HistoryLimit

	svc := &services.ChatService{
		Presence:     presence,
		Messages:     messages,
		Translations: cache.NewTranslationLRU(cfg.TranslationCacheCap),
		Audio:        audio,
		Translator:   translate.NewClient(cfg.TranslateURL, 10*time.Second),
		Synthesizer:  speech.NewClient(cfg.TTSURL, 15*time.Second),
		Log:          log.Logger,
	}

	go sweepAudio(ctx, audio, cfg.AudioSweepInterval, cfg.AudioSweepMaxAge)

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	httpapi.RegisterRoutes(r, svc, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	case err := <-errCh:
		log.Error().Err(err).Msg("http server failed")
	}

	drain, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(drain); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}

// setupLogging configures global zerolog output per config.
func setupLogging(cfg config.Config) {
	zerolog.TimeFieldFormat = time.RFC3339
	sysutil.SetLogLevel(cfg.LogLevel)
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}

// sweepAudio drops aged audio artifacts on a fixed interval until ctx ends.
func sweepAudio(ctx context.Context, audio *cache.AudioCache, every, maxAge time.Duration) {
	if every <= 0 {
		return
	}
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := audio.Sweep(maxAge); n > 0 {
				log.Info().Int("removed", n).Msg("audio cache sweep")
			}
		}
	}
}
