package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/MJE43/keno-time-patterns-go/internal/analyze"
	"github.com/MJE43/keno-time-patterns-go/internal/api"
	"github.com/MJE43/keno-time-patterns-go/internal/config"
	"github.com/MJE43/keno-time-patterns-go/internal/patterns"
	"github.com/MJE43/keno-time-patterns-go/internal/store"
)

func main() {
	configPath := flag.String("config", "", "path to config file (optional)")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}
	if level, err := zerolog.ParseLevel(cfg.Logging.Level); err == nil {
		log = log.Level(level)
	}

	table := patterns.Default
	if cfg.Patterns.TablePath != "" {
		table, err = analyze.LoadTableFile(cfg.Patterns.TablePath)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.Patterns.TablePath).Msg("loading pattern table")
		}
		log.Info().Str("path", cfg.Patterns.TablePath).Msg("loaded pattern table")
	}

	var db store.DB
	if cfg.Storage.SQLitePath != "" {
		sqlite, err := store.NewSQLiteDB(cfg.Storage.SQLitePath)
		if err != nil {
			log.Fatal().Err(err).Msg("opening draw store")
		}
		defer sqlite.Close()
		if err := sqlite.Migrate(); err != nil {
			log.Fatal().Err(err).Msg("migrating draw store")
		}
		db = sqlite
	}

	server := api.NewServer(table, db, log)
	httpServer := &http.Server{
		Addr:    cfg.Server.ListenAddr,
		Handler: server.Routes(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("addr", cfg.Server.ListenAddr).Msg("listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}
