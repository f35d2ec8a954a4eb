// Command analyze rebuilds the pattern table from historical draw data: it
// optionally cleans a raw venue feed, loads the cleaned CSV, runs the slot
// analysis, and exports a table the server can load. With -db the draws and
// the analysis run are also persisted.
package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"

	"github.com/MJE43/keno-time-patterns-go/internal/analyze"
	"github.com/MJE43/keno-time-patterns-go/internal/store"
)

func main() {
	rawPath := flag.String("raw", "", "raw venue feed to clean before loading (optional)")
	csvPath := flag.String("csv", "", "cleaned draw history CSV")
	dbPath := flag.String("db", "", "sqlite draw store (optional)")
	outPath := flag.String("out", "keno_patterns.json", "output pattern table")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if *rawPath != "" {
		if *csvPath == "" {
			log.Fatal().Msg("-raw requires -csv for the cleaned output")
		}
		formatRaw(*rawPath, *csvPath, log)
	}

	var db *store.SQLiteDB
	if *dbPath != "" {
		var err error
		db, err = store.NewSQLiteDB(*dbPath)
		if err != nil {
			log.Fatal().Err(err).Msg("opening draw store")
		}
		defer db.Close()
		if err := db.Migrate(); err != nil {
			log.Fatal().Err(err).Msg("migrating draw store")
		}
	}

	draws := loadDraws(*csvPath, db, log)

	cfg, err := analyze.New(log).Run(draws)
	if err != nil {
		log.Fatal().Err(err).Msg("analysis failed")
	}

	out, err := os.Create(*outPath)
	if err != nil {
		log.Fatal().Err(err).Msg("creating output file")
	}
	defer out.Close()
	if err := analyze.WriteJSON(out, cfg); err != nil {
		log.Fatal().Err(err).Msg("writing pattern table")
	}

	if db != nil {
		run := &store.AnalysisRun{
			Version:      cfg.AnalysisVersion,
			TotalDraws:   cfg.TotalDraws,
			PatternCount: len(cfg.Patterns),
		}
		if err := db.SaveAnalysisRun(run); err != nil {
			log.Fatal().Err(err).Msg("recording analysis run")
		}
		log.Info().Str("run_id", run.ID).Msg("analysis run recorded")
	}

	log.Info().
		Str("out", *outPath).
		Int("total_draws", cfg.TotalDraws).
		Int("slots", len(cfg.Patterns)).
		Msg("pattern table written")
}

func formatRaw(rawPath, csvPath string, log zerolog.Logger) {
	in, err := os.Open(rawPath)
	if err != nil {
		log.Fatal().Err(err).Msg("opening raw feed")
	}
	defer in.Close()

	out, err := os.Create(csvPath)
	if err != nil {
		log.Fatal().Err(err).Msg("creating cleaned CSV")
	}
	defer out.Close()

	if _, err := analyze.FormatRaw(in, out, log); err != nil {
		log.Fatal().Err(err).Msg("formatting raw feed")
	}
}

// loadDraws reads the draw history from the CSV when given, persisting it
// to the store, and otherwise falls back to previously stored draws.
func loadDraws(csvPath string, db *store.SQLiteDB, log zerolog.Logger) []analyze.Draw {
	if csvPath != "" {
		f, err := os.Open(csvPath)
		if err != nil {
			log.Fatal().Err(err).Msg("opening draw history")
		}
		defer f.Close()

		draws, err := analyze.LoadCSV(f, log)
		if err != nil {
			log.Fatal().Err(err).Msg("loading draw history")
		}
		if db != nil {
			if err := db.SaveDraws(draws); err != nil {
				log.Fatal().Err(err).Msg("persisting draws")
			}
		}
		return draws
	}

	if db == nil {
		log.Fatal().Msg("either -csv or -db is required")
	}
	draws, err := db.ListDraws(0, 0)
	if err != nil {
		log.Fatal().Err(err).Msg("reading stored draws")
	}
	return draws
}
