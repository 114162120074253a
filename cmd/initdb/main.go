package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"

	"vessel-propsim/internal/store"
)

// Creates the vessel database, applies the schema and seeds the
// reference configurations and operating profiles.
func main() {
	dbPath := flag.String("db", "data/vessel.db", "Path to the sqlite database")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	st, err := store.Open(*dbPath, log)
	if err != nil {
		log.Fatal().Err(err).Str("path", *dbPath).Msg("open store")
	}
	defer st.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := st.Init(ctx); err != nil {
		log.Fatal().Err(err).Msg("init schema")
	}
	if err := st.Seed(ctx); err != nil {
		log.Fatal().Err(err).Msg("seed reference data")
	}

	ctx2, cancel2 := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel2()
	cfgs, err := st.Configurations(ctx2)
	if err != nil {
		log.Fatal().Err(err).Msg("verify configurations")
	}
	profiles, err := st.Profiles(ctx2)
	if err != nil {
		log.Fatal().Err(err).Msg("verify profiles")
	}

	log.Info().
		Str("path", *dbPath).
		Int("configurations", len(cfgs)).
		Int("profiles", len(profiles)).
		Msg("database ready")
}
