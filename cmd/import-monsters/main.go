package main

import (
	"context"
	"flag"

	"github.com/rs/zerolog/log"

	"monster-battle/internal/config"
	"monster-battle/internal/db"
)

func main() {
	filePath := flag.String("file", "monsters.csv", "path to monsters csv")
	flag.Parse()

	if err := config.LoadDotEnv(".env"); err != nil {
		log.Warn().Err(err).Msg("failed to load .env")
	}
	cfg := config.Load()

	conn, err := db.Open(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}

	store := db.NewMonsterStore(conn)
	inserted, err := db.ImportMonsters(context.Background(), store, *filePath)
	if err != nil {
		log.Fatal().Err(err).Int("inserted", inserted).Msg("monster import failed")
	}
	log.Info().Int("inserted", inserted).Msg("monsters imported")
}
