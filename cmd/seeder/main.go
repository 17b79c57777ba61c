package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/xw1nchester/foodfinds-backend/internal/config"
	"github.com/xw1nchester/foodfinds-backend/internal/logging"
	"github.com/xw1nchester/foodfinds-backend/internal/seed"
	seeddb "github.com/xw1nchester/foodfinds-backend/internal/seed/db"
	pgclient "github.com/xw1nchester/foodfinds-backend/pkg/client/postgresql"
	pgtx "github.com/xw1nchester/foodfinds-backend/pkg/transactor/postgresql"
	"go.uber.org/zap"
)

func main() {
	var fixturePath string

	flag.StringVar(&fixturePath, "fixture", "fixtures/restaurants.json", "path to seed fixture")

	cfg := config.MustLoad()

	log := logging.New(cfg.Env)
	defer log.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pgClient, err := pgclient.NewClient(ctx, pgclient.Config{
		Username: cfg.PostgreSQL.Username,
		Password: cfg.PostgreSQL.Password,
		Host:     cfg.PostgreSQL.Host,
		Port:     cfg.PostgreSQL.Port,
		Database: cfg.PostgreSQL.Database,
	})
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pgClient.Close()

	f, err := os.Open(fixturePath)
	if err != nil {
		log.Fatal("failed to open fixture", zap.String("path", fixturePath), zap.Error(err))
	}
	defer f.Close()

	fixture, err := seed.Decode(f)
	if err != nil {
		log.Fatal("failed to read fixture", zap.Error(err))
	}

	seeder := seed.New(seeddb.New(pgClient, log), pgtx.NewPgManager(pgClient), log)

	if _, err := seeder.Seed(ctx, *fixture); err != nil {
		log.Fatal("failed to seed database", zap.Error(err))
	}
}
