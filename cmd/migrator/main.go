package main

import (
	"errors"
	"flag"
	"log"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/lindenb1/impress/internal/config"
	"github.com/lindenb1/impress/internal/infrastructure/database"
	"github.com/lindenb1/impress/pkg/logger"
	"go.uber.org/zap"
)

func main() {
	dir := flag.String("dir", "file://./migrations", "directory with migrations")
	dsn := flag.String("dsn", "", "database connection string, defaults to the configured database")
	action := flag.String("action", "up", "migration action: up, down")

	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if err := logger.InitLogger(cfg.Env); err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	if *dsn == "" {
		*dsn = "pgx5://" + strings.TrimPrefix(database.URL(cfg.Database), "postgres://")
	}

	m, err := migrate.New(*dir, *dsn)
	if err != nil {
		logger.Fatal("failed to create migrate instance", zap.Error(err))
	}

	switch *action {
	case "up":
		err = m.Up()
	case "down":
		err = m.Down()
	default:
		logger.Fatal("unknown action", zap.String("action", *action))
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		logger.Fatal("migration failed", zap.Error(err))
	}

	logger.Info("migration done successfully", zap.String("action", *action))
}
