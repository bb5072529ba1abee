package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/unconfessional/internal/buildinfo"
	"github.com/dmitrijs2005/unconfessional/internal/cli"
	"github.com/dmitrijs2005/unconfessional/internal/config"
	"github.com/dmitrijs2005/unconfessional/internal/filex"
	"github.com/dmitrijs2005/unconfessional/internal/journal"
	"github.com/dmitrijs2005/unconfessional/internal/lockout"
	"github.com/dmitrijs2005/unconfessional/internal/logging"
	"github.com/dmitrijs2005/unconfessional/internal/services"
	"github.com/dmitrijs2005/unconfessional/internal/storage"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if _, err := filex.EnsureDir(cfg.DataDir); err != nil {
		log.Fatalf("data dir: %v", err)
	}

	logger, closer := logging.NewFileLogger(cfg.ResolvedLogPath(), cfg.LogLevel)
	defer closer.Close()

	ctx := context.Background()

	repos, err := storage.InitDatabase(ctx, cfg.ResolvedDatabasePath())
	if err != nil {
		log.Fatalf("error initializing database: %v", err)
	}
	defer repos.Close()

	store := journal.NewStore(repos.LocalStorage, logger)
	store.Load(ctx)

	gate := lockout.NewGate(cfg.MaxFailedAttempts, cfg.LockoutDuration)
	svc := services.NewJournalService(store, gate, nil, logger)

	logger.Info(ctx, "journal opened", "entries", len(store.List()), "db", cfg.ResolvedDatabasePath())

	app := cli.NewApp(cfg, svc, logger)
	app.Run(ctx)
}
