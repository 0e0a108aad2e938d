// Command catalog-seed loads the status label catalog from a YAML file into
// the database. Categories and labels are upserted by name, so the command
// can be re-run after editing the file.
//
// Flags:
//
//	--file     path to the catalog YAML file (default: catalog.yaml)
//	--dry-run  validate the file without writing to DB
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/asymdl-hash/AsymLAB-sub000/internal/adapter/postgres"
	"github.com/asymdl-hash/AsymLAB-sub000/internal/adapter/postgres/catalog"
	"github.com/asymdl-hash/AsymLAB-sub000/internal/app"
	"github.com/asymdl-hash/AsymLAB-sub000/internal/catalogseed"
	"github.com/asymdl-hash/AsymLAB-sub000/internal/config"
)

func main() {
	fileFlag := flag.String("file", "catalog.yaml", "path to the catalog YAML file")
	dryRunFlag := flag.Bool("dry-run", false, "validate the file without writing to DB")
	flag.Parse()

	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	file, err := catalogseed.LoadFile(*fileFlag)
	if err != nil {
		logger.Error("load catalog file", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if *dryRunFlag {
		if _, err := catalogseed.NewSeeder(logger, nil, nil).Run(ctx, file, true); err != nil {
			logger.Error("dry run", slog.String("error", err.Error()))
			os.Exit(1)
		}
		return
	}

	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	seeder := catalogseed.NewSeeder(logger, catalog.New(pool), postgres.NewTxManager(pool))

	res, err := seeder.Run(ctx, file, false)
	if err != nil {
		logger.Error("seed catalog", slog.String("error", err.Error()))
		pool.Close()
		os.Exit(1)
	}

	logger.Info("done",
		slog.String("file", *fileFlag),
		slog.Int("categories", res.Categories),
		slog.Int("labels", res.Labels),
	)
}
