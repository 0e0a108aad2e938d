package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/asymdl-hash/AsymLAB-sub000/internal/app"
	"github.com/asymdl-hash/AsymLAB-sub000/internal/boardsync"
	"github.com/asymdl-hash/AsymLAB-sub000/internal/client"
	"github.com/asymdl-hash/AsymLAB-sub000/internal/config"
	"github.com/asymdl-hash/AsymLAB-sub000/internal/prefstore"
)

// env is everything a command needs once the board is loaded.
type env struct {
	cfg     *config.ClientConfig
	log     *slog.Logger
	api     *client.Client
	store   *prefstore.SQLiteStore
	session *boardsync.Session
}

// openEnv loads config, opens the preference file and loads the board.
func openEnv(ctx context.Context, opts ...boardsync.Option) (*env, error) {
	cfg, err := config.LoadClient()
	if err != nil {
		return nil, err
	}

	logger := app.NewLogger(cfg.Log)

	api, err := client.New(cfg.Client.BaseURL, logger,
		client.WithToken(cfg.Client.Token),
		client.WithTimeout(cfg.Client.RequestTimeout),
		client.WithMaxRetries(cfg.Client.MaxRetries),
	)
	if err != nil {
		return nil, err
	}

	store, err := prefstore.OpenSQLite(ctx, cfg.Client.PreferencesPath)
	if err != nil {
		return nil, err
	}

	session := boardsync.NewSession(logger, api, prefstore.New(logger, store), cfg.Client.UserID, opts...)
	if err := session.Load(ctx); err != nil {
		session.Close()
		_ = store.Close()
		return nil, fmt.Errorf("load board: %w", err)
	}

	return &env{cfg: cfg, log: logger, api: api, store: store, session: session}, nil
}

func (e *env) Close() {
	e.session.Close()
	if err := e.store.Close(); err != nil {
		e.log.Warn("close preferences db", slog.String("error", err.Error()))
	}
}

// drainFailures returns the first failure notice already queued, if any.
func (e *env) drainFailures() error {
	for {
		select {
		case n := <-e.session.Notifications():
			if n.Err != nil {
				return fmt.Errorf("%s: %w", n.Message, n.Err)
			}
		default:
			return nil
		}
	}
}
