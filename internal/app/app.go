package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/asymdl-hash/AsymLAB-sub000/internal/adapter/postgres"
	badgerepo "github.com/asymdl-hash/AsymLAB-sub000/internal/adapter/postgres/badge"
	"github.com/asymdl-hash/AsymLAB-sub000/internal/adapter/postgres/catalog"
	"github.com/asymdl-hash/AsymLAB-sub000/internal/adapter/postgres/history"
	planrepo "github.com/asymdl-hash/AsymLAB-sub000/internal/adapter/postgres/plan"
	"github.com/asymdl-hash/AsymLAB-sub000/internal/auth"
	"github.com/asymdl-hash/AsymLAB-sub000/internal/config"
	"github.com/asymdl-hash/AsymLAB-sub000/internal/service/badge"
	"github.com/asymdl-hash/AsymLAB-sub000/internal/service/lifecycle"
	"github.com/asymdl-hash/AsymLAB-sub000/internal/service/plan"
	"github.com/asymdl-hash/AsymLAB-sub000/internal/telemetry"
	"github.com/asymdl-hash/AsymLAB-sub000/internal/transport/dataloader"
	"github.com/asymdl-hash/AsymLAB-sub000/internal/transport/middleware"
	"github.com/asymdl-hash/AsymLAB-sub000/internal/transport/rest"
	"github.com/asymdl-hash/AsymLAB-sub000/migrations"
)

const (
	startupTimeout     = 30 * time.Second
	limiterCleanupTick = time.Minute
)

// errEmptyCatalog marks a reachable database without any status labels.
var errEmptyCatalog = errors.New("status catalog is empty")

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL, applies migrations when enabled and serves the board API until
// ctx is cancelled, then shuts the server down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	shutdownTelemetry, err := telemetry.Init(cfg.Telemetry, Version)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownTelemetry(context.Background()); err != nil {
			logger.Warn("telemetry shutdown", slog.String("error", err.Error()))
		}
	}()

	metrics, err := telemetry.NewMetrics(telemetry.Meter())
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}

	startCtx, cancel := context.WithTimeout(ctx, startupTimeout)
	defer cancel()

	pool, err := postgres.NewPool(startCtx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(startCtx, pool, migrations.FS, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	jwtMgr := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	handler, cleanup := NewHandler(pool, cfg, logger, metrics, jwtMgr)
	defer cleanup()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancelShutdown()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return <-errCh
}

// NewHandler wires repositories, services and transport on top of pool and
// returns the root HTTP handler. The returned cleanup stops background work.
func NewHandler(
	pool *pgxpool.Pool,
	cfg *config.Config,
	logger *slog.Logger,
	metrics *telemetry.Metrics,
	tokens *auth.JWTManager,
) (http.Handler, func()) {
	txm := postgres.NewTxManager(pool)

	// Repositories.
	plans := planrepo.New(pool)
	badges := badgerepo.New(pool)
	catalogRepo := catalog.New(pool)
	historyRepo := history.New(pool)

	// Services.
	planService := plan.NewService(logger, plans, cfg.Board.MaxListLimit)
	lifecycleService := lifecycle.NewService(logger, plans, historyRepo, txm, metrics, cfg.Board.HistoryLimit)
	badgeService := badge.NewService(logger, badges, catalogRepo, plans, txm, metrics, cfg.Board.BadgeInlineCap)

	// Transport.
	health := rest.NewHealthHandler(BuildVersion(),
		rest.Check{Name: "database", Ping: pool.Ping},
		rest.Check{Name: "catalog", Optional: true, Ping: func(ctx context.Context) error {
			c, err := badgeService.Catalog(ctx)
			if err != nil {
				return err
			}
			if len(c.Labels) == 0 {
				return errEmptyCatalog
			}
			return nil
		}},
	)

	limiter := middleware.NewRateLimiter(limiterCleanupTick)

	boardMiddleware := middleware.Chain(
		middleware.CORS(cfg.CORS),
		middleware.Auth(tokens),
		limiter.LimitWrites(cfg.Server.WritesPerMinute),
		middleware.Middleware(dataloader.Middleware(&dataloader.Sources{Summaries: badgeService})),
	)

	router := rest.NewRouter(rest.Handlers{
		Health: health,
		Plans:  rest.NewPlanHandler(planService, lifecycleService, logger),
		Badges: rest.NewBadgeHandler(badgeService, logger),
	}, boardMiddleware)

	root := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
	)(router)

	return root, limiter.Stop
}
