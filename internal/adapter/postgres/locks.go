package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

const advisoryXactLockSQL = `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`

// AdvisoryXactLock takes a transaction-scoped advisory lock on key. The lock is
// released on commit or rollback. It must be called inside TxManager.RunInTx.
func AdvisoryXactLock(ctx context.Context, pool *pgxpool.Pool, key string) error {
	if !InTx(ctx) {
		return fmt.Errorf("advisory lock %q: no transaction in context", key)
	}
	if _, err := QuerierFromCtx(ctx, pool).Exec(ctx, advisoryXactLockSQL, key); err != nil {
		return fmt.Errorf("advisory lock %q: %w", key, err)
	}
	return nil
}
