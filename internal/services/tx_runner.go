package services

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/summitretail/pos-api/internal/db"
	"github.com/summitretail/pos-api/internal/helpers"
)

// TxRunner runs a function against a transactional view of the store.
// The function's querier sees an uncommitted transaction; returning an error
// rolls the whole unit back.
type TxRunner interface {
	RunTx(ctx context.Context, fn func(q db.Querier) error) error
}

// maxTxRetries bounds retries of serialization failures on the budget row.
const maxTxRetries = 3

type pgxTxRunner struct {
	pool    *pgxpool.Pool
	queries *db.Queries
}

// NewPgxTxRunner creates a TxRunner backed by a pgx connection pool.
func NewPgxTxRunner(pool *pgxpool.Pool, queries *db.Queries) TxRunner {
	return &pgxTxRunner{pool: pool, queries: queries}
}

func (r *pgxTxRunner) RunTx(ctx context.Context, fn func(q db.Querier) error) error {
	return helpers.WithTransactionRetry(ctx, r.pool, maxTxRetries, func(tx pgx.Tx) error {
		return fn(r.queries.WithTx(tx))
	})
}
