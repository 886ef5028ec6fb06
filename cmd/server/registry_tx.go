package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"corpreg/internal/registry/store"
	dErrors "corpreg/pkg/domain-errors"
)

const defaultRegistryTxTimeout = 5 * time.Second

// registryPostgresTx runs registry writes in one database transaction.
type registryPostgresTx struct {
	db      *sql.DB
	timeout time.Duration
}

func newRegistryPostgresTx(db *sql.DB, timeout time.Duration) *registryPostgresTx {
	return &registryPostgresTx{db: db, timeout: timeout}
}

func (t *registryPostgresTx) RunInTx(ctx context.Context, fn func(st store.Store) error) error {
	if err := ctx.Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "transaction aborted: context cancelled")
	}

	timeout := t.timeout
	if timeout == 0 {
		timeout = defaultRegistryTxTimeout
	}
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	tx, err := t.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(store.NewPostgresTx(tx)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return dErrors.Wrap(err, dErrors.CodeTimeout, "transaction commit timed out")
		}
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
