package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/alexanderramin/siteworks/internal/db"
	"github.com/alexanderramin/siteworks/internal/domain"
)

// FailOnNthExecUoW injects Err on the Nth ExecContext call inside a
// transaction, counting from 1. Reads pass through untouched. It drives
// rollback tests for multi-statement saves.
type FailOnNthExecUoW struct {
	DB     *sql.DB
	FailOn int32
	Err    error
}

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	wrapped := &failOnNthExec{DBTX: tx, failOn: u.FailOn, err: u.Err}
	if fnErr := fn(ctx, wrapped); fnErr != nil {
		_ = tx.Rollback()
		return fnErr
	}
	return tx.Commit()
}

type failOnNthExec struct {
	db.DBTX
	count  atomic.Int32
	failOn int32
	err    error
}

func (f *failOnNthExec) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if f.count.Add(1) == f.failOn {
		return nil, f.err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}

// FlakySnapshotRepo wraps a snapshot repo and fails saves or loads on
// demand. Toggle the failures between calls to simulate an outage.
type FlakySnapshotRepo struct {
	Inner interface {
		Load(ctx context.Context) (*domain.Snapshot, error)
		Save(ctx context.Context, s *domain.Snapshot) error
	}

	mu       sync.Mutex
	loadErr  error
	saveErr  error
	attempts int
}

func (r *FlakySnapshotRepo) FailSaves(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saveErr = err
}

func (r *FlakySnapshotRepo) FailLoads(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loadErr = err
}

// SaveAttempts counts every Save call, failed or not.
func (r *FlakySnapshotRepo) SaveAttempts() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.attempts
}

func (r *FlakySnapshotRepo) Load(ctx context.Context) (*domain.Snapshot, error) {
	r.mu.Lock()
	err := r.loadErr
	r.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return r.Inner.Load(ctx)
}

func (r *FlakySnapshotRepo) Save(ctx context.Context, s *domain.Snapshot) error {
	r.mu.Lock()
	r.attempts++
	err := r.saveErr
	r.mu.Unlock()
	if err != nil {
		return err
	}
	return r.Inner.Save(ctx, s)
}
