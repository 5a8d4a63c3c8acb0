package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/siteworks/internal/db"
	"github.com/alexanderramin/siteworks/internal/domain"
	"github.com/google/uuid"
)

// SQLiteSnapshotRepo stores a snapshot as normalized rows plus one meta row.
// Save replaces every row inside a single transaction.
type SQLiteSnapshotRepo struct {
	uow db.UnitOfWork
	now func() time.Time
}

func NewSQLiteSnapshotRepo(uow db.UnitOfWork) *SQLiteSnapshotRepo {
	return &SQLiteSnapshotRepo{uow: uow, now: time.Now}
}

// snapshotTables binds the per-table repos to one transaction.
type snapshotTables struct {
	projects ProjectRepo
	tasks    TaskRepo
	payments PaymentRepo
}

func tablesFor(tx db.DBTX) snapshotTables {
	return snapshotTables{
		projects: NewSQLiteProjectRepo(tx),
		tasks:    NewSQLiteTaskRepo(tx),
		payments: NewSQLitePaymentRepo(tx),
	}
}

func (r *SQLiteSnapshotRepo) Load(ctx context.Context) (*domain.Snapshot, error) {
	var snap *domain.Snapshot
	err := r.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		s := &domain.Snapshot{}
		err := tx.QueryRowContext(ctx, `SELECT version, vendor_id FROM snapshot_meta WHERE id = 1`).
			Scan(&s.Version, &s.VendorID)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNoSnapshot
		}
		if err != nil {
			return fmt.Errorf("%w: reading meta: %v", ErrCorruptSnapshot, err)
		}

		tables := tablesFor(tx)
		if s.Projects, err = tables.projects.List(ctx); err != nil {
			return fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
		}
		if s.Tasks, err = tables.tasks.List(ctx); err != nil {
			return fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
		}
		if s.Payments, err = tables.payments.List(ctx); err != nil {
			return fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
		}
		s.Normalize()
		snap = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snap, nil
}

func (r *SQLiteSnapshotRepo) Save(ctx context.Context, s *domain.Snapshot) error {
	if s == nil {
		return fmt.Errorf("saving snapshot: nil snapshot")
	}
	version := s.Version
	if version == 0 {
		version = domain.SnapshotVersion
	}

	return r.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		tables := tablesFor(tx)
		if err := tables.projects.ReplaceAll(ctx, s.Projects); err != nil {
			return err
		}
		if err := tables.tasks.ReplaceAll(ctx, s.Tasks); err != nil {
			return err
		}
		if err := tables.payments.ReplaceAll(ctx, s.Payments); err != nil {
			return err
		}

		_, err := tx.ExecContext(ctx, `INSERT INTO snapshot_meta (id, revision, version, vendor_id, saved_at)
			VALUES (1, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				revision = excluded.revision,
				version = excluded.version,
				vendor_id = excluded.vendor_id,
				saved_at = excluded.saved_at`,
			uuid.New().String(),
			version,
			s.VendorID,
			r.now().UTC().Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("writing snapshot meta: %w", err)
		}
		return nil
	})
}
