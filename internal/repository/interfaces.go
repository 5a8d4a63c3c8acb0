package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/siteworks/internal/domain"
)

var (
	// ErrNoSnapshot means nothing has been persisted yet.
	ErrNoSnapshot = errors.New("no persisted snapshot")

	// ErrCorruptSnapshot means persisted data exists but cannot be read
	// back as a well-formed snapshot.
	ErrCorruptSnapshot = errors.New("corrupt persisted snapshot")
)

// SnapshotRepo loads and saves a complete snapshot as one unit. Both the
// embedded SQLite store and the file store satisfy it, and so can a remote
// service behind the same contract.
type SnapshotRepo interface {
	Load(ctx context.Context) (*domain.Snapshot, error)
	Save(ctx context.Context, s *domain.Snapshot) error
}

type ProjectRepo interface {
	ReplaceAll(ctx context.Context, projects []domain.Project) error
	List(ctx context.Context) ([]domain.Project, error)
}

type TaskRepo interface {
	ReplaceAll(ctx context.Context, tasks []domain.Task) error
	List(ctx context.Context) ([]domain.Task, error)
}

type PaymentRepo interface {
	ReplaceAll(ctx context.Context, payments []domain.Payment) error
	List(ctx context.Context) ([]domain.Payment, error)
}
