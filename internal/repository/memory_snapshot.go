package repository

import (
	"context"
	"sync"

	"github.com/alexanderramin/siteworks/internal/domain"
)

// MemorySnapshotRepo keeps a deep copy of the last saved snapshot. It backs
// tests and ephemeral sessions.
type MemorySnapshotRepo struct {
	mu    sync.Mutex
	snap  *domain.Snapshot
	saves int
}

func NewMemorySnapshotRepo(initial *domain.Snapshot) *MemorySnapshotRepo {
	return &MemorySnapshotRepo{snap: initial.Clone()}
}

func (r *MemorySnapshotRepo) Load(ctx context.Context) (*domain.Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.snap == nil {
		return nil, ErrNoSnapshot
	}
	return r.snap.Clone(), nil
}

func (r *MemorySnapshotRepo) Save(ctx context.Context, s *domain.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snap = s.Clone()
	r.saves++
	return nil
}

// Saves returns how many times Save has succeeded.
func (r *MemorySnapshotRepo) Saves() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saves
}
