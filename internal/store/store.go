// Package store holds the authoritative in-memory snapshot for a process
// and persists it through a repository.SnapshotRepo.
//
// All access goes through one mutex. Mutate holds it across read, validate
// and write, so at most one mutation is in flight per Store. Two processes
// sharing one persisted store are last-writer-wins.
package store

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"

	"github.com/alexanderramin/siteworks/internal/domain"
	"github.com/alexanderramin/siteworks/internal/repository"
)

type Store struct {
	repo   repository.SnapshotRepo
	seed   func() *domain.Snapshot
	logger *slog.Logger

	mu          sync.Mutex
	snap        *domain.Snapshot
	loaded      bool
	lastPersist error
}

type Option func(*Store)

// WithLogger routes load and persistence diagnostics to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithSeed replaces the fallback snapshot used when nothing usable is
// persisted.
func WithSeed(seed func() *domain.Snapshot) Option {
	return func(s *Store) {
		if seed != nil {
			s.seed = seed
		}
	}
}

func New(repo repository.SnapshotRepo, opts ...Option) *Store {
	s := &Store{
		repo:   repo,
		seed:   Seed,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the persisted snapshot into memory. A missing, malformed or
// inconsistent snapshot is replaced by the seed, which is persisted right
// away. Load never fails; if persisting the seed fails the error is kept
// for LastPersistError.
func (s *Store) Load(ctx context.Context) *domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.repo.Load(ctx)
	if err == nil {
		if verr := snap.Validate(); verr != nil {
			err = errors.Join(repository.ErrCorruptSnapshot, verr)
		}
	}
	if err != nil {
		level := slog.LevelWarn
		if errors.Is(err, repository.ErrNoSnapshot) {
			level = slog.LevelInfo
		}
		s.logger.Log(ctx, level, "snapshot unavailable, using seed", "error", err.Error())

		snap = s.seed()
		s.snap = snap
		s.loaded = true
		s.lastPersist = s.persistLocked(ctx, "seed")
		return snap.Clone()
	}

	s.snap = snap
	s.loaded = true
	s.lastPersist = nil
	s.logger.DebugContext(ctx, "snapshot loaded",
		"projects", len(snap.Projects), "tasks", len(snap.Tasks), "payments", len(snap.Payments))
	return snap.Clone()
}

// Snapshot returns a deep copy of the current state, loading it first if
// nothing has been loaded yet.
func (s *Store) Snapshot(ctx context.Context) *domain.Snapshot {
	s.mu.Lock()
	if s.loaded {
		defer s.mu.Unlock()
		return s.snap.Clone()
	}
	s.mu.Unlock()
	return s.Load(ctx)
}

// Save replaces the in-memory snapshot with snap and persists it. On a
// persistence failure the in-memory snapshot is kept and a
// *domain.PersistenceError is returned.
func (s *Store) Save(ctx context.Context, snap *domain.Snapshot) error {
	if snap == nil {
		return domain.NewValidationError(domain.CodeInvalidSnapshot, "cannot save a nil snapshot")
	}
	if err := snap.Validate(); err != nil {
		return &domain.ValidationError{Code: domain.CodeInvalidSnapshot, Message: err.Error()}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = snap.Clone()
	s.loaded = true
	s.lastPersist = s.persistLocked(ctx, "save")
	return s.lastPersist
}

// Mutate applies fn to a working copy of the current snapshot. If fn fails
// nothing changes. Otherwise the copy becomes the in-memory snapshot and is
// persisted; a persistence failure is returned as *domain.PersistenceError
// but the change stays applied in memory.
func (s *Store) Mutate(ctx context.Context, fn func(snap *domain.Snapshot) error) error {
	s.mu.Lock()
	if !s.loaded {
		s.mu.Unlock()
		s.Load(ctx)
		s.mu.Lock()
	}
	defer s.mu.Unlock()

	work := s.snap.Clone()
	if err := fn(work); err != nil {
		return err
	}
	s.snap = work
	s.lastPersist = s.persistLocked(ctx, "mutate")
	return s.lastPersist
}

// Reset discards the current state and persists a fresh seed.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = s.seed()
	s.loaded = true
	s.lastPersist = s.persistLocked(ctx, "reset")
	return s.lastPersist
}

// LastPersistError reports the outcome of the most recent persistence
// attempt, nil if it succeeded.
func (s *Store) LastPersistError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastPersist
}

func (s *Store) persistLocked(ctx context.Context, op string) error {
	if err := s.repo.Save(ctx, s.snap); err != nil {
		s.logger.ErrorContext(ctx, "snapshot persist failed", "op", op, "error", err.Error())
		return &domain.PersistenceError{Op: op, Err: err}
	}
	return nil
}
