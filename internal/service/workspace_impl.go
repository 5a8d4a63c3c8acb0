package service

import (
	"context"

	"github.com/alexanderramin/siteworks/internal/domain"
	"github.com/alexanderramin/siteworks/internal/notify"
	"github.com/alexanderramin/siteworks/internal/query"
	"github.com/alexanderramin/siteworks/internal/session"
)

type workspace struct {
	TaskService
	PaymentService

	store SnapshotStore
	sink  notify.Sink
}

// NewWorkspace combines the workflow services with session-scoped reads
// over the same store. sink receives the outcome of Reset.
func NewWorkspace(store SnapshotStore, sink notify.Sink, tasks TaskService, payments PaymentService) Workspace {
	return &workspace{TaskService: tasks, PaymentService: payments, store: store, sink: sinkOrDiscard(sink)}
}

// GetSnapshot returns the session's view of the store. Other vendors'
// tasks and payments, and projects only they work on, are left out.
func (w *workspace) GetSnapshot(ctx context.Context, sess session.Session) *domain.Snapshot {
	return query.VisibleSnapshot(w.store.Snapshot(ctx), sess.VendorID())
}

func (w *workspace) DefaultVendor(ctx context.Context) int {
	return w.store.Snapshot(ctx).VendorID
}

func (w *workspace) DashboardCounts(ctx context.Context, sess session.Session) query.Counts {
	return query.DashboardCounts(w.store.Snapshot(ctx), sess.VendorID())
}

func (w *workspace) ProjectsWithTasks(ctx context.Context, sess session.Session) []domain.Project {
	return query.ProjectsWithTasksForVendor(w.store.Snapshot(ctx), sess.VendorID())
}

func (w *workspace) ProjectsWithPayments(ctx context.Context, sess session.Session) []domain.Project {
	return query.ProjectsWithPaymentsForVendor(w.store.Snapshot(ctx), sess.VendorID())
}

// TaskBoard fails with a NotFoundError when the project does not exist.
func (w *workspace) TaskBoard(ctx context.Context, sess session.Session, projectID int) (*TaskBoard, error) {
	snap := w.store.Snapshot(ctx)
	project, ok := query.FindProject(snap, projectID)
	if !ok {
		return nil, &domain.NotFoundError{Entity: "project", ID: projectID}
	}
	return &TaskBoard{
		Project: project,
		Weeks:   query.TasksForProjectAndVendor(snap, projectID, sess.VendorID()),
	}, nil
}

func (w *workspace) Payments(ctx context.Context, sess session.Session, projectID *int) []domain.Payment {
	return query.PaymentsForVendor(w.store.Snapshot(ctx), sess.VendorID(), projectID)
}

func (w *workspace) PaymentTotals(ctx context.Context, sess session.Session) map[domain.PaymentStatus]int {
	return query.PaymentTotals(w.store.Snapshot(ctx), sess.VendorID())
}

func (w *workspace) EligibleTasks(ctx context.Context, sess session.Session, projectID *int) []domain.Task {
	return query.EligibleTasks(w.store.Snapshot(ctx), sess.VendorID(), projectID)
}

// Reset replaces all state with the seed snapshot.
func (w *workspace) Reset(ctx context.Context) error {
	err := w.store.Reset(ctx)
	report(ctx, w.sink, "Snapshot reset to seed data", err)
	return err
}
