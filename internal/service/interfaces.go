package service

import (
	"context"

	"github.com/alexanderramin/siteworks/internal/domain"
	"github.com/alexanderramin/siteworks/internal/query"
	"github.com/alexanderramin/siteworks/internal/session"
)

// SnapshotStore is the slice of store.Store the workflow engine needs.
type SnapshotStore interface {
	Snapshot(ctx context.Context) *domain.Snapshot
	Mutate(ctx context.Context, fn func(snap *domain.Snapshot) error) error
	Reset(ctx context.Context) error
}

// CompleteTaskRequest carries the evidence a vendor submits to close a task.
type CompleteTaskRequest struct {
	TaskID    int
	BeforeRef string
	AfterRef  string
	Notes     string
}

// RaisePaymentRequest selects the completed task a payment is requested for.
// Zero ids mean "not selected".
type RaisePaymentRequest struct {
	ProjectID int
	TaskID    int
}

type TaskService interface {
	CompleteTask(ctx context.Context, sess session.Session, req CompleteTaskRequest) (*domain.Task, error)
}

type PaymentService interface {
	RaisePaymentRequest(ctx context.Context, sess session.Session, req RaisePaymentRequest) (*domain.Payment, error)
	AdvancePayment(ctx context.Context, sess session.Session, paymentID int) (*domain.Payment, error)
}

// Workspace is the contract presentation adapters program against: session
// scoped reads plus the workflow operations.
type Workspace interface {
	TaskService
	PaymentService

	// GetSnapshot is the session-scoped view of the store.
	GetSnapshot(ctx context.Context, sess session.Session) *domain.Snapshot
	// DefaultVendor is the vendor recorded in the store, used when the
	// caller does not name one.
	DefaultVendor(ctx context.Context) int
	DashboardCounts(ctx context.Context, sess session.Session) query.Counts
	ProjectsWithTasks(ctx context.Context, sess session.Session) []domain.Project
	ProjectsWithPayments(ctx context.Context, sess session.Session) []domain.Project
	TaskBoard(ctx context.Context, sess session.Session, projectID int) (*TaskBoard, error)
	Payments(ctx context.Context, sess session.Session, projectID *int) []domain.Payment
	PaymentTotals(ctx context.Context, sess session.Session) map[domain.PaymentStatus]int
	EligibleTasks(ctx context.Context, sess session.Session, projectID *int) []domain.Task
	Reset(ctx context.Context) error
}

// TaskBoard is one project's tasks for a vendor, grouped by week.
type TaskBoard struct {
	Project domain.Project
	Weeks   []query.WeekGroup
}
