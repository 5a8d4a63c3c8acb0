package testutil

import (
	"time"

	"github.com/alexanderramin/siteworks/internal/domain"
)

// Project options
type ProjectOption func(*domain.Project)

func WithProjectStatus(s domain.ProjectStatus) ProjectOption {
	return func(p *domain.Project) {
		p.Status = s
	}
}

func WithWeeks(n int) ProjectOption {
	return func(p *domain.Project) {
		p.NWeeks = n
	}
}

func NewTestProject(id int, name string, opts ...ProjectOption) domain.Project {
	p := domain.Project{
		ID:            id,
		Name:          name,
		UserID:        100 + id,
		SiteManagerID: 200 + id,
		NWeeks:        4,
		TotalCost:     10000,
		Status:        domain.ProjectActive,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// Task options
type TaskOption func(*domain.Task)

func WithWeek(w int) TaskOption {
	return func(t *domain.Task) {
		t.WeekID = w
	}
}

func WithVendor(id int) TaskOption {
	return func(t *domain.Task) {
		t.VendorID = id
	}
}

func WithCategory(c string) TaskOption {
	return func(t *domain.Task) {
		t.Category = c
	}
}

// Completed marks the task completed with valid evidence and notes.
func Completed() TaskOption {
	return func(t *domain.Task) {
		t.Status = domain.TaskCompleted
		t.CompletedPercent = 100
		t.ImagesBefore = domain.OptionalString("https://example.test/before.jpg")
		t.ImagesAfter = domain.OptionalString("https://example.test/after.jpg")
		t.Notes = domain.OptionalString("finished")
	}
}

func NewTestTask(id, projectID int, name string, opts ...TaskOption) domain.Task {
	t := domain.Task{
		ID:        id,
		ProjectID: projectID,
		Name:      name,
		VendorID:  1,
		Category:  "General",
		WeekID:    1,
		Status:    domain.TaskActive,
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

// Payment options
type PaymentOption func(*domain.Payment)

func WithPaymentStatus(s domain.PaymentStatus) PaymentOption {
	return func(p *domain.Payment) {
		p.Status = s
	}
}

func WithRequestDate(d time.Time) PaymentOption {
	return func(p *domain.Payment) {
		p.RequestDate = domain.NewDate(d)
	}
}

// NewTestPayment builds a pending payment for task, inheriting its
// project and vendor.
func NewTestPayment(id int, task domain.Task, opts ...PaymentOption) domain.Payment {
	p := domain.Payment{
		ID:          id,
		ProjectID:   task.ProjectID,
		TaskID:      task.ID,
		VendorID:    task.VendorID,
		Status:      domain.PaymentPending,
		RequestDate: domain.NewDate(time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)),
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// NewTestSnapshot assembles a snapshot for vendor 1 from the given records.
func NewTestSnapshot(projects []domain.Project, tasks []domain.Task, payments []domain.Payment) *domain.Snapshot {
	s := &domain.Snapshot{
		Version:  domain.SnapshotVersion,
		Projects: projects,
		Tasks:    tasks,
		Payments: payments,
		VendorID: 1,
	}
	s.Normalize()
	return s
}
