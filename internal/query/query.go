// Package query computes read-side views over a snapshot. Every function is
// pure: it never mutates its input and keeps no state between calls.
package query

import (
	"sort"

	"github.com/alexanderramin/siteworks/internal/domain"
)

// WeekGroup holds the tasks scheduled for one project week.
type WeekGroup struct {
	Week  int           `json:"week"`
	Tasks []domain.Task `json:"tasks"`
}

// Counts is the vendor dashboard aggregate.
type Counts struct {
	CompletedProjects int `json:"completedProjects"`
	PendingProjects   int `json:"pendingProjects"`
	CompletedTasks    int `json:"completedTasks"`
	PendingTasks      int `json:"pendingTasks"`
}

// ProjectsWithTasksForVendor returns, in snapshot order, the projects that
// have at least one task assigned to vendorID.
func ProjectsWithTasksForVendor(snap *domain.Snapshot, vendorID int) []domain.Project {
	ids := make(map[int]bool)
	for _, t := range snap.Tasks {
		if t.VendorID == vendorID {
			ids[t.ProjectID] = true
		}
	}
	return projectsIn(snap, ids)
}

// ProjectsWithPaymentsForVendor returns, in snapshot order, the projects that
// have at least one payment raised by vendorID.
func ProjectsWithPaymentsForVendor(snap *domain.Snapshot, vendorID int) []domain.Project {
	ids := make(map[int]bool)
	for _, p := range snap.Payments {
		if p.VendorID == vendorID {
			ids[p.ProjectID] = true
		}
	}
	return projectsIn(snap, ids)
}

func projectsIn(snap *domain.Snapshot, ids map[int]bool) []domain.Project {
	out := []domain.Project{}
	for _, p := range snap.Projects {
		if ids[p.ID] {
			out = append(out, p)
		}
	}
	return out
}

// TasksForProjectAndVendor groups the vendor's tasks on a project by week.
// Weeks are sorted numerically; tasks keep snapshot order within a week.
func TasksForProjectAndVendor(snap *domain.Snapshot, projectID, vendorID int) []WeekGroup {
	byWeek := make(map[int][]domain.Task)
	for _, t := range snap.Tasks {
		if t.ProjectID == projectID && t.VendorID == vendorID {
			byWeek[t.WeekID] = append(byWeek[t.WeekID], t)
		}
	}

	weeks := make([]int, 0, len(byWeek))
	for w := range byWeek {
		weeks = append(weeks, w)
	}
	sort.Ints(weeks)

	groups := make([]WeekGroup, 0, len(weeks))
	for _, w := range weeks {
		groups = append(groups, WeekGroup{Week: w, Tasks: byWeek[w]})
	}
	return groups
}

// PaymentsForVendor returns the vendor's payments, restricted to projectID
// when it is non-nil. The result is never nil.
func PaymentsForVendor(snap *domain.Snapshot, vendorID int, projectID *int) []domain.Payment {
	out := []domain.Payment{}
	for _, p := range snap.Payments {
		if p.VendorID != vendorID {
			continue
		}
		if projectID != nil && p.ProjectID != *projectID {
			continue
		}
		out = append(out, p)
	}
	return out
}

// DashboardCounts aggregates project and task progress for a vendor. A
// project counts only if the vendor has at least one task on it.
func DashboardCounts(snap *domain.Snapshot, vendorID int) Counts {
	var c Counts
	touched := make(map[int]bool)
	for _, t := range snap.Tasks {
		if t.VendorID != vendorID {
			continue
		}
		touched[t.ProjectID] = true
		if t.IsCompleted() {
			c.CompletedTasks++
		} else {
			c.PendingTasks++
		}
	}
	for _, p := range snap.Projects {
		if !touched[p.ID] {
			continue
		}
		if p.IsCompleted() {
			c.CompletedProjects++
		} else {
			c.PendingProjects++
		}
	}
	return c
}

// EligibleTasks lists the vendor's completed tasks, the only tasks a payment
// request may reference. projectID narrows the list when non-nil.
func EligibleTasks(snap *domain.Snapshot, vendorID int, projectID *int) []domain.Task {
	out := []domain.Task{}
	for _, t := range snap.Tasks {
		if t.VendorID != vendorID || !t.IsCompleted() {
			continue
		}
		if projectID != nil && t.ProjectID != *projectID {
			continue
		}
		out = append(out, t)
	}
	return out
}

func HasEligibleWork(snap *domain.Snapshot, vendorID int) bool {
	for _, t := range snap.Tasks {
		if t.VendorID == vendorID && t.IsCompleted() {
			return true
		}
	}
	return false
}

// NextPaymentID is one past the largest payment id in the snapshot. Using
// the global maximum keeps ids unique across vendors, and is never below
// the vendor's visible maximum plus one.
func NextPaymentID(snap *domain.Snapshot) int {
	maxID := 0
	for _, p := range snap.Payments {
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	return maxID + 1
}

// InFlightPayment returns the pending or approved payment for a task, if any.
func InFlightPayment(snap *domain.Snapshot, taskID int) (domain.Payment, bool) {
	for _, p := range snap.Payments {
		if p.TaskID == taskID && p.Status.InFlight() {
			return p, true
		}
	}
	return domain.Payment{}, false
}

// PaymentTotals counts the vendor's payments by status. Every status is
// present in the result, zero when unused.
func PaymentTotals(snap *domain.Snapshot, vendorID int) map[domain.PaymentStatus]int {
	totals := make(map[domain.PaymentStatus]int, len(domain.ValidPaymentStatuses))
	for s := range domain.ValidPaymentStatuses {
		totals[s] = 0
	}
	for _, p := range snap.Payments {
		if p.VendorID == vendorID {
			totals[p.Status]++
		}
	}
	return totals
}

func FindProject(snap *domain.Snapshot, projectID int) (domain.Project, bool) {
	for _, p := range snap.Projects {
		if p.ID == projectID {
			return p, true
		}
	}
	return domain.Project{}, false
}

// FindVisibleTask looks a task up by id, hiding tasks of other vendors.
func FindVisibleTask(snap *domain.Snapshot, taskID, vendorID int) (domain.Task, bool) {
	for _, t := range snap.Tasks {
		if t.ID == taskID && t.VendorID == vendorID {
			return t, true
		}
	}
	return domain.Task{}, false
}

// FindVisiblePayment looks a payment up by id, hiding payments of other
// vendors.
func FindVisiblePayment(snap *domain.Snapshot, paymentID, vendorID int) (domain.Payment, bool) {
	for _, p := range snap.Payments {
		if p.ID == paymentID && p.VendorID == vendorID {
			return p, true
		}
	}
	return domain.Payment{}, false
}

// VisibleSnapshot is the part of snap a vendor may see: their own tasks and
// payments plus the projects those records reference. The result shares no
// memory with snap and passes Validate whenever snap does.
func VisibleSnapshot(snap *domain.Snapshot, vendorID int) *domain.Snapshot {
	out := &domain.Snapshot{
		Version:  snap.Version,
		Tasks:    []domain.Task{},
		Payments: []domain.Payment{},
		VendorID: vendorID,
	}
	referenced := make(map[int]bool)
	for _, t := range snap.Tasks {
		if t.VendorID == vendorID {
			out.Tasks = append(out.Tasks, t.Clone())
			referenced[t.ProjectID] = true
		}
	}
	for _, p := range snap.Payments {
		if p.VendorID == vendorID {
			out.Payments = append(out.Payments, p)
			referenced[p.ProjectID] = true
		}
	}
	out.Projects = projectsIn(snap, referenced)
	return out
}
