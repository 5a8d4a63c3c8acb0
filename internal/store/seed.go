package store

import (
	"time"

	"github.com/alexanderramin/siteworks/internal/domain"
)

func ref(s string) *string { return &s }

func seedDate(y int, m time.Month, d int) domain.Date {
	return domain.NewDate(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

// Seed returns the fixed sample snapshot used when nothing usable is
// persisted: three projects, six tasks, three payments, vendor 1.
func Seed() *domain.Snapshot {
	return &domain.Snapshot{
		Version: domain.SnapshotVersion,
		Projects: []domain.Project{
			{ID: 1, Name: "Kitchen Renovation", UserID: 101, SiteManagerID: 201, NWeeks: 4, TotalCost: 125000, Status: domain.ProjectActive},
			{ID: 2, Name: "Office Fit-Out", UserID: 102, SiteManagerID: 202, NWeeks: 6, TotalCost: 240000, Status: domain.ProjectCompleted},
			{ID: 3, Name: "Bathroom Remodel", UserID: 103, SiteManagerID: 203, NWeeks: 3, TotalCost: 68000, Status: domain.ProjectCompleted},
		},
		Tasks: []domain.Task{
			{
				ID: 1, ProjectID: 1, Name: "Demolition", VendorID: 1, Category: "Civil", WeekID: 1,
				CompletedPercent: 100, Status: domain.TaskCompleted,
				ImagesBefore: ref("https://cdn.siteworks.example/tasks/1/before.jpg"),
				ImagesAfter:  ref("https://cdn.siteworks.example/tasks/1/after.jpg"),
				Notes:        ref("Old cabinets and countertops removed"),
			},
			{ID: 2, ProjectID: 3, Name: "Furniture Installation", VendorID: 1, Category: "Carpentry", WeekID: 1, CompletedPercent: 40, Status: domain.TaskActive},
			{ID: 3, ProjectID: 1, Name: "Tiling", VendorID: 1, Category: "Flooring", WeekID: 2, CompletedPercent: 10, Status: domain.TaskActive},
			{ID: 4, ProjectID: 1, Name: "Electrical Wiring", VendorID: 2, Category: "Electrical", WeekID: 1, CompletedPercent: 60, Status: domain.TaskActive},
			{
				ID: 5, ProjectID: 2, Name: "Plumbing", VendorID: 1, Category: "Plumbing", WeekID: 3,
				CompletedPercent: 100, Status: domain.TaskCompleted,
				ImagesBefore: ref("https://cdn.siteworks.example/tasks/5/before.jpg"),
				ImagesAfter:  ref("https://cdn.siteworks.example/tasks/5/after.jpg"),
				Notes:        ref("Pipes replaced and pressure tested"),
			},
			{
				ID: 6, ProjectID: 2, Name: "Painting", VendorID: 2, Category: "Finishing", WeekID: 2,
				CompletedPercent: 100, Status: domain.TaskCompleted,
				ImagesBefore: ref("https://cdn.siteworks.example/tasks/6/before.jpg"),
				ImagesAfter:  ref("https://cdn.siteworks.example/tasks/6/after.jpg"),
				Notes:        ref("Two coats applied"),
			},
		},
		Payments: []domain.Payment{
			{ID: 1, ProjectID: 1, TaskID: 1, VendorID: 1, Status: domain.PaymentPaid, RequestDate: seedDate(2024, time.February, 12)},
			{ID: 2, ProjectID: 2, TaskID: 6, VendorID: 2, Status: domain.PaymentApproved, RequestDate: seedDate(2024, time.March, 5)},
			{ID: 3, ProjectID: 1, TaskID: 1, VendorID: 1, Status: domain.PaymentPending, RequestDate: seedDate(2024, time.March, 20)},
		},
		VendorID: 1,
	}
}
