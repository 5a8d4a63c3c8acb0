package domain

type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "active"
	ProjectCompleted ProjectStatus = "completed"
)

type TaskStatus string

const (
	TaskActive    TaskStatus = "active"
	TaskCompleted TaskStatus = "completed"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentApproved PaymentStatus = "approved"
	PaymentPaid     PaymentStatus = "paid"
)

// ValidProjectStatuses is the canonical set of accepted project status strings.
var ValidProjectStatuses = map[ProjectStatus]bool{
	ProjectActive: true, ProjectCompleted: true,
}

// ValidTaskStatuses is the canonical set of accepted task status strings.
var ValidTaskStatuses = map[TaskStatus]bool{
	TaskActive: true, TaskCompleted: true,
}

// ValidPaymentStatuses is the canonical set of accepted payment status strings.
var ValidPaymentStatuses = map[PaymentStatus]bool{
	PaymentPending: true, PaymentApproved: true, PaymentPaid: true,
}

// Next returns the status that follows s in the approval progression.
// ok is false for paid and for unknown statuses.
func (s PaymentStatus) Next() (next PaymentStatus, ok bool) {
	switch s {
	case PaymentPending:
		return PaymentApproved, true
	case PaymentApproved:
		return PaymentPaid, true
	default:
		return "", false
	}
}

// InFlight reports whether a payment in this status still awaits settlement.
func (s PaymentStatus) InFlight() bool {
	return s == PaymentPending || s == PaymentApproved
}
