package domain

import "fmt"

type Task struct {
	ID               int        `json:"id" yaml:"id"`
	ProjectID        int        `json:"projectId" yaml:"projectId"`
	Name             string     `json:"name" yaml:"name"`
	VendorID         int        `json:"vendorId" yaml:"vendorId"`
	Category         string     `json:"category" yaml:"category"`
	WeekID           int        `json:"week_id" yaml:"week_id"`
	CompletedPercent int        `json:"completed_percent" yaml:"completed_percent"`
	ImagesBefore     *string    `json:"images_before" yaml:"images_before"`
	ImagesAfter      *string    `json:"images_after" yaml:"images_after"`
	Notes            *string    `json:"notes" yaml:"notes"`
	Status           TaskStatus `json:"status" yaml:"status"`
}

// IsCompleted reports whether the task has gone through completion.
func (t *Task) IsCompleted() bool {
	return t.Status == TaskCompleted
}

// HasEvidence reports whether both evidence references are present.
func (t *Task) HasEvidence() bool {
	return present(t.ImagesBefore) && present(t.ImagesAfter)
}

// Complete records the completion evidence and moves the task to completed.
// It is exactly-once: completing a completed task is a validation failure
// and leaves the task untouched. No fields other than the evidence, notes,
// percentage and status are modified.
func (t *Task) Complete(beforeRef, afterRef, notes string) error {
	if t.IsCompleted() {
		return newValidation(CodeAlreadyCompleted, "", fmt.Sprintf("task %d is already completed", t.ID))
	}
	before := OptionalString(beforeRef)
	if before == nil {
		return newValidation(CodeMissingField, "before", "before evidence reference is required")
	}
	after := OptionalString(afterRef)
	if after == nil {
		return newValidation(CodeMissingField, "after", "after evidence reference is required")
	}
	n := OptionalString(notes)
	if n == nil {
		return newValidation(CodeMissingField, "notes", "completion notes are required")
	}

	t.ImagesBefore = before
	t.ImagesAfter = after
	t.Notes = n
	t.CompletedPercent = 100
	t.Status = TaskCompleted
	return nil
}

// Validate checks field-level constraints and the completion invariant.
func (t *Task) Validate() error {
	if t.ID <= 0 {
		return fmt.Errorf("task id must be positive, got %d", t.ID)
	}
	if !ValidTaskStatuses[t.Status] {
		return fmt.Errorf("task %d: unknown status %q", t.ID, t.Status)
	}
	if t.WeekID < 1 {
		return fmt.Errorf("task %d: week must be >= 1, got %d", t.ID, t.WeekID)
	}
	if t.CompletedPercent < 0 || t.CompletedPercent > 100 {
		return fmt.Errorf("task %d: completed percent %d outside 0-100", t.ID, t.CompletedPercent)
	}
	if t.IsCompleted() {
		if t.CompletedPercent != 100 {
			return fmt.Errorf("task %d: completed task must be at 100%%", t.ID)
		}
		if !t.HasEvidence() || !present(t.Notes) {
			return fmt.Errorf("task %d: completed task is missing evidence or notes", t.ID)
		}
	}
	return nil
}

// Clone returns a copy that shares no optional-field pointers with t.
func (t Task) Clone() Task {
	t.ImagesBefore = cloneString(t.ImagesBefore)
	t.ImagesAfter = cloneString(t.ImagesAfter)
	t.Notes = cloneString(t.Notes)
	return t
}
