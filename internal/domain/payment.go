package domain

import "fmt"

type Payment struct {
	ID          int           `json:"id" yaml:"id"`
	ProjectID   int           `json:"projectId" yaml:"projectId"`
	TaskID      int           `json:"taskId" yaml:"taskId"`
	VendorID    int           `json:"vendorId" yaml:"vendorId"`
	Status      PaymentStatus `json:"status" yaml:"status"`
	RequestDate Date          `json:"requestDate" yaml:"requestDate"`
}

// Advance moves the payment one step along pending -> approved -> paid.
func (p *Payment) Advance() error {
	next, ok := p.Status.Next()
	if !ok {
		return newValidation(CodeInvalidTransition, "",
			fmt.Sprintf("payment %d cannot advance from %q", p.ID, p.Status))
	}
	p.Status = next
	return nil
}

// Validate checks the field-level constraints of a payment record.
func (p *Payment) Validate() error {
	if p.ID <= 0 {
		return fmt.Errorf("payment id must be positive, got %d", p.ID)
	}
	if !ValidPaymentStatuses[p.Status] {
		return fmt.Errorf("payment %d: unknown status %q", p.ID, p.Status)
	}
	if p.RequestDate.IsZero() {
		return fmt.Errorf("payment %d: request date is required", p.ID)
	}
	return nil
}
