package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/siteworks/internal/domain"
	"github.com/alexanderramin/siteworks/internal/notify"
	"github.com/alexanderramin/siteworks/internal/query"
	"github.com/alexanderramin/siteworks/internal/session"
)

// Clock supplies the current time. Payment request dates are taken from it.
type Clock func() time.Time

type paymentService struct {
	store    SnapshotStore
	sink     notify.Sink
	now      Clock
	observer UseCaseObserver
}

// NewPaymentService builds the payment workflow. A nil clock uses time.Now.
func NewPaymentService(store SnapshotStore, sink notify.Sink, now Clock, observers ...UseCaseObserver) PaymentService {
	if now == nil {
		now = time.Now
	}
	return &paymentService{
		store:    store,
		sink:     sinkOrDiscard(sink),
		now:      now,
		observer: useCaseObserverOrNoop(observers),
	}
}

// RaisePaymentRequest appends a pending payment for a completed task. A task
// may have at most one pending or approved payment at a time.
func (s *paymentService) RaisePaymentRequest(ctx context.Context, sess session.Session, req RaisePaymentRequest) (payment *domain.Payment, err error) {
	startedAt := time.Now().UTC()
	fields := useCaseFields(sess)
	fields["project"] = req.ProjectID
	fields["task"] = req.TaskID
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "raise-payment-request",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()
	defer func() {
		msg := "Payment request raised"
		if payment != nil {
			msg = fmt.Sprintf("Payment request %d raised for task %d", payment.ID, payment.TaskID)
		}
		report(ctx, s.sink, msg, err)
	}()

	if err = checkSession(sess); err != nil {
		return nil, err
	}

	err = s.store.Mutate(ctx, func(snap *domain.Snapshot) error {
		if err := checkPaymentRequest(snap, sess, req); err != nil {
			return err
		}
		p := domain.Payment{
			ID:          query.NextPaymentID(snap),
			ProjectID:   req.ProjectID,
			TaskID:      req.TaskID,
			VendorID:    sess.VendorID(),
			Status:      domain.PaymentPending,
			RequestDate: domain.NewDate(s.now()),
		}
		snap.Payments = append(snap.Payments, p)
		payment = &p
		return nil
	})
	if payment != nil {
		fields["payment"] = payment.ID
	}
	return payment, err
}

func checkPaymentRequest(snap *domain.Snapshot, sess session.Session, req RaisePaymentRequest) error {
	vendorID := sess.VendorID()
	if !query.HasEligibleWork(snap, vendorID) {
		return domain.NewValidationError(domain.CodeNoEligibleWork, "no completed tasks are available for a payment request")
	}
	if req.ProjectID == 0 {
		return &domain.ValidationError{Code: domain.CodeSelectionRequired, Field: "project", Message: "select a project"}
	}
	if req.TaskID == 0 {
		return &domain.ValidationError{Code: domain.CodeSelectionRequired, Field: "task", Message: "select a task"}
	}
	if _, ok := query.FindProject(snap, req.ProjectID); !ok {
		return &domain.NotFoundError{Entity: "project", ID: req.ProjectID}
	}
	task, ok := query.FindVisibleTask(snap, req.TaskID, vendorID)
	if !ok {
		return &domain.NotFoundError{Entity: "task", ID: req.TaskID}
	}
	if task.ProjectID != req.ProjectID {
		return domain.NewValidationError(domain.CodeProjectMismatch,
			fmt.Sprintf("task %d does not belong to project %d", task.ID, req.ProjectID))
	}
	if !task.IsCompleted() {
		return domain.NewValidationError(domain.CodeTaskNotCompleted,
			fmt.Sprintf("task %d is not completed", task.ID))
	}
	if inFlight, ok := query.InFlightPayment(snap, task.ID); ok {
		return domain.NewValidationError(domain.CodePaymentInFlight,
			fmt.Sprintf("task %d already has payment %d %s", task.ID, inFlight.ID, inFlight.Status))
	}
	return nil
}

// AdvancePayment moves a payment one step towards paid. It is the hook for
// the external approval process.
func (s *paymentService) AdvancePayment(ctx context.Context, sess session.Session, paymentID int) (payment *domain.Payment, err error) {
	startedAt := time.Now().UTC()
	fields := useCaseFields(sess)
	fields["payment"] = paymentID
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "advance-payment",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()
	defer func() {
		msg := fmt.Sprintf("Payment %d advanced", paymentID)
		if payment != nil {
			msg = fmt.Sprintf("Payment %d is now %s", paymentID, payment.Status)
		}
		report(ctx, s.sink, msg, err)
	}()

	if err = checkSession(sess); err != nil {
		return nil, err
	}

	err = s.store.Mutate(ctx, func(snap *domain.Snapshot) error {
		for i := range snap.Payments {
			p := &snap.Payments[i]
			if p.ID != paymentID || !sess.Owns(p.VendorID) {
				continue
			}
			if err := p.Advance(); err != nil {
				return err
			}
			advanced := *p
			payment = &advanced
			return nil
		}
		return &domain.NotFoundError{Entity: "payment", ID: paymentID}
	})
	if payment != nil {
		fields["status"] = string(payment.Status)
	}
	return payment, err
}
