package service

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/siteworks/internal/domain"
	"github.com/alexanderramin/siteworks/internal/notify"
	"github.com/alexanderramin/siteworks/internal/query"
	"github.com/alexanderramin/siteworks/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRaisePaymentRequest_CompletedPlumbingTask(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	p, err := h.ws.RaisePaymentRequest(ctx, vendorSession(t, 1), RaisePaymentRequest{ProjectID: 2, TaskID: 5})
	require.NoError(t, err)
	assert.Equal(t, 4, p.ID)
	assert.Equal(t, domain.PaymentPending, p.Status)
	assert.Equal(t, "2024-06-14", p.RequestDate.String())
	assert.Equal(t, 1, p.VendorID)

	snap := h.store.Snapshot(ctx)
	require.Len(t, snap.Payments, 4)
	assert.Equal(t, *p, snap.Payments[3])

	task, _ := query.FindVisibleTask(snap, 5, 1)
	assert.Equal(t, domain.TaskCompleted, task.Status, "task is not touched")

	last, _ := h.sink.Last()
	assert.Equal(t, notify.SeveritySuccess, last.Severity)
	assert.Contains(t, last.Message, "Payment request 4")
}

func TestRaisePaymentRequest_ActiveTaskIsRejected(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	p, err := h.ws.RaisePaymentRequest(ctx, vendorSession(t, 1), RaisePaymentRequest{ProjectID: 1, TaskID: 3})
	assert.Nil(t, p)
	require.True(t, domain.IsValidation(err))
	code, _ := domain.ValidationCodeOf(err)
	assert.Equal(t, domain.CodeTaskNotCompleted, code)
	assert.Len(t, h.store.Snapshot(ctx).Payments, 3)

	last, _ := h.sink.Last()
	assert.Equal(t, notify.SeverityError, last.Severity)
}

func TestRaisePaymentRequest_Preconditions(t *testing.T) {
	tests := []struct {
		name string
		req  RaisePaymentRequest
		code domain.ValidationCode
	}{
		{"missing project", RaisePaymentRequest{TaskID: 5}, domain.CodeSelectionRequired},
		{"missing task", RaisePaymentRequest{ProjectID: 2}, domain.CodeSelectionRequired},
		{"task in another project", RaisePaymentRequest{ProjectID: 1, TaskID: 5}, domain.CodeProjectMismatch},
		{"active task", RaisePaymentRequest{ProjectID: 3, TaskID: 2}, domain.CodeTaskNotCompleted},
		{"payment already pending", RaisePaymentRequest{ProjectID: 1, TaskID: 1}, domain.CodePaymentInFlight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			_, err := h.ws.RaisePaymentRequest(context.Background(), vendorSession(t, 1), tt.req)
			code, ok := domain.ValidationCodeOf(err)
			require.True(t, ok, "got %v", err)
			assert.Equal(t, tt.code, code)
		})
	}
}

func TestRaisePaymentRequest_NotFound(t *testing.T) {
	tests := []struct {
		name   string
		req    RaisePaymentRequest
		entity string
	}{
		{"unknown project", RaisePaymentRequest{ProjectID: 9, TaskID: 5}, "project"},
		{"unknown task", RaisePaymentRequest{ProjectID: 2, TaskID: 99}, "task"},
		{"other vendor's task", RaisePaymentRequest{ProjectID: 2, TaskID: 6}, "task"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			_, err := h.ws.RaisePaymentRequest(context.Background(), vendorSession(t, 1), tt.req)
			var nf *domain.NotFoundError
			require.ErrorAs(t, err, &nf)
			assert.Equal(t, tt.entity, nf.Entity)
		})
	}
}

func TestRaisePaymentRequest_NoEligibleWork(t *testing.T) {
	h := newHarness(t)
	_, err := h.ws.RaisePaymentRequest(context.Background(), vendorSession(t, 3), RaisePaymentRequest{})
	code, ok := domain.ValidationCodeOf(err)
	require.True(t, ok)
	assert.Equal(t, domain.CodeNoEligibleWork, code)
}

func TestRaisePaymentRequest_NoEligibleWorkTakesPrecedence(t *testing.T) {
	h := newHarness(t)
	_, err := h.ws.RaisePaymentRequest(context.Background(), vendorSession(t, 3), RaisePaymentRequest{ProjectID: 2, TaskID: 5})
	code, _ := domain.ValidationCodeOf(err)
	assert.Equal(t, domain.CodeNoEligibleWork, code)
}

func TestRaisePaymentRequest_InvalidSession(t *testing.T) {
	h := newHarness(t)
	_, err := h.ws.RaisePaymentRequest(context.Background(), session.Session{}, RaisePaymentRequest{ProjectID: 2, TaskID: 5})
	code, _ := domain.ValidationCodeOf(err)
	assert.Equal(t, domain.CodeInvalidSession, code)
}

func TestRaisePaymentRequest_IDsStayAboveVisibleMax(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	v1 := vendorSession(t, 1)
	v2 := vendorSession(t, 2)

	_, err := h.ws.AdvancePayment(ctx, v2, 2)
	require.NoError(t, err)

	first, err := h.ws.RaisePaymentRequest(ctx, v1, RaisePaymentRequest{ProjectID: 2, TaskID: 5})
	require.NoError(t, err)
	assert.Equal(t, 4, first.ID)

	_, err = h.ws.CompleteTask(ctx, v2, CompleteTaskRequest{TaskID: 4, BeforeRef: "b", AfterRef: "a", Notes: "n"})
	require.NoError(t, err)
	second, err := h.ws.RaisePaymentRequest(ctx, v2, RaisePaymentRequest{ProjectID: 1, TaskID: 4})
	require.NoError(t, err)
	assert.Equal(t, 5, second.ID)

	for _, p := range h.ws.Payments(ctx, v1, nil) {
		assert.Greater(t, second.ID, p.ID)
	}
}

func TestRaisePaymentRequest_AllowedAgainAfterPaid(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	sess := vendorSession(t, 1)

	_, err := h.ws.RaisePaymentRequest(ctx, sess, RaisePaymentRequest{ProjectID: 1, TaskID: 1})
	require.Error(t, err)

	for i := 0; i < 2; i++ {
		_, err = h.ws.AdvancePayment(ctx, sess, 3)
		require.NoError(t, err)
	}

	p, err := h.ws.RaisePaymentRequest(ctx, sess, RaisePaymentRequest{ProjectID: 1, TaskID: 1})
	require.NoError(t, err)
	assert.Equal(t, 4, p.ID)
}

func TestRaisePaymentRequest_PersistenceFailure(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.flaky.FailSaves(errors.New("offline"))

	p, err := h.ws.RaisePaymentRequest(ctx, vendorSession(t, 1), RaisePaymentRequest{ProjectID: 2, TaskID: 5})
	require.NotNil(t, p)
	assert.True(t, domain.IsPersistence(err))
	assert.Len(t, h.store.Snapshot(ctx).Payments, 4)

	last, _ := h.sink.Last()
	assert.Equal(t, notify.SeverityWarning, last.Severity)
}

func TestAdvancePayment(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	sess := vendorSession(t, 1)

	p, err := h.ws.AdvancePayment(ctx, sess, 3)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentApproved, p.Status)

	p, err = h.ws.AdvancePayment(ctx, sess, 3)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPaid, p.Status)

	_, err = h.ws.AdvancePayment(ctx, sess, 3)
	code, ok := domain.ValidationCodeOf(err)
	require.True(t, ok)
	assert.Equal(t, domain.CodeInvalidTransition, code)

	stored, _ := query.FindVisiblePayment(h.store.Snapshot(ctx), 3, 1)
	assert.Equal(t, domain.PaymentPaid, stored.Status)
}

func TestAdvancePayment_OtherVendorIsNotFound(t *testing.T) {
	h := newHarness(t)
	_, err := h.ws.AdvancePayment(context.Background(), vendorSession(t, 1), 2)
	assert.True(t, domain.IsNotFound(err))

	_, err = h.ws.AdvancePayment(context.Background(), vendorSession(t, 1), 77)
	assert.True(t, domain.IsNotFound(err))
}

func TestPaymentNotificationsPerCall(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	sess := vendorSession(t, 1)

	_, _ = h.ws.RaisePaymentRequest(ctx, sess, RaisePaymentRequest{ProjectID: 2, TaskID: 5})
	_, _ = h.ws.RaisePaymentRequest(ctx, sess, RaisePaymentRequest{ProjectID: 2, TaskID: 5})
	_, _ = h.ws.AdvancePayment(ctx, sess, 4)

	got := h.sink.All()
	require.Len(t, got, 3)
	assert.Equal(t, notify.SeveritySuccess, got[0].Severity)
	assert.Equal(t, notify.SeverityError, got[1].Severity)
	assert.Equal(t, notify.SeveritySuccess, got[2].Severity)
	assert.Contains(t, got[2].Message, "approved")

	names := []string{}
	for _, e := range h.observer.Events() {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"raise-payment-request", "raise-payment-request", "advance-payment"}, names)
}
