package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/siteworks/internal/domain"
	"github.com/alexanderramin/siteworks/internal/notify"
	"github.com/alexanderramin/siteworks/internal/session"
	"github.com/google/uuid"
)

func sinkOrDiscard(sink notify.Sink) notify.Sink {
	if sink == nil {
		return notify.Discard
	}
	return sink
}

// report turns the outcome of a mutation into one notification. A
// persistence failure means the change applied in memory only.
func report(ctx context.Context, sink notify.Sink, success string, err error) {
	switch {
	case err == nil:
		sink.Notify(ctx, notify.Notification{Message: success, Severity: notify.SeveritySuccess})
	case domain.IsPersistence(err):
		sink.Notify(ctx, notify.Notification{
			Message:  fmt.Sprintf("%s, but changes may not survive a reload: %v", success, err),
			Severity: notify.SeverityWarning,
		})
	default:
		sink.Notify(ctx, notify.Notification{Message: err.Error(), Severity: notify.SeverityError})
	}
}

func checkSession(sess session.Session) error {
	if !sess.Valid() {
		return domain.NewValidationError(domain.CodeInvalidSession, "no vendor session")
	}
	return nil
}

func useCaseFields(sess session.Session) map[string]any {
	return map[string]any{
		"op_id":  uuid.NewString(),
		"vendor": sess.VendorID(),
	}
}
