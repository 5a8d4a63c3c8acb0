package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/siteworks/internal/domain"
)

// PaymentTable renders payments. names maps project ids to project names;
// unknown ids fall back to the numeric id.
func PaymentTable(payments []domain.Payment, names map[int]string) string {
	rows := make([][]string, 0, len(payments))
	for _, p := range payments {
		project, ok := names[p.ProjectID]
		if !ok {
			project = fmt.Sprintf("#%d", p.ProjectID)
		}
		rows = append(rows, []string{
			fmt.Sprint(p.ID),
			project,
			fmt.Sprint(p.TaskID),
			p.RequestDate.String(),
			PaymentStatusPill(p.Status),
		})
	}
	return RenderTable([]string{"ID", "PROJECT", "TASK", "REQUESTED", "STATUS"}, rows, 0, 2)
}

// FormatPaymentBoard renders the payment list with a per-status summary.
func FormatPaymentBoard(payments []domain.Payment, names map[int]string, totals map[domain.PaymentStatus]int) string {
	var b strings.Builder
	summary := []string{
		fmt.Sprintf("%s %d", PaymentStatusPill(domain.PaymentPending), totals[domain.PaymentPending]),
		fmt.Sprintf("%s %d", PaymentStatusPill(domain.PaymentApproved), totals[domain.PaymentApproved]),
		fmt.Sprintf("%s %d", PaymentStatusPill(domain.PaymentPaid), totals[domain.PaymentPaid]),
	}
	b.WriteString(strings.Join(summary, "   "))
	b.WriteString("\n\n")

	if len(payments) == 0 {
		b.WriteString(Dim("No payments found."))
	} else {
		b.WriteString(PaymentTable(payments, names))
	}
	return RenderBox("Payments", b.String())
}
