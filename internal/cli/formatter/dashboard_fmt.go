package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/siteworks/internal/query"
)

// FormatDashboard renders the vendor's four progress counters.
func FormatDashboard(vendorID int, c query.Counts) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n\n", Dim("VENDOR"), Bold(fmt.Sprintf("#%d", vendorID)))

	rows := [][]string{
		{"Projects", StyleGreen.Render(fmt.Sprint(c.CompletedProjects)), StyleYellow.Render(fmt.Sprint(c.PendingProjects))},
		{"Tasks", StyleGreen.Render(fmt.Sprint(c.CompletedTasks)), StyleYellow.Render(fmt.Sprint(c.PendingTasks))},
	}
	b.WriteString(RenderTable([]string{"", "COMPLETED", "PENDING"}, rows, 1, 2))

	total := c.CompletedTasks + c.PendingTasks
	if total > 0 {
		b.WriteString("\n")
		b.WriteString(RenderProgress(c.CompletedTasks*100/total, 20))
		b.WriteString(Dim(" of tasks completed"))
	}
	return RenderBox("Dashboard", b.String())
}
