package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/siteworks/internal/domain"
	"github.com/alexanderramin/siteworks/internal/query"
)

// WeekTable renders the tasks of one week.
func WeekTable(tasks []domain.Task) string {
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, []string{
			fmt.Sprint(t.ID),
			t.Name,
			Dim(t.Category),
			RenderProgress(t.CompletedPercent, 10),
			TaskStatusPill(t.Status),
		})
	}
	return RenderTable([]string{"ID", "TASK", "CATEGORY", "PROGRESS", "STATUS"}, rows, 0)
}

// FormatTaskBoard renders a project's tasks grouped by week.
func FormatTaskBoard(project domain.Project, weeks []query.WeekGroup) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", Bold(project.Name), ProjectStatusPill(project.Status))
	fmt.Fprintf(&b, "%s\n", Dim(fmt.Sprintf("%d weeks · %s", project.NWeeks, Money(project.TotalCost))))

	if len(weeks) == 0 {
		b.WriteString("\n" + Dim("No tasks assigned to you on this project."))
	}
	for _, w := range weeks {
		b.WriteString("\n")
		b.WriteString(Header(fmt.Sprintf("Week %d", w.Week)))
		b.WriteString("\n")
		b.WriteString(WeekTable(w.Tasks))
	}
	return RenderBox("Task Board", b.String())
}

// FormatTaskDetail renders a single task with its completion evidence.
func FormatTaskDetail(t domain.Task) string {
	field := func(label string, v *string) string {
		value := Dim("--")
		if s := domain.StringValue(v); s != "" {
			value = StyleFg.Render(s)
		}
		return fmt.Sprintf("%s  %s\n", Dim(fmt.Sprintf("%-7s", label)), value)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n\n", Bold(t.Name), TaskStatusPill(t.Status))
	fmt.Fprintf(&b, "%s  %d\n", Dim("PROJECT"), t.ProjectID)
	fmt.Fprintf(&b, "%s  %d\n", Dim("WEEK   "), t.WeekID)
	fmt.Fprintf(&b, "%s  %s\n", Dim("DONE   "), RenderProgress(t.CompletedPercent, 10))
	b.WriteString(field("BEFORE", t.ImagesBefore))
	b.WriteString(field("AFTER", t.ImagesAfter))
	b.WriteString(field("NOTES", t.Notes))
	return RenderBox(fmt.Sprintf("Task %d", t.ID), b.String())
}
