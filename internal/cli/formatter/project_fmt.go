package formatter

import (
	"fmt"

	"github.com/alexanderramin/siteworks/internal/domain"
)

// ProjectTable renders projects as a plain table.
func ProjectTable(projects []domain.Project) string {
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, []string{
			fmt.Sprint(p.ID),
			Bold(p.Name),
			fmt.Sprintf("%dw", p.NWeeks),
			Money(p.TotalCost),
			ProjectStatusPill(p.Status),
		})
	}
	return RenderTable([]string{"ID", "NAME", "WEEKS", "COST", "STATUS"}, rows, 0, 2, 3)
}

// FormatProjectList renders a titled project list inside a box.
func FormatProjectList(title string, projects []domain.Project) string {
	if len(projects) == 0 {
		return RenderBox(title, Dim("No projects."))
	}
	return RenderBox(title, ProjectTable(projects))
}
