package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/siteworks/internal/cli/formatter"
	"github.com/alexanderramin/siteworks/internal/domain"
	"github.com/alexanderramin/siteworks/internal/query"
	"github.com/alexanderramin/siteworks/internal/service"
	"github.com/alexanderramin/siteworks/internal/session"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type boardTab int

const (
	tabTasks boardTab = iota
	tabPayments
)

type boardKeyMap struct {
	Prev    key.Binding
	Next    key.Binding
	Tab     key.Binding
	Detail  key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

func newBoardKeyMap() boardKeyMap {
	return boardKeyMap{
		Prev:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev project")),
		Next:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next project")),
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "tasks/payments")),
		Detail:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "task detail")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k boardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Tab, k.Detail, k.Refresh, k.Quit}
}

func (k boardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// boardLoadedMsg carries a fresh snapshot read.
type boardLoadedMsg struct {
	snap     *domain.Snapshot
	projects []domain.Project
}

// boardModel is a read-only browser over the vendor's projects: tasks by
// week on one tab, payments on the other.
type boardModel struct {
	ctx  context.Context
	ws   service.Workspace
	sess session.Session

	keys  boardKeyMap
	help  help.Model
	table table.Model

	snap     *domain.Snapshot
	projects []domain.Project
	current  int
	tab      boardTab
	detail   bool
	loading  bool
}

func newBoardModel(ctx context.Context, ws service.Workspace, sess session.Session) boardModel {
	t := table.New(table.WithFocused(true), table.WithHeight(10))
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(formatter.ColorHeader).Bold(true)
	styles.Selected = styles.Selected.Foreground(formatter.ColorFg).Background(formatter.ColorDim)
	t.SetStyles(styles)

	return boardModel{
		ctx:     ctx,
		ws:      ws,
		sess:    sess,
		keys:    newBoardKeyMap(),
		help:    help.New(),
		table:   t,
		loading: true,
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.load
}

func (m boardModel) load() tea.Msg {
	return boardLoadedMsg{
		snap:     m.ws.GetSnapshot(m.ctx, m.sess),
		projects: m.ws.ProjectsWithTasks(m.ctx, m.sess),
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.table.SetHeight(max(msg.Height-12, 3))
		return m, nil

	case boardLoadedMsg:
		m.loading = false
		m.snap = msg.snap
		m.projects = msg.projects
		if m.current >= len(m.projects) {
			m.current = 0
		}
		m.refreshTable()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			if len(m.projects) > 0 {
				m.current = (m.current + 1) % len(m.projects)
				m.detail = false
				m.refreshTable()
			}
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			if len(m.projects) > 0 {
				m.current = (m.current - 1 + len(m.projects)) % len(m.projects)
				m.detail = false
				m.refreshTable()
			}
			return m, nil
		case key.Matches(msg, m.keys.Tab):
			m.tab = 1 - m.tab
			m.detail = false
			m.refreshTable()
			return m, nil
		case key.Matches(msg, m.keys.Detail):
			m.detail = m.tab == tabTasks && !m.detail
			return m, nil
		case key.Matches(msg, m.keys.Refresh):
			return m, m.load
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *boardModel) refreshTable() {
	m.table.SetRows(nil)
	project, ok := m.activeProject()
	if !ok {
		return
	}

	vendorID := m.sess.VendorID()
	var rows []table.Row
	if m.tab == tabTasks {
		m.table.SetColumns([]table.Column{
			{Title: "WEEK", Width: 4}, {Title: "ID", Width: 4}, {Title: "TASK", Width: 26},
			{Title: "CATEGORY", Width: 12}, {Title: "DONE", Width: 5}, {Title: "STATUS", Width: 10},
		})
		for _, w := range query.TasksForProjectAndVendor(m.snap, project.ID, vendorID) {
			for _, t := range w.Tasks {
				rows = append(rows, table.Row{
					strconv.Itoa(w.Week), strconv.Itoa(t.ID), t.Name, t.Category,
					fmt.Sprintf("%d%%", t.CompletedPercent), string(t.Status),
				})
			}
		}
	} else {
		m.table.SetColumns([]table.Column{
			{Title: "ID", Width: 4}, {Title: "TASK", Width: 26}, {Title: "REQUESTED", Width: 10}, {Title: "STATUS", Width: 10},
		})
		tasks := make(map[int]string, len(m.snap.Tasks))
		for _, t := range m.snap.Tasks {
			tasks[t.ID] = t.Name
		}
		for _, p := range query.PaymentsForVendor(m.snap, vendorID, &project.ID) {
			rows = append(rows, table.Row{
				strconv.Itoa(p.ID), tasks[p.TaskID], p.RequestDate.String(), string(p.Status),
			})
		}
	}
	m.table.SetRows(rows)
	m.table.SetCursor(0)
}

func (m boardModel) activeProject() (domain.Project, bool) {
	if m.current < 0 || m.current >= len(m.projects) {
		return domain.Project{}, false
	}
	return m.projects[m.current], true
}

func (m boardModel) selectedTask() (domain.Task, bool) {
	row := m.table.SelectedRow()
	if m.tab != tabTasks || len(row) < 2 {
		return domain.Task{}, false
	}
	id, err := strconv.Atoi(row[1])
	if err != nil {
		return domain.Task{}, false
	}
	return query.FindVisibleTask(m.snap, id, m.sess.VendorID())
}

func (m boardModel) View() string {
	if m.loading {
		return "Loading..."
	}
	project, ok := m.activeProject()
	if !ok {
		return formatter.Dim("No projects with tasks for this vendor.") + "\n\n" + m.help.View(m.keys)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s  %s\n",
		formatter.Bold(project.Name),
		formatter.ProjectStatusPill(project.Status),
		formatter.Dim(fmt.Sprintf("%d/%d", m.current+1, len(m.projects))))

	tasksTab, paymentsTab := formatter.StyleHeader.Render("Tasks"), formatter.Dim("Payments")
	if m.tab == tabPayments {
		tasksTab, paymentsTab = formatter.Dim("Tasks"), formatter.StyleHeader.Render("Payments")
	}
	fmt.Fprintf(&b, "%s  %s\n\n", tasksTab, paymentsTab)

	if len(m.table.Rows()) == 0 {
		if m.tab == tabTasks {
			b.WriteString(formatter.Dim("No tasks on this project."))
		} else {
			b.WriteString(formatter.Dim("No payments on this project."))
		}
		b.WriteString("\n")
	} else {
		b.WriteString(m.table.View())
		b.WriteString("\n")
	}

	if m.detail {
		if t, ok := m.selectedTask(); ok {
			b.WriteString(formatter.FormatTaskDetail(t))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
