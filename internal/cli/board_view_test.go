package cli

import (
	"context"
	"io"
	"testing"

	"github.com/alexanderramin/siteworks/internal/session"
	"github.com/alexanderramin/siteworks/internal/teatest"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBoardDriver(t *testing.T, env *testEnv, vendorID int) *teatest.Driver {
	t.Helper()
	sess, err := session.New(vendorID)
	require.NoError(t, err)

	d := teatest.New(t, newBoardModel(context.Background(), env.app.Workspace, sess), teatest.WithSize(120, 40))
	d.DrainInit()
	return d
}

func TestBoard_ShowsFirstProjectTasks(t *testing.T) {
	d := newBoardDriver(t, testApp(t), 1)

	view := d.View()
	assert.Contains(t, view, "Kitchen Renovation")
	assert.Contains(t, view, "1/3")
	assert.Contains(t, view, "Demolition")
	assert.Contains(t, view, "Tiling")
	assert.NotContains(t, view, "Electrical Wiring")
}

func TestBoard_CyclesProjects(t *testing.T) {
	d := newBoardDriver(t, testApp(t), 1)

	d.PressKey('l')
	assert.Contains(t, d.View(), "Office Fit-Out")
	assert.Contains(t, d.View(), "Plumbing")

	d.Press(tea.KeyLeft)
	d.Press(tea.KeyLeft)
	assert.Contains(t, d.View(), "Bathroom Remodel")
	assert.Contains(t, d.View(), "Furniture Installation")
}

func TestBoard_PaymentsTab(t *testing.T) {
	d := newBoardDriver(t, testApp(t), 1)

	d.Press(tea.KeyTab)
	view := d.View()
	assert.Contains(t, view, "2024-02-12")
	assert.Contains(t, view, "pending")

	d.PressKey('l')
	assert.Contains(t, d.View(), "No payments on this project.")
}

func TestBoard_TaskDetail(t *testing.T) {
	d := newBoardDriver(t, testApp(t), 1)

	d.Press(tea.KeyEnter)
	assert.Contains(t, d.View(), "Old cabinets and countertops removed")

	d.Press(tea.KeyEnter)
	assert.NotContains(t, d.View(), "Old cabinets and countertops removed")
}

func TestBoard_RefreshPicksUpChanges(t *testing.T) {
	env := testApp(t)
	d := newBoardDriver(t, env, 1)
	require.Contains(t, d.View(), "10%")

	_, err := executeCmd(t, env.app, "task", "complete", "--task", "3", "--before", "b", "--after", "a", "--notes", "n")
	require.NoError(t, err)

	d.PressKey('r')
	assert.NotContains(t, d.View(), "10%")
}

func TestBoard_VendorWithoutTasks(t *testing.T) {
	d := newBoardDriver(t, testApp(t), 9)
	assert.Contains(t, d.View(), "No projects with tasks")
}

func TestBoard_Quit(t *testing.T) {
	d := newBoardDriver(t, testApp(t), 1)
	d.PressKey('q')
	assert.True(t, d.Quitting)
}

func TestBoardCmd_RunsProgram(t *testing.T) {
	env := testApp(t)
	env.app.IsInteractive = func() bool { return true }
	var got tea.Model
	env.app.RunProgram = func(m tea.Model, _ io.Reader, _ io.Writer) error {
		got = m
		return nil
	}

	_, err := executeCmd(t, env.app, "board")
	require.NoError(t, err)
	assert.IsType(t, boardModel{}, got)
}
