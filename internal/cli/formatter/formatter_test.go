package formatter

import (
	"regexp"
	"strings"
	"testing"

	"github.com/alexanderramin/siteworks/internal/domain"
	"github.com/alexanderramin/siteworks/internal/notify"
	"github.com/alexanderramin/siteworks/internal/query"
	"github.com/alexanderramin/siteworks/internal/store"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// stripANSI keeps golden files terminal-independent.
func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func newGoldie(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestPaymentTable_Golden(t *testing.T) {
	seed := store.Seed()
	payments := query.PaymentsForVendor(seed, 1, nil)
	names := map[int]string{1: "Kitchen Renovation"}

	newGoldie(t).Assert(t, "payment_table", []byte(stripANSI(PaymentTable(payments, names))))
}

func TestProjectTable_Golden(t *testing.T) {
	newGoldie(t).Assert(t, "project_table", []byte(stripANSI(ProjectTable(store.Seed().Projects))))
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "125,000.00", Money(125000))
	assert.Equal(t, "0.00", Money(0))
	assert.Equal(t, "1,234,567.89", Money(1234567.891))
}

func TestRenderProgress(t *testing.T) {
	assert.Equal(t, "[██████████] 100%", stripANSI(RenderProgress(100, 10)))
	assert.Equal(t, "[████░░░░░░]  40%", stripANSI(RenderProgress(40, 10)))
	assert.Equal(t, "[░░░░░░░░░░]   0%", stripANSI(RenderProgress(-5, 10)))
}

func TestRenderTable_PadsStyledCells(t *testing.T) {
	out := stripANSI(RenderTable([]string{"A", "B"}, [][]string{{Bold("x"), "yy"}, {"zzz", ""}}))
	assert.Equal(t, "A    B\n───  ──\nx    yy\nzzz\n", out)
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, nil))
}

func TestFormatDashboard(t *testing.T) {
	out := stripANSI(FormatDashboard(1, query.DashboardCounts(store.Seed(), 1)))
	assert.Contains(t, out, "DASHBOARD")
	assert.Contains(t, out, "#1")
	assert.Regexp(t, `Projects\s+2\s+1`, out)
	assert.Regexp(t, `Tasks\s+2\s+2`, out)
	assert.Contains(t, out, "50%")
}

func TestFormatTaskBoard(t *testing.T) {
	seed := store.Seed()
	project, _ := query.FindProject(seed, 1)
	out := stripANSI(FormatTaskBoard(project, query.TasksForProjectAndVendor(seed, 1, 1)))

	assert.Contains(t, out, "Kitchen Renovation")
	assert.Contains(t, out, "WEEK 1")
	assert.Contains(t, out, "WEEK 2")
	assert.Contains(t, out, "Demolition")
	assert.Contains(t, out, "Tiling")
	assert.NotContains(t, out, "Electrical Wiring")
	assert.Less(t, strings.Index(out, "WEEK 1"), strings.Index(out, "WEEK 2"))
}

func TestFormatTaskBoard_Empty(t *testing.T) {
	out := stripANSI(FormatTaskBoard(domain.Project{ID: 8, Name: "Porch"}, nil))
	assert.Contains(t, out, "No tasks assigned")
}

func TestFormatTaskDetail(t *testing.T) {
	seed := store.Seed()
	done := stripANSI(FormatTaskDetail(seed.Tasks[0]))
	assert.Contains(t, done, "https://cdn.siteworks.example/tasks/1/before.jpg")
	assert.Contains(t, done, "Old cabinets and countertops removed")

	open := stripANSI(FormatTaskDetail(seed.Tasks[1]))
	assert.Contains(t, open, "--")
	assert.Contains(t, open, "40%")
}

func TestFormatPaymentBoard(t *testing.T) {
	seed := store.Seed()
	out := stripANSI(FormatPaymentBoard(nil, nil, query.PaymentTotals(seed, 1)))
	assert.Contains(t, out, "No payments found.")
	assert.Contains(t, out, "Pending 1")
	assert.Contains(t, out, "Paid 1")
}

func TestPaymentTable_UnknownProjectFallsBackToID(t *testing.T) {
	out := stripANSI(PaymentTable(store.Seed().Payments[:1], nil))
	assert.Contains(t, out, "#1")
}

func TestFormatNotification(t *testing.T) {
	assert.Equal(t, "✔ saved", stripANSI(FormatNotification(notify.Notification{Message: "saved", Severity: notify.SeveritySuccess})))
	assert.Equal(t, "✖ nope", stripANSI(FormatNotification(notify.Notification{Message: "nope", Severity: notify.SeverityError})))
	assert.Equal(t, "! careful", stripANSI(FormatNotification(notify.Notification{Message: "careful", Severity: notify.SeverityWarning})))
}
