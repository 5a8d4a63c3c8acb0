package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/siteworks/internal/domain"
	"github.com/alexanderramin/siteworks/internal/notify"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// Header renders an upper-cased section title with an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(strings.Repeat("─", lipgloss.Width(upper))))
}

func Dim(text string) string { return StyleDim.Render(text) }

func Bold(text string) string { return StyleBold.Render(text) }

func ProjectStatusPill(s domain.ProjectStatus) string {
	switch s {
	case domain.ProjectActive:
		return StyleGreen.Render("● Active")
	case domain.ProjectCompleted:
		return StyleDim.Render("✔ Completed")
	default:
		return StyleDim.Render(string(s))
	}
}

func TaskStatusPill(s domain.TaskStatus) string {
	switch s {
	case domain.TaskActive:
		return StyleYellow.Render("○ Active")
	case domain.TaskCompleted:
		return StyleGreen.Render("✔ Completed")
	default:
		return StyleDim.Render(string(s))
	}
}

func PaymentStatusPill(s domain.PaymentStatus) string {
	switch s {
	case domain.PaymentPending:
		return StyleYellow.Render("○ Pending")
	case domain.PaymentApproved:
		return StyleBlue.Render("◐ Approved")
	case domain.PaymentPaid:
		return StyleGreen.Render("● Paid")
	default:
		return StyleDim.Render(string(s))
	}
}

// SeverityPrefix returns the colored glyph shown before a notification.
func SeverityPrefix(s notify.Severity) string {
	switch s {
	case notify.SeveritySuccess:
		return StyleGreen.Render("✔")
	case notify.SeverityWarning:
		return StyleYellow.Render("!")
	case notify.SeverityError:
		return StyleRed.Render("✖")
	default:
		return StyleBlue.Render("•")
	}
}

// FormatNotification renders one workflow notification as a single line.
func FormatNotification(n notify.Notification) string {
	return SeverityPrefix(n.Severity) + " " + n.Message
}
