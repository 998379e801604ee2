package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorAccent    = lipgloss.Color("#F59E0B")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
	colorFg        = lipgloss.Color("#F9FAFB")
	colorStatusBg  = lipgloss.Color("#374151")
)

// Styles
var (
	// Title styles
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	// Box styles
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	// Tree styles
	NodeTypeStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	StatementTypeStyle = lipgloss.NewStyle().
				Foreground(colorSecondary).
				Bold(true)

	NodeValueStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	AbsentValueStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				Italic(true)

	ConnectorStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	MatchStyle = lipgloss.NewStyle().
			Background(colorAccent).
			Foreground(lipgloss.Color("#111827"))

	// Message styles
	ErrorMessageStyle = lipgloss.NewStyle().
				Foreground(colorError)

	OKMessageStyle = lipgloss.NewStyle().
			Foreground(colorSecondary)

	// Status styles
	StatusBarStyle = lipgloss.NewStyle().
			Background(colorStatusBg).
			Foreground(colorFg).
			Padding(0, 1)

	// Help style
	HelpStyle = lipgloss.NewStyle().
			Foreground(colorMuted)
)

// Helper functions
func RenderTitle(title string) string {
	return TitleStyle.Render(title)
}

func RenderError(err string) string {
	return ErrorMessageStyle.Render("error: " + err)
}

func RenderOK(msg string) string {
	return OKMessageStyle.Render(msg)
}

func RenderHelp(help string) string {
	return HelpStyle.Render(help)
}
