package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/xiaoxiae/vimvaldi/internal/textwrap"
)

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Logo        *lipgloss.Style
	LogoAccent  *lipgloss.Style
	Title       *lipgloss.Style
	MenuItem    *lipgloss.Style
	MenuChosen  *lipgloss.Style
	Text        *lipgloss.Style
	Rule        *lipgloss.Style
	Headings    []*lipgloss.Style
	StatusLeft  *lipgloss.Style
	StatusInfo  *lipgloss.Style
	StatusBadge *lipgloss.Style
	Prompt      *lipgloss.Style
	Cursor      *lipgloss.Style
	Error       *lipgloss.Style
	Staff       *lipgloss.Style
}

var defaultStyles = Styles{
	Logo: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	LogoAccent: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("178")),
	),
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	MenuItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	MenuChosen: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	Text: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	Rule: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	),
	Headings: []*lipgloss.Style{
		ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true)),
		ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)),
		ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("45")).Bold(true)),
		ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true)),
	},
	StatusLeft: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	),
	StatusInfo: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	StatusBadge: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	Prompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")).Blink(true),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Staff: ptr(
		lipgloss.NewStyle().Underline(true),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

// Heading returns the style for the given heading level (1-based). Levels
// deeper than the palette reuse the last entry.
func (s *Styles) Heading(level int) *lipgloss.Style {
	if level <= 0 || len(s.Headings) == 0 {
		return s.Text
	}
	if level > len(s.Headings) {
		level = len(s.Headings)
	}
	return s.Headings[level-1]
}

// TextRun builds the style for a layout-engine run, layered on top of the
// heading color when the line is a heading.
func (s *Styles) TextRun(run textwrap.Style, heading int) *lipgloss.Style {
	base := *s.Heading(heading)
	if run.Bold {
		base = base.Bold(true)
	}
	if run.Italic {
		base = base.Italic(true)
	}
	if run.Underline {
		base = base.Underline(true)
	}
	if run.Strikethrough {
		base = base.Strikethrough(true)
	}
	return &base
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
