package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mrsinham/fuzzforge/cmd/fuzzforge/wizard/help"
)

// compactHeight is the panel height below which details are hidden.
const compactHeight = 8

var (
	helpBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)

	helpHeadingStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("63")).
				Bold(true)

	helpRangeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	helpBodyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	helpMutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))
)

// HelpPanel shows the help text of the focused form field.
type HelpPanel struct {
	field  string
	width  int
	height int
}

func NewHelpPanel() *HelpPanel {
	return &HelpPanel{width: 60, height: 12}
}

// SetField selects the field to describe. Unknown keys show a hint.
func (h *HelpPanel) SetField(field string) {
	h.field = field
}

func (h *HelpPanel) Field() string {
	return h.field
}

// SetSize fits the panel into the given terminal area.
func (h *HelpPanel) SetSize(width, height int) {
	h.width = max(width, 24)
	h.height = height
}

func (h *HelpPanel) View() string {
	box := helpBoxStyle.Width(h.width - 2)

	text, ok := help.Texts[h.field]
	if !ok {
		return box.Render(helpMutedStyle.Render("Move to a field to see what it does."))
	}

	heading := helpHeadingStyle.Render(text.Title)
	if text.Range != "" {
		heading += "  " + helpRangeStyle.Render(text.Range)
	}

	lines := []string{heading, helpBodyStyle.Render(text.Description)}
	if h.height >= compactHeight && text.Details != "" {
		lines = append(lines, "", helpMutedStyle.Render(text.Details))
	}

	return box.Render(strings.Join(lines, "\n"))
}
