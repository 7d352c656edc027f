package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/mrsinham/fuzzforge/cmd/fuzzforge/wizard/components"
	"github.com/mrsinham/fuzzforge/cmd/fuzzforge/wizard/types"
	"github.com/mrsinham/fuzzforge/internal/cli"
	"github.com/mrsinham/fuzzforge/internal/fuzzball"
	"github.com/mrsinham/fuzzforge/internal/util"
)

// SummaryAction represents the action selected on the summary screen
type SummaryAction int

const (
	// SummaryActionBack returns to the parameter screen
	SummaryActionBack SummaryAction = iota
	// SummaryActionPreview prints the values and opens the preview window
	SummaryActionPreview
	// SummaryActionPrint prints the values
	SummaryActionPrint
	// SummaryActionSaveConfig saves parameters to a YAML file
	SummaryActionSaveConfig
	// SummaryActionCancel exits the wizard
	SummaryActionCancel
)

const (
	actionBack       = "back"
	actionPreview    = "preview"
	actionPrint      = "print"
	actionSaveConfig = "save_config"
	actionCancel     = "cancel"
)

// swatchCells bounds the terminal swatch size.
const swatchCells = 16

var (
	summaryPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("63")).
				Padding(1, 2)

	summaryTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("63")).
				Bold(true).
				MarginBottom(1)

	summaryLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("244"))

	summaryValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252")).
				Bold(true)

	cliCommandStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Padding(0, 1)
)

// SummaryScreen displays the parameters and a swatch before output
type SummaryScreen struct {
	form      *huh.Form
	state     *types.State
	buf       fuzzball.Buffer
	genErr    error
	message   string
	action    string
	done      bool
	cancelled bool
	width     int
	height    int
}

// NewSummaryScreen creates a new summary screen. message is shown above the
// actions, e.g. after saving a configuration.
func NewSummaryScreen(state *types.State, message string) *SummaryScreen {
	s := &SummaryScreen{
		state:   state,
		message: message,
		action:  actionPreview, // Default action
	}

	s.buf, s.genErr = fuzzball.Generate(fuzzball.Params{
		Diameter:   state.Diameter,
		BaseColor:  state.BaseColor,
		AlphaStart: state.AlphaStart,
		AlphaEnd:   state.AlphaEnd,
	})

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("action").
				Title("Select an action").
				Options(
					huh.NewOption("Print values and preview", actionPreview),
					huh.NewOption("Print values", actionPrint),
					huh.NewOption("Save configuration to YAML", actionSaveConfig),
					huh.NewOption("Back to edit", actionBack),
					huh.NewOption("Cancel and exit", actionCancel),
				).
				Value(&s.action),
		),
	).WithShowHelp(false)

	return s
}

// Init implements tea.Model
func (s *SummaryScreen) Init() tea.Cmd {
	return s.form.Init()
}

// Update implements tea.Model
func (s *SummaryScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			s.cancelled = true
			return s, tea.Quit
		case "esc":
			// Esc goes back instead of cancelling
			s.action = actionBack
			s.done = true
			return s, nil
		}
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.done = true
	}

	return s, cmd
}

// View implements tea.Model
func (s *SummaryScreen) View() string {
	if s.cancelled {
		return "Cancelled.\n"
	}

	title := components.TitleStyle.Render("SUMMARY - Review Fuzzball")

	panelWidth := 40
	left := summaryPanelStyle.Width(panelWidth).Render(s.buildParameterSummary())
	right := summaryPanelStyle.Render(s.buildSwatch())
	panels := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)

	parts := []string{title, "", panels, "", s.buildCLICommand(), ""}
	if s.message != "" {
		parts = append(parts, components.SuccessStyle.Render(s.message), "")
	}
	parts = append(parts, s.form.View(), "", "Enter: Select action | Esc: Back")

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// buildParameterSummary builds the left panel showing the parameters
func (s *SummaryScreen) buildParameterSummary() string {
	var sb strings.Builder

	sb.WriteString(summaryTitleStyle.Render("Parameters"))
	sb.WriteString("\n")

	zoom := "auto"
	if s.state.Zoom > 0 {
		zoom = fmt.Sprintf("x%d", s.state.Zoom)
	}

	rows := [][2]string{
		{"Size", fmt.Sprintf("%d x %d", s.state.Diameter, s.state.Diameter)},
		{"Base color", util.FormatColor(s.state.BaseColor)},
		{"Alpha", fmt.Sprintf("%d -> %d", s.state.AlphaStart, s.state.AlphaEnd)},
		{"Preview zoom", zoom},
	}

	if s.genErr != nil {
		rows = append(rows, [2]string{"Error", s.genErr.Error()})
	} else {
		c := s.buf.Coverage()
		rows = append(rows,
			[2]string{"Visible", fmt.Sprintf("%d/%d (%.1f%%)", c.Visible, c.Total, c.Percent())},
			[2]string{"Alpha range", fmt.Sprintf("%d-%d", c.MinAlpha, c.MaxAlpha)},
		)
	}

	for _, row := range rows {
		sb.WriteString(summaryLabelStyle.Render(fmt.Sprintf("%-13s", row[0]+":")))
		sb.WriteString(summaryValueStyle.Render(row[1]))
		sb.WriteString("\n")
	}

	return sb.String()
}

// buildSwatch renders a downsampled terminal preview
func (s *SummaryScreen) buildSwatch() string {
	if s.genErr != nil {
		return components.ErrorStyle.Render("No preview")
	}
	return Swatch(s.buf, swatchCells)
}

// buildCLICommand shows the equivalent command line
func (s *SummaryScreen) buildCLICommand() string {
	cmd := cli.Command(fuzzball.Params{
		Diameter:   s.state.Diameter,
		BaseColor:  s.state.BaseColor,
		AlphaStart: s.state.AlphaStart,
		AlphaEnd:   s.state.AlphaEnd,
	})
	return summaryLabelStyle.Render("Equivalent command:") + "\n" + cliCommandStyle.Render(cmd)
}

// Done returns true if an action was selected
func (s *SummaryScreen) Done() bool {
	return s.done
}

// Cancelled returns true if the user cancelled
func (s *SummaryScreen) Cancelled() bool {
	return s.cancelled
}

// Action returns the selected action
func (s *SummaryScreen) Action() SummaryAction {
	switch s.action {
	case actionPreview:
		return SummaryActionPreview
	case actionPrint:
		return SummaryActionPrint
	case actionSaveConfig:
		return SummaryActionSaveConfig
	case actionCancel:
		return SummaryActionCancel
	default:
		return SummaryActionBack
	}
}
