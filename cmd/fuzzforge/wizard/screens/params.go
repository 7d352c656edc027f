package screens

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/mrsinham/fuzzforge/cmd/fuzzforge/wizard/components"
	"github.com/mrsinham/fuzzforge/cmd/fuzzforge/wizard/types"
	"github.com/mrsinham/fuzzforge/internal/fuzzball"
	"github.com/mrsinham/fuzzforge/internal/util"
)

// ParamsScreen edits the fuzzball parameters
type ParamsScreen struct {
	form      *huh.Form
	helpPanel *components.HelpPanel
	state     *types.State
	width     int
	height    int
	done      bool
	cancelled bool

	// String versions for form binding (huh binds to strings)
	diameterStr   string
	baseColorStr  string
	alphaStartStr string
	alphaEndStr   string
	zoomStr       string
}

// NewParamsScreen creates a new parameter screen
func NewParamsScreen(state *types.State) *ParamsScreen {
	// Set defaults if not provided
	if state.Diameter == 0 {
		state.Diameter = 32
	}

	s := &ParamsScreen{
		helpPanel:     components.NewHelpPanel(),
		state:         state,
		diameterStr:   strconv.Itoa(state.Diameter),
		baseColorStr:  util.FormatColor(state.BaseColor),
		alphaStartStr: strconv.Itoa(state.AlphaStart),
		alphaEndStr:   strconv.Itoa(state.AlphaEnd),
		zoomStr:       strconv.Itoa(state.Zoom),
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("diameter").
				Title("Diameter").
				Value(&s.diameterStr).
				Validate(validateDiameter),

			huh.NewInput().
				Key("base_color").
				Title("Base Color").
				Placeholder("e.g., #FF8800, orange").
				Value(&s.baseColorStr).
				Validate(validateColor),

			huh.NewInput().
				Key("alpha_start").
				Title("Alpha Start").
				Value(&s.alphaStartStr).
				Validate(validateAlpha),

			huh.NewInput().
				Key("alpha_end").
				Title("Alpha End").
				Value(&s.alphaEndStr).
				Validate(validateAlpha),

			huh.NewInput().
				Key("zoom").
				Title("Preview Zoom").
				Value(&s.zoomStr).
				Validate(validateZoom),
		),
	).WithShowHelp(false).WithShowErrors(true)

	return s
}

func validateDiameter(s string) error {
	_, err := util.ParseDiameter(s)
	return err
}

func validateColor(s string) error {
	_, err := util.ParseColor(s)
	return err
}

func validateAlpha(s string) error {
	_, err := util.ParseAlpha(s)
	return err
}

func validateZoom(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("must be a number")
	}
	if n < 0 {
		return fmt.Errorf("must be 0 (automatic) or more")
	}
	return nil
}

// Init implements tea.Model
func (s *ParamsScreen) Init() tea.Cmd {
	return s.form.Init()
}

// Update implements tea.Model
func (s *ParamsScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			s.cancelled = true
			return s, tea.Quit
		}
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.helpPanel.SetSize(msg.Width/3, msg.Height/2)
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	// Update help panel based on focused field
	if focused := s.form.GetFocusedField(); focused != nil {
		s.helpPanel.SetField(focused.GetKey())
	}

	if s.form.State == huh.StateCompleted {
		s.done = true
		s.syncStateFromForm()
	}

	return s, cmd
}

// syncStateFromForm parses form values back into the state. Values were
// validated by the form, so parse errors keep the previous value.
func (s *ParamsScreen) syncStateFromForm() {
	if n, err := util.ParseDiameter(s.diameterStr); err == nil {
		s.state.Diameter = n
	}
	if c, err := util.ParseColor(s.baseColorStr); err == nil {
		s.state.BaseColor = c
	}
	if n, err := util.ParseAlpha(s.alphaStartStr); err == nil {
		s.state.AlphaStart = n
	}
	if n, err := util.ParseAlpha(s.alphaEndStr); err == nil {
		s.state.AlphaEnd = n
	}
	if n, err := strconv.Atoi(s.zoomStr); err == nil && n >= 0 {
		s.state.Zoom = n
	}
}

// View implements tea.Model
func (s *ParamsScreen) View() string {
	if s.cancelled {
		return "Cancelled.\n"
	}

	title := components.TitleStyle.Render("FUZZFORGE WIZARD - Parameters")
	subtitle := components.SubtitleStyle.Render(fmt.Sprintf("Alpha range 0-%d, colors up to 0x%06X", fuzzball.MaxAlpha, fuzzball.MaxColor))

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		subtitle,
		s.form.View(),
		"",
		s.helpPanel.View(),
		"",
		"Tab: Next field | Enter: Submit | Esc: Cancel",
	)

	return content
}

// Done returns true if the form was completed
func (s *ParamsScreen) Done() bool {
	return s.done
}

// Cancelled returns true if the user cancelled
func (s *ParamsScreen) Cancelled() bool {
	return s.cancelled
}
