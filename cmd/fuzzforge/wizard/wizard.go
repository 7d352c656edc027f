// Package wizard implements the interactive fuzzball configuration.
package wizard

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/mrsinham/fuzzforge/cmd/fuzzforge/wizard/components"
	"github.com/mrsinham/fuzzforge/cmd/fuzzforge/wizard/screens"
	"github.com/mrsinham/fuzzforge/cmd/fuzzforge/wizard/types"
	"github.com/mrsinham/fuzzforge/internal/cli"
	"github.com/mrsinham/fuzzforge/internal/config"
	"github.com/mrsinham/fuzzforge/internal/fuzzball"
)

// Phase represents the current phase/screen of the wizard.
type Phase int

const (
	PhaseParams Phase = iota
	PhaseSummary
	PhaseSaveConfig
	PhaseComplete
	PhaseError
)

// defaultConfigPath is proposed by the save dialog.
const defaultConfigPath = "fuzzball.yaml"

// Wizard is the main orchestrator for the wizard interface.
type Wizard struct {
	state *types.State

	phase Phase

	paramsScreen  *screens.ParamsScreen
	summaryScreen *screens.SummaryScreen

	// Save config form
	saveConfigForm *huh.Form
	configPath     string

	width  int
	height int

	// Final state
	cancelled bool
	plan      *cli.Plan
	err       error
}

// NewWizard creates a new wizard with default or loaded state.
func NewWizard(state *types.State) *Wizard {
	if state == nil {
		state = &types.State{
			Diameter:   32,
			BaseColor:  fuzzball.DefaultBaseColor,
			AlphaStart: fuzzball.DefaultAlphaStart,
			AlphaEnd:   fuzzball.DefaultAlphaEnd,
		}
	}

	w := &Wizard{
		state: state,
		phase: PhaseParams,
	}
	w.paramsScreen = screens.NewParamsScreen(w.state)

	return w
}

// Init implements tea.Model.
func (w *Wizard) Init() tea.Cmd {
	return w.paramsScreen.Init()
}

// Update implements tea.Model.
func (w *Wizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		w.width = wsm.Width
		w.height = wsm.Height
	}

	switch w.phase {
	case PhaseParams:
		return w.updateParams(msg)
	case PhaseSummary:
		return w.updateSummary(msg)
	case PhaseSaveConfig:
		return w.updateSaveConfig(msg)
	case PhaseError:
		return w.updateError(msg)
	}

	return w, nil
}

// View implements tea.Model.
func (w *Wizard) View() string {
	switch w.phase {
	case PhaseParams:
		return w.paramsScreen.View()
	case PhaseSummary:
		return w.summaryScreen.View()
	case PhaseSaveConfig:
		return w.viewSaveConfig()
	case PhaseError:
		return lipgloss.JoinVertical(lipgloss.Left,
			components.ErrorStyle.Render("Error: "+w.err.Error()),
			"",
			"Press any key to exit",
		)
	}

	return ""
}

func (w *Wizard) updateParams(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.paramsScreen.Update(msg)
	if ps, ok := model.(*screens.ParamsScreen); ok {
		w.paramsScreen = ps
	}

	if w.paramsScreen.Cancelled() {
		w.cancelled = true
		return w, tea.Quit
	}

	if w.paramsScreen.Done() {
		return w.transitionToSummary("")
	}

	return w, cmd
}

// transitionToSummary moves to the summary screen.
func (w *Wizard) transitionToSummary(message string) (tea.Model, tea.Cmd) {
	w.phase = PhaseSummary
	w.summaryScreen = screens.NewSummaryScreen(w.state, message)
	return w, w.summaryScreen.Init()
}

// updateSummary handles updates in the summary phase.
func (w *Wizard) updateSummary(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.summaryScreen.Update(msg)
	if ss, ok := model.(*screens.SummaryScreen); ok {
		w.summaryScreen = ss
	}

	if w.summaryScreen.Cancelled() {
		w.cancelled = true
		return w, tea.Quit
	}

	if w.summaryScreen.Done() {
		switch w.summaryScreen.Action() {
		case screens.SummaryActionBack:
			w.phase = PhaseParams
			w.paramsScreen = screens.NewParamsScreen(w.state)
			return w, w.paramsScreen.Init()

		case screens.SummaryActionPreview, screens.SummaryActionPrint:
			return w.finish(w.summaryScreen.Action() == screens.SummaryActionPreview)

		case screens.SummaryActionSaveConfig:
			return w.transitionToSaveConfig()

		case screens.SummaryActionCancel:
			w.cancelled = true
			return w, tea.Quit
		}
	}

	return w, cmd
}

// finish builds the plan executed once the program has exited.
func (w *Wizard) finish(preview bool) (tea.Model, tea.Cmd) {
	settings, err := ToSettings(w.state)
	if err != nil {
		w.err = err
		w.phase = PhaseError
		return w, nil
	}
	w.plan = &cli.Plan{Settings: settings, Preview: preview}
	w.phase = PhaseComplete
	return w, tea.Quit
}

// transitionToSaveConfig shows the save config dialog.
func (w *Wizard) transitionToSaveConfig() (tea.Model, tea.Cmd) {
	w.phase = PhaseSaveConfig
	if w.configPath == "" {
		w.configPath = defaultConfigPath
	}

	w.saveConfigForm = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("config_path").
				Title("Save configuration to").
				Description("Enter the path for the YAML config file").
				Value(&w.configPath).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("path is required")
					}
					return nil
				}),
		),
	).WithShowHelp(false)

	return w, w.saveConfigForm.Init()
}

// updateSaveConfig handles updates in the save config phase.
func (w *Wizard) updateSaveConfig(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			return w.transitionToSummary("")
		case "ctrl+c":
			w.cancelled = true
			return w, tea.Quit
		}
	}

	form, cmd := w.saveConfigForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		w.saveConfigForm = f
	}

	if w.saveConfigForm.State == huh.StateCompleted {
		if err := w.saveConfig(); err != nil {
			w.err = err
			w.phase = PhaseError
			return w, nil
		}
		return w.transitionToSummary("Configuration saved to " + w.configPath)
	}

	return w, cmd
}

func (w *Wizard) saveConfig() error {
	settings, err := ToSettings(w.state)
	if err != nil {
		return err
	}
	return config.SaveToYAML(settings, w.configPath)
}

// viewSaveConfig renders the save config dialog.
func (w *Wizard) viewSaveConfig() string {
	title := components.TitleStyle.Render("Save Configuration")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		w.saveConfigForm.View(),
		"",
		"Enter: Save | Esc: Back",
	)
}

func (w *Wizard) updateError(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		return w, tea.Quit
	}
	return w, nil
}

// Plan returns the generation request chosen by the user, or nil.
func (w *Wizard) Plan() *cli.Plan {
	if w.cancelled {
		return nil
	}
	return w.plan
}

// Run launches the wizard. The returned plan is nil when the user left
// without asking for output.
func Run(fromConfig string) (*cli.Plan, error) {
	var state *types.State

	if fromConfig != "" {
		absPath, err := filepath.Abs(fromConfig)
		if err != nil {
			return nil, fmt.Errorf("resolving config path: %w", err)
		}

		loaded, err := config.LoadFromYAML(absPath)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		state = FromSettings(loaded)
	}

	wizard := NewWizard(state)
	p := tea.NewProgram(wizard, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("running wizard: %w", err)
	}

	if w, ok := finalModel.(*Wizard); ok {
		if w.err != nil {
			return nil, w.err
		}
		return w.Plan(), nil
	}

	return nil, nil
}
