// Package cli implements the fuzzforge command line.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/mrsinham/fuzzforge/internal/config"
	"github.com/mrsinham/fuzzforge/internal/fuzzball"
	"github.com/mrsinham/fuzzforge/internal/preview"
	"github.com/mrsinham/fuzzforge/internal/util"
)

// ErrPickCanceled is returned by a ColorPicker when the user dismisses it.
var ErrPickCanceled = errors.New("color selection canceled")

// DisplayOptions configures the preview display created for a run.
type DisplayOptions struct {
	Title   string
	Caption string
	Zoom    int // 0 = automatic
}

// Plan is a fully resolved generation request.
type Plan struct {
	Settings   config.Settings
	Preview    bool
	Stats      bool
	SaveConfig string
}

// Env holds the collaborators of a run. Nil hooks disable the matching
// feature.
type Env struct {
	Stdout  io.Writer
	Stderr  io.Writer
	Version string

	// NewDisplay returns the sink used by --preview.
	NewDisplay func(DisplayOptions) preview.Display
	// PickColor asks the user for a base colour, starting from initial.
	PickColor func(initial int) (int, error)
	// Wizard runs the interactive configuration. A nil plan means the user
	// left without asking for output.
	Wizard func(fromConfig string) (*Plan, error)
}

// Run executes the command line and returns the process exit code.
func Run(args []string, env Env) int {
	if len(args) > 0 && args[0] == "wizard" {
		return runWizard(args[1:], env)
	}

	fs := flag.NewFlagSet("fuzzforge", flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	fs.Usage = func() { printUsage(fs, env.Stderr) }

	var (
		diameter   int
		baseColor  string
		alphaStart int
		alphaEnd   int
		showPrev   bool
	)
	fs.IntVar(&diameter, "diameter", 0, "Diameter of the fuzzball in pixels (required)")
	fs.IntVar(&diameter, "d", 0, "Diameter (shortcut)")
	fs.StringVar(&baseColor, "base-color", "0xFFFFFF", "Base color: hex (0xFF0000, #FF0000) or name (red)")
	fs.StringVar(&baseColor, "c", "0xFFFFFF", "Base color (shortcut)")
	fs.IntVar(&alphaStart, "alpha-start", fuzzball.DefaultAlphaStart, "Alpha at the center (0-255)")
	fs.IntVar(&alphaStart, "s", fuzzball.DefaultAlphaStart, "Alpha start (shortcut)")
	fs.IntVar(&alphaEnd, "alpha-end", fuzzball.DefaultAlphaEnd, "Alpha at the edge (0-255)")
	fs.IntVar(&alphaEnd, "e", fuzzball.DefaultAlphaEnd, "Alpha end (shortcut)")
	fs.BoolVar(&showPrev, "preview", false, "Preview the generated fuzzball in a window")
	fs.BoolVar(&showPrev, "p", false, "Preview (shortcut)")

	zoom := fs.Int("zoom", 0, "Preview magnification (default: automatic)")
	pickColor := fs.Bool("pick-color", false, "Choose the base color in a color dialog")
	stats := fs.Bool("stats", false, "Print a coverage summary to stderr")
	quiet := fs.Bool("quiet", false, "Only log warnings and errors")
	configFile := fs.String("config", "", "Load parameters from YAML file")
	saveConfig := fs.String("save-config", "", "Save parameters to YAML file (after generation)")

	interactive := fs.Bool("interactive", false, "Launch interactive wizard")
	fs.BoolVar(interactive, "i", false, "Launch interactive wizard (shortcut)")

	help := fs.Bool("help", false, "Show help message")
	showVersion := fs.Bool("version", false, "Show version")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printHelp(env.Stdout)
			return 0
		}
		return 1
	}

	if *showVersion {
		fmt.Fprintf(env.Stdout, "fuzzforge %s\n", env.Version)
		return 0
	}

	if *help {
		printHelp(env.Stdout)
		return 0
	}

	if *interactive {
		wizardArgs := []string{"--from", *configFile}
		if *quiet {
			wizardArgs = append(wizardArgs, "--quiet")
		}
		return runWizard(wizardArgs, env)
	}

	if fs.NArg() > 0 {
		fmt.Fprintf(env.Stderr, "Error: unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		printUsage(fs, env.Stderr)
		return 1
	}

	// Handle config file loading; explicit flags override its values
	var settings config.Settings
	fromConfig := false
	if *configFile != "" {
		loaded, err := config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(env.Stderr, "Error loading config: %v\n", err)
			return 1
		}
		settings = loaded
		fromConfig = true
	} else {
		settings.Params = fuzzball.DefaultParams(0)
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["diameter"] || set["d"] {
		settings.Params.Diameter = diameter
	}
	if set["base-color"] || set["c"] {
		rgb, err := util.ParseColor(baseColor)
		if err != nil {
			fmt.Fprintf(env.Stderr, "Error: %v\n", err)
			return 1
		}
		settings.Params.BaseColor = rgb
	}
	if set["alpha-start"] || set["s"] {
		settings.Params.AlphaStart = alphaStart
	}
	if set["alpha-end"] || set["e"] {
		settings.Params.AlphaEnd = alphaEnd
	}
	if set["zoom"] {
		settings.Zoom = *zoom
	}

	// Validate required arguments
	if !fromConfig && !(set["diameter"] || set["d"]) {
		fmt.Fprintf(env.Stderr, "Error: --diameter is required\n")
		printUsage(fs, env.Stderr)
		return 1
	}
	if settings.Zoom < 0 {
		fmt.Fprintf(env.Stderr, "Error: --zoom must be >= 0\n")
		return 1
	}

	if *pickColor {
		if env.PickColor == nil {
			fmt.Fprintf(env.Stderr, "Error: color dialog not available\n")
			return 1
		}
		rgb, err := env.PickColor(settings.Params.BaseColor)
		switch {
		case errors.Is(err, ErrPickCanceled):
			// keep the current colour
		case err != nil:
			fmt.Fprintf(env.Stderr, "Error picking color: %v\n", err)
			return 1
		default:
			settings.Params.BaseColor = rgb
		}
	}

	plan := &Plan{
		Settings:   settings,
		Preview:    showPrev,
		Stats:      *stats,
		SaveConfig: *saveConfig,
	}
	return execute(plan, env, newLogger(env.Stderr, *quiet))
}

func runWizard(args []string, env Env) int {
	fs := flag.NewFlagSet("fuzzforge wizard", flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	from := fs.String("from", "", "Start from a YAML config file")
	quiet := fs.Bool("quiet", false, "Only log warnings and errors")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	if env.Wizard == nil {
		fmt.Fprintf(env.Stderr, "Error: interactive wizard not available\n")
		return 1
	}

	plan, err := env.Wizard(*from)
	if err != nil {
		fmt.Fprintf(env.Stderr, "Error: %v\n", err)
		return 1
	}
	if plan == nil {
		return 0
	}
	return execute(plan, env, newLogger(env.Stderr, *quiet))
}

// execute generates the fuzzball, prints it and runs the optional steps.
func execute(plan *Plan, env Env, logger *slog.Logger) int {
	p := plan.Settings.Params

	buf, err := fuzzball.Generate(p, fuzzball.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(env.Stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Fprintf(env.Stdout, "Fuzzball (%d x %d):\n", p.Diameter, p.Diameter)
	if err := buf.WriteHex(env.Stdout); err != nil {
		fmt.Fprintf(env.Stderr, "Error writing output: %v\n", err)
		return 1
	}

	if plan.Stats {
		c := buf.Coverage()
		fmt.Fprintf(env.Stderr, "Coverage: %d/%d pixels (%.1f%%), alpha %d-%d\n",
			c.Visible, c.Total, c.Percent(), c.MinAlpha, c.MaxAlpha)
	}

	if plan.SaveConfig != "" {
		if err := config.SaveToYAML(plan.Settings, plan.SaveConfig); err != nil {
			fmt.Fprintf(env.Stderr, "Warning: could not save config: %v\n", err)
		} else {
			logger.Info("Configuration saved", "path", plan.SaveConfig)
		}
	}

	if plan.Preview {
		if env.NewDisplay == nil {
			fmt.Fprintf(env.Stderr, "Error: preview not available\n")
			return 1
		}
		display := env.NewDisplay(DisplayOptions{
			Title:   fmt.Sprintf("fuzzforge %dx%d", p.Diameter, p.Diameter),
			Caption: Caption(p),
			Zoom:    plan.Settings.Zoom,
		})
		if err := preview.Preview(buf, p.Diameter, display); err != nil {
			fmt.Fprintf(env.Stderr, "Error previewing fuzzball: %v\n", err)
			return 1
		}
	}

	return 0
}

// Caption describes parameters in one short line.
func Caption(p fuzzball.Params) string {
	return fmt.Sprintf("%dx%d %s a:%d->%d", p.Diameter, p.Diameter, util.FormatColor(p.BaseColor), p.AlphaStart, p.AlphaEnd)
}

// Command returns the command line reproducing p.
func Command(p fuzzball.Params) string {
	return fmt.Sprintf("fuzzforge --diameter %d --base-color 0x%06X --alpha-start %d --alpha-end %d",
		p.Diameter, p.BaseColor, p.AlphaStart, p.AlphaEnd)
}

func newLogger(w io.Writer, quiet bool) *slog.Logger {
	level := slog.LevelInfo
	if quiet {
		level = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "\nUsage:")
	fmt.Fprintln(w, "  fuzzforge --diameter <N> [options]")
	fmt.Fprintln(w, "\nOptions:")
	fs.SetOutput(w)
	fs.PrintDefaults()
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, "fuzzforge")
	fmt.Fprintln(w, "=========")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate a radial alpha-falloff sprite (fuzzball) as packed ARGB values.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  fuzzforge --diameter <N> [options]")
	fmt.Fprintln(w, "  fuzzforge wizard [--from <FILE>]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Required arguments:")
	fmt.Fprintln(w, "  -d, --diameter <N>      Diameter of the fuzzball in pixels")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Optional arguments:")
	fmt.Fprintln(w, "  -c, --base-color <C>    Base color: 0xRRGGBB, #RRGGBB or a name (default: 0xFFFFFF)")
	fmt.Fprintln(w, "  -s, --alpha-start <A>   Alpha at the center, 0-255 (default: 255)")
	fmt.Fprintln(w, "  -e, --alpha-end <A>     Alpha at the edge, 0-255 (default: 0)")
	fmt.Fprintln(w, "  -p, --preview           Show the fuzzball in a preview window")
	fmt.Fprintln(w, "  --zoom <N>              Preview magnification (default: automatic)")
	fmt.Fprintln(w, "  --pick-color            Choose the base color in a color dialog")
	fmt.Fprintln(w, "  --stats                 Print a coverage summary to stderr")
	fmt.Fprintln(w, "  --quiet                 Only log warnings and errors")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Configuration:")
	fmt.Fprintln(w, "  --config <FILE>         Load parameters from YAML (flags override it)")
	fmt.Fprintln(w, "  --save-config <FILE>    Save the parameters used to YAML")
	fmt.Fprintln(w, "  -i, --interactive       Launch the interactive wizard")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  --version               Show version")
	fmt.Fprintln(w, "  --help                  Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  # 16px white fuzzball fading to transparent")
	fmt.Fprintln(w, "  fuzzforge -d 16")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  # Red glow, half opaque at the center, previewed")
	fmt.Fprintln(w, "  fuzzforge -d 64 -c 0xFF0000 -s 128 -p")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  # Named color with a solid rim")
	fmt.Fprintln(w, "  fuzzforge -d 32 -c orange -s 0 -e 255")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  A 'Fuzzball (N x N):' header followed by N*N comma-separated 0xAARRGGBB")
	fmt.Fprintln(w, "  values in row-major order. Status messages go to stderr.")
}
