package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cucumber/godog"

	"github.com/mrsinham/fuzzforge/internal/preview"
)

// scenarioContext holds state for a single scenario
type scenarioContext struct {
	tmpDir   string
	exitCode int
	stdout   string
	stderr   string
	previous string
	display  *preview.ImageDisplay
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

func InitializeScenario(sc *godog.ScenarioContext) {
	tc := &scenarioContext{}

	// Setup: create temp directory before each scenario
	sc.Before(func(ctx context.Context, s *godog.Scenario) (context.Context, error) {
		tmpDir, err := os.MkdirTemp("", "fuzzforge-e2e-*")
		if err != nil {
			return ctx, err
		}
		*tc = scenarioContext{tmpDir: tmpDir}
		return ctx, nil
	})

	// Teardown: cleanup temp directory after each scenario
	sc.After(func(ctx context.Context, s *godog.Scenario, err error) (context.Context, error) {
		if tc.tmpDir != "" {
			os.RemoveAll(tc.tmpDir)
		}
		return ctx, nil
	})

	sc.Step(`^a config file "([^"]*)" with:$`, tc.aConfigFileWith)
	sc.Step(`^I run fuzzforge with "([^"]*)"$`, tc.iRunFuzzforgeWith)
	sc.Step(`^I run fuzzforge again with "([^"]*)"$`, tc.iRunFuzzforgeAgainWith)
	sc.Step(`^the exit code should be (\d+)$`, tc.theExitCodeShouldBe)
	sc.Step(`^the output should contain "([^"]*)"$`, tc.theOutputShouldContain)
	sc.Step(`^the error output should contain "([^"]*)"$`, tc.theErrorOutputShouldContain)
	sc.Step(`^the buffer should have (\d+) pixels$`, tc.theBufferShouldHavePixels)
	sc.Step(`^pixel (\d+),(\d+) should be "([^"]*)"$`, tc.pixelShouldBe)
	sc.Step(`^no buffer should be printed$`, tc.noBufferShouldBePrinted)
	sc.Step(`^both runs should print the same buffer$`, tc.bothRunsShouldPrintTheSameBuffer)
	sc.Step(`^the preview should show a (\d+)x(\d+) image$`, tc.thePreviewShouldShow)
	sc.Step(`^"([^"]*)" should exist$`, tc.shouldExist)
}

func (tc *scenarioContext) aConfigFileWith(name string, content *godog.DocString) error {
	return os.WriteFile(filepath.Join(tc.tmpDir, name), []byte(content.Content), 0644)
}

func (tc *scenarioContext) iRunFuzzforgeWith(args string) error {
	// Replace {tmpdir} placeholder with actual temp directory
	args = strings.ReplaceAll(args, "{tmpdir}", tc.tmpDir)

	var stdout, stderr bytes.Buffer
	tc.display = &preview.ImageDisplay{}
	env := Env{
		Stdout:  &stdout,
		Stderr:  &stderr,
		Version: "e2e",
		NewDisplay: func(DisplayOptions) preview.Display {
			return tc.display
		},
	}

	tc.exitCode = Run(splitArgs(args), env)
	tc.stdout = stdout.String()
	tc.stderr = stderr.String()
	return nil
}

func (tc *scenarioContext) iRunFuzzforgeAgainWith(args string) error {
	tc.previous = tc.stdout
	return tc.iRunFuzzforgeWith(args)
}

func (tc *scenarioContext) theExitCodeShouldBe(expected int) error {
	if tc.exitCode != expected {
		return fmt.Errorf("expected exit code %d, got %d\nStderr:\n%s", expected, tc.exitCode, tc.stderr)
	}
	return nil
}

func (tc *scenarioContext) theOutputShouldContain(expected string) error {
	if !strings.Contains(tc.stdout, expected) {
		return fmt.Errorf("output does not contain %q\nOutput:\n%s", expected, tc.stdout)
	}
	return nil
}

func (tc *scenarioContext) theErrorOutputShouldContain(expected string) error {
	if !strings.Contains(tc.stderr, expected) {
		return fmt.Errorf("error output does not contain %q\nStderr:\n%s", expected, tc.stderr)
	}
	return nil
}

// tokens returns the hex tokens printed after the header line.
func (tc *scenarioContext) tokens() ([]string, int, error) {
	lines := strings.Split(strings.TrimSpace(tc.stdout), "\n")
	if len(lines) != 2 {
		return nil, 0, fmt.Errorf("expected header and buffer lines, got:\n%s", tc.stdout)
	}
	var d, d2 int
	if _, err := fmt.Sscanf(lines[0], "Fuzzball (%d x %d):", &d, &d2); err != nil || d != d2 {
		return nil, 0, fmt.Errorf("unexpected header %q", lines[0])
	}
	return strings.Split(lines[1], ", "), d, nil
}

func (tc *scenarioContext) theBufferShouldHavePixels(count int) error {
	tokens, _, err := tc.tokens()
	if err != nil {
		return err
	}
	if len(tokens) != count {
		return fmt.Errorf("expected %d pixels, found %d", count, len(tokens))
	}
	return nil
}

func (tc *scenarioContext) pixelShouldBe(x, y int, expected string) error {
	tokens, d, err := tc.tokens()
	if err != nil {
		return err
	}
	if x >= d || y >= d {
		return fmt.Errorf("pixel %d,%d outside %dx%d buffer", x, y, d, d)
	}
	if got := tokens[y*d+x]; got != expected {
		return fmt.Errorf("pixel %d,%d is %s, expected %s", x, y, got, expected)
	}
	return nil
}

func (tc *scenarioContext) noBufferShouldBePrinted() error {
	if tc.stdout != "" {
		return fmt.Errorf("expected no output, got:\n%s", tc.stdout)
	}
	return nil
}

func (tc *scenarioContext) bothRunsShouldPrintTheSameBuffer() error {
	if tc.previous == "" || tc.previous != tc.stdout {
		return fmt.Errorf("outputs differ:\n%s\n---\n%s", tc.previous, tc.stdout)
	}
	return nil
}

func (tc *scenarioContext) thePreviewShouldShow(width, height int) error {
	img := tc.display.Last()
	if img == nil {
		return fmt.Errorf("no preview was shown")
	}
	if b := img.Bounds(); b.Dx() != width || b.Dy() != height {
		return fmt.Errorf("preview is %dx%d, expected %dx%d", b.Dx(), b.Dy(), width, height)
	}
	return nil
}

func (tc *scenarioContext) shouldExist(path string) error {
	path = strings.ReplaceAll(path, "{tmpdir}", tc.tmpDir)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("path does not exist: %s", path)
	}
	return nil
}

// splitArgs splits a command line string into arguments, honouring single
// quotes (double quotes delimit the step argument itself).
func splitArgs(s string) []string {
	var args []string
	var current strings.Builder
	inQuote := false

	for _, r := range s {
		switch {
		case r == '\'':
			inQuote = !inQuote
		case r == ' ' && !inQuote:
			if current.Len() > 0 {
				args = append(args, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 {
		args = append(args, current.String())
	}
	return args
}
