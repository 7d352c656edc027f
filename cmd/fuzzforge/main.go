package main

import (
	"os"

	"github.com/mrsinham/fuzzforge/cmd/fuzzforge/wizard"
	"github.com/mrsinham/fuzzforge/internal/cli"
	"github.com/mrsinham/fuzzforge/internal/preview"
	"github.com/mrsinham/fuzzforge/internal/preview/window"
)

// version is set at build time via -ldflags
var version = "dev"

func main() {
	env := cli.Env{
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Version: version,
		NewDisplay: func(opts cli.DisplayOptions) preview.Display {
			return &window.Display{Title: opts.Title, Caption: opts.Caption, Zoom: opts.Zoom}
		},
		PickColor: cli.ZenityColorPicker,
		Wizard:    wizard.Run,
	}
	os.Exit(cli.Run(os.Args[1:], env))
}
