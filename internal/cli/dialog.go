package cli

import (
	"errors"
	"image/color"

	"github.com/ncruces/zenity"

	"github.com/mrsinham/fuzzforge/internal/util"
)

// ZenityColorPicker opens the platform colour dialog, preselecting initial.
// Dismissing the dialog returns ErrPickCanceled.
func ZenityColorPicker(initial int) (int, error) {
	c, err := zenity.SelectColor(
		zenity.Title("Fuzzball base color"),
		zenity.Color(color.NRGBA{
			R: uint8(initial >> 16),
			G: uint8(initial >> 8),
			B: uint8(initial),
			A: 0xFF,
		}),
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return 0, ErrPickCanceled
		}
		return 0, err
	}
	return util.RGB(c), nil
}
