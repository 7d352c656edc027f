// Package preview decodes fuzzball buffers onto display surfaces.
//
// The core only depends on the Display and Surface capabilities; concrete
// sinks live next to it (ImageDisplay in memory, the window package on screen).
package preview

import (
	"errors"
	"fmt"

	"github.com/mrsinham/fuzzforge/internal/fuzzball"
)

// ErrSizeMismatch is returned when a buffer length disagrees with its diameter.
var ErrSizeMismatch = errors.New("size mismatch")

// Surface is a drawable image owned by a Display.
type Surface interface {
	SetPixel(x, y int, r, g, b, a uint8)
	// Show hands the finished surface to the display.
	Show() error
}

// Display creates surfaces.
type Display interface {
	CreateSurface(width, height int) (Surface, error)
}

// Preview decodes every packed ARGB value of buf onto a diameter x diameter
// surface and shows it. Nothing is drawn when the buffer does not hold exactly
// diameter*diameter values.
func Preview(buf []uint32, diameter int, display Display) error {
	if diameter <= 0 || len(buf) != diameter*diameter {
		return fmt.Errorf("%w: buffer holds %d pixels, diameter %d needs %d",
			ErrSizeMismatch, len(buf), diameter, max(diameter, 0)*max(diameter, 0))
	}

	surface, err := display.CreateSurface(diameter, diameter)
	if err != nil {
		return fmt.Errorf("creating surface: %w", err)
	}

	for i, v := range buf {
		y := i / diameter
		x := i % diameter
		a, r, g, b := fuzzball.Unpack(v)
		surface.SetPixel(x, y, r, g, b, a)
	}

	return surface.Show()
}
