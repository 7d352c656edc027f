package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mrsinham/fuzzforge/internal/fuzzball"
)

// swatchBackground is the terminal colour transparent cells blend into.
const swatchBackground = 0x1E1E1E

// Swatch renders buf as a block of coloured cells, at most maxCells per side.
// Larger buffers are sampled at the centre of each cell.
func Swatch(buf fuzzball.Buffer, maxCells int) string {
	d := buf.Diameter()
	if d == 0 || maxCells <= 0 {
		return ""
	}
	cells := min(d, maxCells)

	var sb strings.Builder
	for row := 0; row < cells; row++ {
		y := (2*row + 1) * d / (2 * cells)
		for col := 0; col < cells; col++ {
			x := (2*col + 1) * d / (2 * cells)
			style := lipgloss.NewStyle().Background(lipgloss.Color(BlendHex(buf.At(x, y), swatchBackground)))
			sb.WriteString(style.Render("  "))
		}
		if row < cells-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// BlendHex composites a packed ARGB value over an opaque 0xRRGGBB background
// and returns the #RRGGBB result.
func BlendHex(argb uint32, background int) string {
	a, r, g, b := fuzzball.Unpack(argb)
	blend := func(fg uint8, bg int) int {
		return (int(fg)*int(a) + (bg&0xFF)*(255-int(a)) + 127) / 255
	}
	return fmt.Sprintf("#%02X%02X%02X",
		blend(r, background>>16),
		blend(g, background>>8),
		blend(b, background))
}
