package fuzzball

import (
	"bufio"
	"fmt"
	"io"
	"math"
)

// Buffer is a square, row-major sequence of packed ARGB pixels
// (alpha in bits 31-24, red 23-16, green 15-8, blue 7-0).
type Buffer []uint32

// Pack encodes four channels into a single ARGB value.
func Pack(a, r, g, b uint8) uint32 {
	return uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// Unpack decodes an ARGB value into its channels.
func Unpack(v uint32) (a, r, g, b uint8) {
	return uint8(v >> 24 & 0xFF), uint8(v >> 16 & 0xFF), uint8(v >> 8 & 0xFF), uint8(v & 0xFF)
}

// Diameter returns the side length of the buffer, or 0 if its length is not a
// perfect square.
func (b Buffer) Diameter() int {
	n := len(b)
	d := int(math.Sqrt(float64(n)))
	// Correct float rounding around large squares
	for d*d > n {
		d--
	}
	for (d+1)*(d+1) <= n {
		d++
	}
	if d*d != n {
		return 0
	}
	return d
}

// At returns the value of cell (x, y). It panics if the coordinates are
// outside the buffer, like a slice index would.
func (b Buffer) At(x, y int) uint32 {
	d := b.Diameter()
	if x < 0 || y < 0 || x >= d || y >= d {
		panic(fmt.Sprintf("fuzzball: cell (%d, %d) out of range for diameter %d", x, y, d))
	}
	return b[y*d+x]
}

// WriteHex writes every pixel as a 0xAARRGGBB token, comma separated, followed
// by a newline.
func (b Buffer) WriteHex(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for i, v := range b {
		if i > 0 {
			if _, err := bw.WriteString(", "); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(bw, "0x%08X", v); err != nil {
			return err
		}
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}
	return bw.Flush()
}

// Coverage summarizes how much of a buffer is visible.
type Coverage struct {
	Total    int
	Visible  int // pixels with a non-zero alpha
	MinAlpha uint8
	MaxAlpha uint8
}

// Coverage scans the buffer. MinAlpha and MaxAlpha only account for visible
// pixels and are both 0 when none are.
func (b Buffer) Coverage() Coverage {
	c := Coverage{Total: len(b)}
	for _, v := range b {
		a, _, _, _ := Unpack(v)
		if a == 0 {
			continue
		}
		if c.Visible == 0 || a < c.MinAlpha {
			c.MinAlpha = a
		}
		if a > c.MaxAlpha {
			c.MaxAlpha = a
		}
		c.Visible++
	}
	return c
}

// Percent returns the share of visible pixels in [0, 100].
func (c Coverage) Percent() float64 {
	if c.Total == 0 {
		return 0
	}
	return float64(c.Visible) * 100 / float64(c.Total)
}
