package preview

import (
	"errors"
	"image/color"
	"testing"

	"github.com/mrsinham/fuzzforge/internal/fuzzball"
)

// recordingDisplay records every call made by Preview.
type recordingDisplay struct {
	created   int
	setPixels int
	shown     int
	failWith  error
}

type recordingSurface struct {
	d *recordingDisplay
}

func (d *recordingDisplay) CreateSurface(width, height int) (Surface, error) {
	if d.failWith != nil {
		return nil, d.failWith
	}
	d.created++
	return &recordingSurface{d: d}, nil
}

func (s *recordingSurface) SetPixel(x, y int, r, g, b, a uint8) { s.d.setPixels++ }

func (s *recordingSurface) Show() error {
	s.d.shown++
	return nil
}

func TestPreview_DecodesEveryPixel(t *testing.T) {
	buf, err := fuzzball.Generate(fuzzball.Params{Diameter: 5, BaseColor: 0x3366CC, AlphaStart: 250, AlphaEnd: 20})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	display := &ImageDisplay{}
	if err := Preview(buf, 5, display); err != nil {
		t.Fatalf("Preview failed: %v", err)
	}

	img := display.Last()
	if img == nil {
		t.Fatal("expected a shown image")
	}
	if b := img.Bounds(); b.Dx() != 5 || b.Dy() != 5 {
		t.Fatalf("expected 5x5 image, got %dx%d", b.Dx(), b.Dy())
	}

	for i, v := range buf {
		x, y := i%5, i/5
		a, r, g, b := fuzzball.Unpack(v)
		want := color.NRGBA{R: r, G: g, B: b, A: a}
		if got := img.NRGBAAt(x, y); got != want {
			t.Errorf("pixel (%d, %d): got %v, want %v", x, y, got, want)
		}
	}
}

func TestPreview_RoundTrip(t *testing.T) {
	// Arbitrary packed values, not only generated ones.
	buf := []uint32{
		fuzzball.Pack(0, 0, 0, 0), fuzzball.Pack(255, 255, 255, 255),
		fuzzball.Pack(0x12, 0x34, 0x56, 0x78), fuzzball.Pack(0xC8, 0xFF, 0, 0),
	}

	display := &ImageDisplay{}
	if err := Preview(buf, 2, display); err != nil {
		t.Fatalf("Preview failed: %v", err)
	}

	img := display.Last()
	for i, v := range buf {
		c := img.NRGBAAt(i%2, i/2)
		if got := fuzzball.Pack(c.A, c.R, c.G, c.B); got != v {
			t.Errorf("pixel %d: decoded 0x%08X, want 0x%08X", i, got, v)
		}
	}
}

func TestPreview_SizeMismatch(t *testing.T) {
	tests := []struct {
		name     string
		length   int
		diameter int
	}{
		{"too short", 8, 3},
		{"too long", 10, 3},
		{"zero diameter", 0, 0},
		{"negative diameter", 1, -1},
		{"not a square", 5, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			display := &recordingDisplay{}
			err := Preview(make([]uint32, tt.length), tt.diameter, display)
			if !errors.Is(err, ErrSizeMismatch) {
				t.Errorf("expected ErrSizeMismatch, got %v", err)
			}
			if display.created != 0 || display.setPixels != 0 || display.shown != 0 {
				t.Errorf("nothing should be drawn, got %+v", display)
			}
		})
	}
}

func TestPreview_CallsSurfaceOnce(t *testing.T) {
	display := &recordingDisplay{}
	if err := Preview(make([]uint32, 16), 4, display); err != nil {
		t.Fatalf("Preview failed: %v", err)
	}
	if display.created != 1 || display.setPixels != 16 || display.shown != 1 {
		t.Errorf("unexpected calls: %+v", display)
	}
}

func TestPreview_DisplayError(t *testing.T) {
	boom := errors.New("no display")
	err := Preview(make([]uint32, 4), 2, &recordingDisplay{failWith: boom})
	if !errors.Is(err, boom) {
		t.Errorf("expected display error to be wrapped, got %v", err)
	}
}
