package preview

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// ImageSurface is a Surface backed by a non-premultiplied RGBA image.
type ImageSurface struct {
	img    *image.NRGBA
	onShow func(*image.NRGBA) error
}

// NewImageSurface allocates a transparent width x height surface. onShow, if
// not nil, receives the image when Show is called.
func NewImageSurface(width, height int, onShow func(*image.NRGBA) error) (*ImageSurface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid dimensions: %dx%d", width, height)
	}
	return &ImageSurface{
		img:    image.NewNRGBA(image.Rect(0, 0, width, height)),
		onShow: onShow,
	}, nil
}

// SetPixel implements Surface.
func (s *ImageSurface) SetPixel(x, y int, r, g, b, a uint8) {
	s.img.SetNRGBA(x, y, color.NRGBA{R: r, G: g, B: b, A: a})
}

// Show implements Surface.
func (s *ImageSurface) Show() error {
	if s.onShow == nil {
		return nil
	}
	return s.onShow(s.img)
}

// Image returns the underlying image.
func (s *ImageSurface) Image() *image.NRGBA {
	return s.img
}

// ImageDisplay keeps shown surfaces in memory.
type ImageDisplay struct {
	mu    sync.Mutex
	shown []*image.NRGBA
}

// CreateSurface implements Display.
func (d *ImageDisplay) CreateSurface(width, height int) (Surface, error) {
	s, err := NewImageSurface(width, height, func(img *image.NRGBA) error {
		d.mu.Lock()
		defer d.mu.Unlock()
		d.shown = append(d.shown, img)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Last returns the most recently shown image, or nil.
func (d *ImageDisplay) Last() *image.NRGBA {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.shown) == 0 {
		return nil
	}
	return d.shown[len(d.shown)-1]
}

// Count returns how many surfaces were shown.
func (d *ImageDisplay) Count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.shown)
}

// Background selects what is drawn behind the sprite.
type Background int

const (
	// BackgroundChecker draws a grey checkerboard so transparency is visible.
	BackgroundChecker Background = iota
	// BackgroundDark draws a flat dark grey.
	BackgroundDark
)

// String returns the background name.
func (b Background) String() string {
	switch b {
	case BackgroundDark:
		return "dark"
	default:
		return "checker"
	}
}

const (
	// Margin around the sprite in the composed frame.
	Margin = 8
	// CheckerCell is the side of a checkerboard square.
	CheckerCell = 8
	// MinPreviewSide is the on-screen side AutoZoom aims for.
	MinPreviewSide = 256
	// MaxZoom bounds magnification.
	MaxZoom = 32
)

var (
	checkerLight = color.NRGBA{R: 0xCC, G: 0xCC, B: 0xCC, A: 0xFF}
	checkerDark  = color.NRGBA{R: 0x99, G: 0x99, B: 0x99, A: 0xFF}
	solidDark    = color.NRGBA{R: 0x20, G: 0x22, B: 0x28, A: 0xFF}
	captionBand  = color.NRGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xFF}
)

// AutoZoom returns the smallest integer magnification that shows a sprite of
// the given diameter at MinPreviewSide pixels or more, clamped to [1, MaxZoom].
func AutoZoom(diameter int) int {
	if diameter <= 0 || diameter >= MinPreviewSide {
		return 1
	}
	zoom := (MinPreviewSide + diameter - 1) / diameter
	return min(zoom, MaxZoom)
}

// ClampZoom bounds a requested zoom to [1, MaxZoom].
func ClampZoom(zoom int) int {
	return max(1, min(zoom, MaxZoom))
}

// FrameOptions controls Compose.
type FrameOptions struct {
	Zoom       int
	Background Background
	Caption    string
}

// Compose draws the sprite magnified by opts.Zoom over the chosen background,
// with the caption in a band below it. The sprite is scaled with nearest
// neighbour so individual cells stay crisp.
func Compose(sprite *image.NRGBA, opts FrameOptions) *image.NRGBA {
	zoom := ClampZoom(opts.Zoom)
	sb := sprite.Bounds()
	spriteW := sb.Dx() * zoom
	spriteH := sb.Dy() * zoom

	face := basicfont.Face7x13
	captionW := 0
	captionH := 0
	if opts.Caption != "" {
		captionW = font.MeasureString(face, opts.Caption).Ceil()
		captionH = face.Metrics().Height.Ceil() + Margin
	}

	width := max(spriteW, captionW) + 2*Margin
	height := spriteH + 2*Margin + captionH
	frame := image.NewNRGBA(image.Rect(0, 0, width, height))

	spriteArea := image.Rect(0, 0, width, spriteH+2*Margin)
	fillBackground(frame, spriteArea, opts.Background)

	dst := image.Rect(0, 0, spriteW, spriteH).Add(image.Pt((width-spriteW)/2, Margin))
	draw.NearestNeighbor.Scale(frame, dst, sprite, sb, draw.Over, nil)

	if opts.Caption != "" {
		band := image.Rect(0, spriteArea.Max.Y, width, height)
		draw.Draw(frame, band, image.NewUniform(captionBand), image.Point{}, draw.Src)

		drawer := &font.Drawer{
			Dst:  frame,
			Src:  image.NewUniform(color.White),
			Face: face,
			Dot:  fixed.P(Margin, band.Min.Y+face.Metrics().Ascent.Ceil()+Margin/2),
		}
		drawer.DrawString(opts.Caption)
	}

	return frame
}

func fillBackground(dst *image.NRGBA, r image.Rectangle, bg Background) {
	if bg == BackgroundDark {
		draw.Draw(dst, r, image.NewUniform(solidDark), image.Point{}, draw.Src)
		return
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := checkerLight
			if (x/CheckerCell+y/CheckerCell)%2 == 1 {
				c = checkerDark
			}
			dst.SetNRGBA(x, y, c)
		}
	}
}
