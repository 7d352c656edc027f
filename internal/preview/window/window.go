// Package window shows fuzzball previews in a desktop window.
package window

import (
	"errors"
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/mrsinham/fuzzforge/internal/preview"
)

// Display opens one window per shown surface. Show blocks until the window is
// closed.
type Display struct {
	Title   string
	Caption string
	// Zoom is the initial magnification; 0 picks one from the sprite size.
	Zoom int
}

// CreateSurface implements preview.Display.
func (d *Display) CreateSurface(width, height int) (preview.Surface, error) {
	s, err := preview.NewImageSurface(width, height, d.show)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (d *Display) show(sprite *image.NRGBA) error {
	zoom := d.Zoom
	if zoom <= 0 {
		zoom = preview.AutoZoom(max(sprite.Bounds().Dx(), sprite.Bounds().Dy()))
	}

	v := newViewer(sprite, preview.FrameOptions{
		Zoom:       zoom,
		Background: preview.BackgroundChecker,
		Caption:    d.Caption,
	})

	title := d.Title
	if title == "" {
		title = "fuzzforge"
	}
	w, h := v.size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(title + " - Esc/Q: Quit, B: Background, +/-: Zoom")

	if err := ebiten.RunGame(v); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("running preview window: %w", err)
	}
	return nil
}

// viewer is the ebiten game drawing a composed frame.
type viewer struct {
	sprite *image.NRGBA
	opts   preview.FrameOptions

	frame *ebiten.Image
	dirty bool
	help  bool
}

func newViewer(sprite *image.NRGBA, opts preview.FrameOptions) *viewer {
	opts.Zoom = preview.ClampZoom(opts.Zoom)
	return &viewer{sprite: sprite, opts: opts, dirty: true}
}

// size returns the composed frame size in pixels.
func (v *viewer) size() (int, int) {
	b := preview.Compose(v.sprite, v.opts).Bounds()
	return b.Dx(), b.Dy()
}

func (v *viewer) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyB):
		v.toggleBackground()
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual), inpututil.IsKeyJustPressed(ebiten.KeyKPAdd):
		v.setZoom(v.opts.Zoom + 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus), inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract):
		v.setZoom(v.opts.Zoom - 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyH):
		v.help = !v.help
	}

	if v.dirty {
		v.frame = ebiten.NewImageFromImage(preview.Compose(v.sprite, v.opts))
		w, h := v.frame.Bounds().Dx(), v.frame.Bounds().Dy()
		ebiten.SetWindowSize(w, h)
		v.dirty = false
	}
	return nil
}

func (v *viewer) toggleBackground() {
	if v.opts.Background == preview.BackgroundChecker {
		v.opts.Background = preview.BackgroundDark
	} else {
		v.opts.Background = preview.BackgroundChecker
	}
	v.dirty = true
}

func (v *viewer) setZoom(zoom int) {
	zoom = preview.ClampZoom(zoom)
	if zoom == v.opts.Zoom {
		return
	}
	v.opts.Zoom = zoom
	v.dirty = true
}

func (v *viewer) Draw(screen *ebiten.Image) {
	if v.frame == nil {
		return
	}
	screen.DrawImage(v.frame, nil)

	if v.help {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("zoom x%d\nbg %s", v.opts.Zoom, v.opts.Background), 4, 4)
	}
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if v.frame == nil {
		return v.size()
	}
	return v.frame.Bounds().Dx(), v.frame.Bounds().Dy()
}
