// Package fuzzball generates radial alpha-falloff sprites as packed ARGB buffers.
package fuzzball

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
)

// ErrInvalidParameter is returned when generation parameters are out of range.
var ErrInvalidParameter = errors.New("invalid parameter")

const (
	// MaxAlpha is the largest value accepted for AlphaStart and AlphaEnd.
	MaxAlpha = 255
	// MaxColor is the largest RGB value accepted for BaseColor.
	MaxColor = 0xFFFFFF
	// MaxDiameter bounds the buffer to 16M pixels (64 MiB).
	MaxDiameter = 4096

	DefaultBaseColor  = 0xFFFFFF
	DefaultAlphaStart = 255
	DefaultAlphaEnd   = 0
)

// Params holds the inputs of a fuzzball generation.
type Params struct {
	Diameter   int
	BaseColor  int // 0xRRGGBB
	AlphaStart int // alpha at the centre
	AlphaEnd   int // alpha at the rim
}

// DefaultParams returns white parameters fading from opaque to transparent.
func DefaultParams(diameter int) Params {
	return Params{
		Diameter:   diameter,
		BaseColor:  DefaultBaseColor,
		AlphaStart: DefaultAlphaStart,
		AlphaEnd:   DefaultAlphaEnd,
	}
}

// Validate checks every parameter range. The returned error wraps
// ErrInvalidParameter.
func (p Params) Validate() error {
	if p.Diameter <= 0 {
		return fmt.Errorf("%w: diameter must be greater than 0, got %d", ErrInvalidParameter, p.Diameter)
	}
	if p.AlphaStart < 0 || p.AlphaStart > MaxAlpha {
		return fmt.Errorf("%w: alpha start must be between 0 and %d, got %d", ErrInvalidParameter, MaxAlpha, p.AlphaStart)
	}
	if p.AlphaEnd < 0 || p.AlphaEnd > MaxAlpha {
		return fmt.Errorf("%w: alpha end must be between 0 and %d, got %d", ErrInvalidParameter, MaxAlpha, p.AlphaEnd)
	}
	if p.BaseColor < 0 || p.BaseColor > MaxColor {
		return fmt.Errorf("%w: base color must be between 0x000000 and 0x%06X, got 0x%X", ErrInvalidParameter, MaxColor, p.BaseColor)
	}
	if p.Diameter > MaxDiameter {
		return fmt.Errorf("%w: diameter must be at most %d, got %d", ErrInvalidParameter, MaxDiameter, p.Diameter)
	}
	return nil
}

// Option configures a Generate call.
type Option func(*generateConfig)

type generateConfig struct {
	logger *slog.Logger
}

// WithLogger sets the logger receiving the start and completion notices.
func WithLogger(l *slog.Logger) Option {
	return func(c *generateConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// Generate computes the fuzzball described by p.
//
// The result holds Diameter*Diameter packed ARGB values in row-major order.
// Cells whose centre lies inside the disc (distance <= radius) carry the base
// colour with an alpha interpolated between AlphaStart and AlphaEnd by the
// squared normalized distance; every other cell is 0x00000000.
// On invalid parameters nothing is generated and the error wraps
// ErrInvalidParameter.
func Generate(p Params, opts ...Option) (Buffer, error) {
	cfg := generateConfig{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	cfg.logger.Info("Generating fuzzball...",
		"diameter", p.Diameter,
		"base_color", fmt.Sprintf("0x%06X", p.BaseColor),
		"alpha_start", p.AlphaStart,
		"alpha_end", p.AlphaEnd)

	d := p.Diameter
	center := float64(d-1) / 2.0
	radius := float64(d) / 2.0
	rgb := uint32(p.BaseColor) & MaxColor

	buf := make(Buffer, 0, d*d)
	for y := 0; y < d; y++ {
		for x := 0; x < d; x++ {
			dx := float64(x) - center
			dy := float64(y) - center
			// Plain sqrt of the sum of squares; Hypot rounds differently and
			// shifts alphas that land exactly on an integer.
			distance := math.Sqrt(float64(dx*dx) + float64(dy*dy))
			if distance <= radius {
				alpha := Alpha(distance, radius, p.AlphaStart, p.AlphaEnd)
				buf = append(buf, uint32(alpha)<<24|rgb)
			} else {
				buf = append(buf, 0x00000000)
			}
		}
	}

	cfg.logger.Info("Fuzzball generation complete.", "pixels", len(buf))
	return buf, nil
}

// Alpha returns the falloff alpha for a cell at distance from the centre of a
// disc of the given radius. t = (distance/radius)^2 blends linearly from start
// (t=0) to end (t=1); the result is truncated toward zero.
func Alpha(distance, radius float64, start, end int) int {
	t := distance / radius
	t *= t
	// The explicit conversion keeps the product rounded before the
	// subtraction on platforms that fuse multiply-add.
	return int(float64(start) - float64(t*float64(start-end)))
}
