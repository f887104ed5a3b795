package ink

import (
	"image/color"

	"github.com/gogpu/gg"
)

// SessionOption configures a Session during creation.
//
// Example:
//
//	s := ink.NewSession(surface, ink.WithTension(0.5))
type SessionOption func(*sessionOptions)

type sessionOptions struct {
	tension float64
}

// WithTension sets the control arm scale passed to Interpolate.
// Values outside (0, 1] select DefaultTension.
func WithTension(t float64) SessionOption {
	return func(o *sessionOptions) {
		o.tension = t
	}
}

// RasterOption configures a Rasterizer during creation.
//
// Example:
//
//	r := ink.NewRasterizer(surface,
//	    ink.WithLineWidth(12),
//	    ink.WithInkColor(color.Black),
//	)
type RasterOption func(*rasterOptions)

type rasterOptions struct {
	lineWidth  float64
	ink        gg.RGBA
	live       gg.RGBA
	background gg.RGBA
}

// DefaultLineWidth is the stroke width used when none is given.
const DefaultLineWidth = 30

func defaultRasterOptions() rasterOptions {
	return rasterOptions{
		lineWidth:  DefaultLineWidth,
		ink:        gg.RGB(0.333, 0.333, 0.333),
		live:       gg.Black,
		background: gg.White,
	}
}

// WithLineWidth sets the stroke width in surface pixels.
// Non-positive widths are ignored.
func WithLineWidth(w float64) RasterOption {
	return func(o *rasterOptions) {
		if w > 0 {
			o.lineWidth = w
		}
	}
}

// WithInkColor sets the color of committed strokes.
func WithInkColor(c color.Color) RasterOption {
	return func(o *rasterOptions) {
		o.ink = gg.FromColor(c)
	}
}

// WithLiveColor sets the color of the stroke in progress.
func WithLiveColor(c color.Color) RasterOption {
	return func(o *rasterOptions) {
		o.live = gg.FromColor(c)
	}
}

// WithBackground sets the color the raster is cleared to.
func WithBackground(c color.Color) RasterOption {
	return func(o *rasterOptions) {
		o.background = gg.FromColor(c)
	}
}
