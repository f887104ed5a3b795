package ink

import (
	"image"
	"time"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"
)

// Rasterizer produces raster snapshots of a Surface for downstream
// consumers such as a classifier.
//
// Snapshot only reads the surface and may be called from any goroutine,
// concurrently with a Session appending samples. Each call rasterizes one
// consistent Frame into a new image, so a snapshot taken before a Clear is
// unaffected by it.
type Rasterizer struct {
	surface *Surface
	opts    rasterOptions
}

// NewRasterizer creates a rasterizer for surface.
func NewRasterizer(surface *Surface, opts ...RasterOption) *Rasterizer {
	o := defaultRasterOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Rasterizer{surface: surface, opts: o}
}

// Snapshot rasterizes the current composed frame at the surface's native
// resolution.
func (r *Rasterizer) Snapshot() *image.RGBA {
	return r.Render(r.surface.Frame())
}

// Render rasterizes f. Committed strokes are drawn first, then the live
// stroke. Rendering failures are logged and leave the affected stroke
// undrawn; Render always returns an image of the frame's size.
func (r *Rasterizer) Render(f Frame) *image.RGBA {
	start := time.Now()
	w, h := max(f.Width, 1), max(f.Height, 1)

	dc := gg.NewContext(w, h)
	defer func() { _ = dc.Close() }()

	dc.ClearWithColor(r.opts.background)
	dc.SetLineWidth(r.opts.lineWidth)
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)

	for _, s := range f.Committed {
		r.drawPath(dc, s.Path, r.opts.ink)
	}
	r.drawPath(dc, f.Live, r.opts.live)

	if err := dc.FlushGPU(); err != nil {
		Logger().Warn("ink: flush failed", "err", err)
	}
	img := toRGBA(dc.Image())

	Logger().Debug("ink: snapshot",
		"generation", f.Generation,
		"strokes", len(f.Committed),
		"elapsed", time.Since(start))
	return img
}

func (r *Rasterizer) drawPath(dc *gg.Context, p Path, col gg.RGBA) {
	if p.IsEmpty() {
		return
	}
	dc.SetColor(col.Color())

	if p.IsCollapsed() {
		c := p.Segments[0].Start
		dc.DrawCircle(c.X, c.Y, r.opts.lineWidth/2)
		if err := dc.Fill(); err != nil {
			Logger().Warn("ink: dot fill failed", "err", err)
		}
		return
	}

	first := p.Segments[0].Start
	dc.MoveTo(first.X, first.Y)
	for _, s := range p.Segments {
		dc.CubicTo(s.Control1.X, s.Control1.Y, s.Control2.X, s.Control2.Y, s.End.X, s.End.Y)
	}
	if err := dc.Stroke(); err != nil {
		Logger().Warn("ink: stroke failed", "err", err, "segments", p.Len())
	}
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}

// Generation reports the surface generation, letting callers skip
// snapshots of an unchanged surface.
func (r *Rasterizer) Generation() uint64 {
	return r.surface.Generation()
}
