package export

import (
	"bytes"
	"fmt"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/ink"
)

func sampleStrokes() []ink.Stroke {
	surface := ink.NewSurface(200, 100)
	session := ink.NewSession(surface)
	session.Begin(ink.Pt(10, 10))
	session.AppendBatch(ink.Pt(60, 40), ink.Pt(120, 20), ink.Pt(180, 80))
	session.End()
	session.Begin(ink.Pt(100, 90))
	session.End()
	return surface.Strokes()
}

func TestPDF(t *testing.T) {
	var buf bytes.Buffer
	err := PDF(&buf, sampleStrokes(), PDFOptions{Width: 200, Height: 100, LineWidth: 4, Title: "digit"})
	require.NoError(t, err)

	out := buf.Bytes()
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")), "missing PDF header")
	assert.Contains(t, string(out), "%%EOF")
}

func TestPDF_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PDF(&buf, nil, PDFOptions{Width: 10, Height: 10}))
	assert.NotZero(t, buf.Len())
}

func TestPDF_InvalidSize(t *testing.T) {
	var buf bytes.Buffer
	err := PDF(&buf, sampleStrokes(), PDFOptions{Width: 0, Height: 10})
	assert.Error(t, err)
	assert.Zero(t, buf.Len())
}

func TestPNG(t *testing.T) {
	surface := ink.NewSurface(20, 10)
	img := ink.NewRasterizer(surface).Snapshot()

	var buf bytes.Buffer
	require.NoError(t, PNG(&buf, img))

	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())
}

type drawRecorder struct {
	ops []string
}

func (r *drawRecorder) Circle(x, y, rad float64, style string) {
	r.ops = append(r.ops, fmt.Sprintf("circle %g %g %g %s", x, y, rad, style))
}

func (r *drawRecorder) MoveTo(x, y float64) {
	r.ops = append(r.ops, fmt.Sprintf("move %g %g", x, y))
}

func (r *drawRecorder) CurveBezierCubicTo(_, _, _, _, x, y float64) {
	r.ops = append(r.ops, fmt.Sprintf("curve %g %g", x, y))
}

func (r *drawRecorder) DrawPath(style string) {
	r.ops = append(r.ops, "draw "+style)
}

func TestDrawPath(t *testing.T) {
	same := ink.Pt(30, 40)
	tests := []struct {
		name    string
		samples []ink.Point
		want    []string
	}{
		{"single sample", []ink.Point{same}, []string{"circle 30 40 3 F"}},
		{"repeated samples", []ink.Point{same, same, same}, []string{"circle 30 40 3 F"}},
		{"curve", []ink.Point{ink.Pt(0, 0), ink.Pt(10, 0), ink.Pt(20, 10)},
			[]string{"move 0 0", "curve 10 0", "curve 20 10", "draw D"}},
		{"empty", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r drawRecorder
			drawPath(&r, ink.InterpolateDefault(tt.samples), 6)
			assert.Equal(t, tt.want, r.ops)
		})
	}
}
