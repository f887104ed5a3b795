package ink

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func pointsEqual(p1, p2 Point, eps float64) bool {
	return math.Abs(p1.X-p2.X) < eps && math.Abs(p1.Y-p2.Y) < eps
}

func TestInterpolate_Empty(t *testing.T) {
	for _, pts := range [][]Point{nil, {}} {
		p := Interpolate(pts, DefaultTension)
		if !p.IsEmpty() {
			t.Errorf("Interpolate(%v) has %d segments, want 0", pts, p.Len())
		}
	}
}

func TestInterpolate_SinglePoint(t *testing.T) {
	p := Interpolate([]Point{Pt(5, 5)}, DefaultTension)
	if !p.IsDot() {
		t.Fatalf("Interpolate([(5,5)]) = %+v, want a dot", p)
	}
	s := p.Segments[0]
	for _, q := range []Point{s.Start, s.Control1, s.Control2, s.End} {
		if q != Pt(5, 5) {
			t.Errorf("dot anchor = %v, want (5,5)", q)
		}
	}
}

func TestInterpolate_SegmentCount(t *testing.T) {
	tests := []struct {
		name string
		n    int
	}{
		{"two points", 2},
		{"three points", 3},
		{"ten points", 10},
		{"hundred points", 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pts := make([]Point, tt.n)
			for i := range pts {
				pts[i] = Pt(float64(i)*3, math.Sin(float64(i))*20)
			}
			p := InterpolateDefault(pts)
			if p.Len() != tt.n-1 {
				t.Fatalf("Len() = %d, want %d", p.Len(), tt.n-1)
			}
			for i, s := range p.Segments {
				if s.Start != pts[i] || s.End != pts[i+1] {
					t.Errorf("segment %d = %v->%v, want %v->%v", i, s.Start, s.End, pts[i], pts[i+1])
				}
			}
			if !p.IsConnected() {
				t.Error("IsConnected() = false")
			}
			if start, _ := p.Start(); start != pts[0] {
				t.Errorf("Start() = %v, want %v", start, pts[0])
			}
			if end, _ := p.End(); end != pts[tt.n-1] {
				t.Errorf("End() = %v, want %v", end, pts[tt.n-1])
			}
		})
	}
}

func TestInterpolate_BoundaryTangents(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(10, 0), Pt(20, 10)}

	// End tangents are one-sided differences, halved like the interior ones.
	m := Tangents(pts)
	want := []Point{Pt(5, 0), Pt(10, 5), Pt(5, 5)}
	for i := range want {
		if !pointsEqual(m[i], want[i], epsilon) {
			t.Errorf("m[%d] = %v, want %v", i, m[i], want[i])
		}
	}

	p := Interpolate(pts, 1.0/3.0)
	tests := []struct {
		name string
		got  Point
		want Point
	}{
		{"segment 0 Control1", p.Segments[0].Control1, Pt(5.0/3, 0)},
		{"segment 0 Control2", p.Segments[0].Control2, Pt(20.0/3, -5.0/3)},
		{"segment 1 Control1", p.Segments[1].Control1, Pt(40.0/3, 5.0/3)},
		{"segment 1 Control2", p.Segments[1].Control2, Pt(55.0/3, 25.0/3)},
	}
	for _, tt := range tests {
		if !pointsEqual(tt.got, tt.want, epsilon) {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestInterpolate_C1AtInteriorKnots(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(4, 7), Pt(9, 3), Pt(15, 12), Pt(18, -2)}
	p := InterpolateDefault(pts)
	for i := 1; i < p.Len(); i++ {
		in := p.Segments[i-1].End.Sub(p.Segments[i-1].Control2)
		out := p.Segments[i].Control1.Sub(p.Segments[i].Start)
		if !pointsEqual(in, out, epsilon) {
			t.Errorf("knot %d: incoming arm %v != outgoing arm %v", i, in, out)
		}
	}
}

func TestInterpolate_Tension(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(10, 0)}
	tests := []struct {
		name    string
		tension float64
		wantC1  Point
	}{
		{"default", DefaultTension, Pt(10.0/6, 0)},
		{"one", 1, Pt(5, 0)},
		{"half", 0.5, Pt(2.5, 0)},
		{"zero falls back", 0, Pt(10.0/6, 0)},
		{"negative falls back", -1, Pt(10.0/6, 0)},
		{"above one falls back", 2, Pt(10.0/6, 0)},
		{"NaN falls back", math.NaN(), Pt(10.0/6, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Interpolate(pts, tt.tension)
			if !pointsEqual(p.Segments[0].Control1, tt.wantC1, epsilon) {
				t.Errorf("Control1 = %v, want %v", p.Segments[0].Control1, tt.wantC1)
			}
		})
	}
}

func TestInterpolate_CoincidentPoints(t *testing.T) {
	pts := []Point{Pt(3, 3), Pt(3, 3), Pt(3, 3)}
	p := InterpolateDefault(pts)
	if p.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", p.Len())
	}
	for i, s := range p.Segments {
		if !s.IsDegenerate() {
			t.Errorf("segment %d = %+v, want degenerate", i, s)
		}
	}

	// A duplicate in the middle of a stroke only adds a zero-length piece.
	pts = []Point{Pt(0, 0), Pt(10, 0), Pt(10, 0), Pt(20, 0)}
	p = InterpolateDefault(pts)
	for i, s := range p.Segments {
		for _, q := range []Point{s.Start, s.Control1, s.Control2, s.End} {
			if math.IsNaN(q.X) || math.IsNaN(q.Y) {
				t.Fatalf("segment %d has NaN anchor: %+v", i, s)
			}
		}
	}
	if s := p.Segments[1]; s.Start != s.End {
		t.Errorf("duplicate segment = %v->%v, want zero length", s.Start, s.End)
	}
}

func TestInterpolate_DoesNotAliasInput(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(1, 1), Pt(2, 0)}
	p := InterpolateDefault(pts)
	pts[1] = Pt(100, 100)
	if p.Segments[0].End != Pt(1, 1) {
		t.Errorf("path changed after input mutation: %v", p.Segments[0].End)
	}
}

func TestInterpolate_Deterministic(t *testing.T) {
	pts := []Point{Pt(1, 2), Pt(3, 5), Pt(8, 1), Pt(9, 9)}
	a := InterpolateDefault(pts)
	b := InterpolateDefault(pts)
	for i := range a.Segments {
		if a.Segments[i] != b.Segments[i] {
			t.Errorf("segment %d differs between calls", i)
		}
	}
}

func TestInterpolate_StaysNearSamples(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(10, 0), Pt(20, 10)}
	p := InterpolateDefault(pts)
	b := p.Bounds()
	bounds := NewRect(b.Min.Sub(Pt(epsilon, epsilon)), b.Max.Add(Pt(epsilon, epsilon)))
	for _, s := range p.Segments {
		for tt := 0.0; tt <= 1; tt += 0.125 {
			q := s.Eval(tt)
			if !bounds.Contains(q) {
				t.Errorf("Eval(%v) = %v outside bounds %+v", tt, q, bounds)
			}
		}
		if !pointsEqual(s.Eval(0), s.Start, epsilon) || !pointsEqual(s.Eval(1), s.End, epsilon) {
			t.Errorf("Eval endpoints do not match segment anchors")
		}
	}
}

func TestTangents_TooFewPoints(t *testing.T) {
	if m := Tangents([]Point{Pt(1, 1)}); m != nil {
		t.Errorf("Tangents(single) = %v, want nil", m)
	}
}

func BenchmarkInterpolate(b *testing.B) {
	pts := make([]Point, 256)
	for i := range pts {
		pts[i] = Pt(float64(i), math.Cos(float64(i)/10)*50)
	}
	b.ReportAllocs()
	for b.Loop() {
		_ = InterpolateDefault(pts)
	}
}
