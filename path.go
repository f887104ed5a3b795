package ink

import "math"

// Segment is one cubic Bézier piece of a Path, running from Start to End
// and shaped by two control points.
type Segment struct {
	Start    Point
	Control1 Point
	Control2 Point
	End      Point
}

// IsDegenerate reports whether all four anchors coincide, i.e. the segment
// has zero length and renders as a dot.
func (s Segment) IsDegenerate() bool {
	return s.Start == s.End && s.Control1 == s.Start && s.Control2 == s.Start
}

// Eval returns the point at parameter t in [0, 1] using de Casteljau's
// algorithm.
func (s Segment) Eval(t float64) Point {
	ab := s.Start.Lerp(s.Control1, t)
	bc := s.Control1.Lerp(s.Control2, t)
	cd := s.Control2.Lerp(s.End, t)
	return ab.Lerp(bc, t).Lerp(bc.Lerp(cd, t), t)
}

// Path is a smooth curve made of cubic segments where the end of segment i
// is the start of segment i+1.
//
// The zero value is an empty path. A path produced from a single sample
// holds one degenerate segment so renderers can still draw a dot.
//
// Paths handed out by this package are never mutated afterwards; callers
// must treat Segments as read-only.
type Path struct {
	Segments []Segment
}

// Len returns the number of segments.
func (p Path) Len() int {
	return len(p.Segments)
}

// IsEmpty reports whether the path has no segments.
func (p Path) IsEmpty() bool {
	return len(p.Segments) == 0
}

// IsDot reports whether the path is the single-sample degenerate form.
func (p Path) IsDot() bool {
	return len(p.Segments) == 1 && p.Segments[0].IsDegenerate()
}

// IsCollapsed reports whether every segment is degenerate at the same
// point. This covers the single-sample dot and a stroke of repeated
// identical samples; both render as a dot.
func (p Path) IsCollapsed() bool {
	if p.IsEmpty() {
		return false
	}
	for _, s := range p.Segments {
		if !s.IsDegenerate() || s.Start != p.Segments[0].Start {
			return false
		}
	}
	return true
}

// Start returns the first anchor of the path. ok is false for an empty path.
func (p Path) Start() (pt Point, ok bool) {
	if p.IsEmpty() {
		return Point{}, false
	}
	return p.Segments[0].Start, true
}

// End returns the last anchor of the path. ok is false for an empty path.
func (p Path) End() (pt Point, ok bool) {
	if p.IsEmpty() {
		return Point{}, false
	}
	return p.Segments[len(p.Segments)-1].End, true
}

// Bounds returns the bounding box of all anchors and control points.
// A cubic lies inside the hull of its control polygon, so the box
// contains the whole curve. An empty path returns the zero Rect.
func (p Path) Bounds() Rect {
	if p.IsEmpty() {
		return Rect{}
	}
	r := NewRect(p.Segments[0].Start, p.Segments[0].Start)
	for _, s := range p.Segments {
		r = r.Union(NewRect(s.Start, s.End)).Union(NewRect(s.Control1, s.Control2))
	}
	return r
}

// IsConnected reports whether every segment starts where the previous one
// ended.
func (p Path) IsConnected() bool {
	for i := 1; i < len(p.Segments); i++ {
		if p.Segments[i].Start != p.Segments[i-1].End {
			return false
		}
	}
	return true
}

// Rect represents an axis-aligned rectangle.
// Min is the top-left corner and Max the bottom-right corner.
type Rect struct {
	Min, Max Point
}

// NewRect creates a rectangle from two points.
// The points are normalized so Min <= Max.
func NewRect(p1, p2 Point) Rect {
	return Rect{
		Min: Pt(math.Min(p1.X, p2.X), math.Min(p1.Y, p2.Y)),
		Max: Pt(math.Max(p1.X, p2.X), math.Max(p1.Y, p2.Y)),
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Min: Pt(math.Min(r.Min.X, other.Min.X), math.Min(r.Min.Y, other.Min.Y)),
		Max: Pt(math.Max(r.Max.X, other.Max.X), math.Max(r.Max.Y, other.Max.Y)),
	}
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}
