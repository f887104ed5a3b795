package ink

// DefaultTension is the control arm scale used when none is given.
const DefaultTension = 1.0 / 3.0

// Interpolate builds a smooth path that passes through every point in order.
//
// Each consecutive pair (points[i], points[i+1]) becomes one cubic segment.
// Tangents are estimated with central differences at interior knots,
//
//	m[k] = (points[k+1] - points[k-1]) / 2
//
// and with one-sided differences at the two ends,
//
//	m[0]   = (points[1] - points[0]) / 2
//	m[N-1] = (points[N-1] - points[N-2]) / 2
//
// The control points of segment i are points[i] + tension*m[i] and
// points[i+1] - tension*m[i+1]. The result is C1-continuous at interior
// knots.
//
// tension must lie in (0, 1]; anything else, NaN included, selects
// DefaultTension. An empty input yields an empty path and a single point
// yields a dot (one zero-length segment). Coincident neighbours produce
// zero tangents and therefore straight or zero-length segments.
//
// Interpolate never modifies points and always allocates a fresh segment
// slice.
func Interpolate(points []Point, tension float64) Path {
	if !(tension > 0 && tension <= 1) {
		tension = DefaultTension
	}

	switch len(points) {
	case 0:
		return Path{}
	case 1:
		p := points[0]
		return Path{Segments: []Segment{{Start: p, Control1: p, Control2: p, End: p}}}
	}

	segments := make([]Segment, len(points)-1)
	m0 := tangentAt(points, 0)
	for i := range segments {
		m1 := tangentAt(points, i+1)
		segments[i] = Segment{
			Start:    points[i],
			Control1: points[i].Add(m0.Mul(tension)),
			Control2: points[i+1].Sub(m1.Mul(tension)),
			End:      points[i+1],
		}
		m0 = m1
	}
	return Path{Segments: segments}
}

// InterpolateDefault is Interpolate with DefaultTension.
func InterpolateDefault(points []Point) Path {
	return Interpolate(points, DefaultTension)
}

// Tangents returns the tangent estimate Interpolate uses at every knot.
// It returns nil for fewer than two points.
func Tangents(points []Point) []Point {
	if len(points) < 2 {
		return nil
	}
	m := make([]Point, len(points))
	for k := range points {
		m[k] = tangentAt(points, k)
	}
	return m
}

// tangentAt requires len(points) >= 2.
func tangentAt(points []Point, k int) Point {
	last := len(points) - 1
	switch k {
	case 0:
		return points[1].Sub(points[0]).Mul(0.5)
	case last:
		return points[last].Sub(points[last-1]).Mul(0.5)
	default:
		return points[k+1].Sub(points[k-1]).Mul(0.5)
	}
}
