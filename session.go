package ink

import "slices"

// Session turns a stream of pointer samples into a live path on a Surface
// and commits it when the stroke ends.
//
// A Session has two states: idle and active. Begin always starts a fresh
// stroke, Append while idle behaves like Begin, End while idle does nothing,
// and Clear is valid at any time.
//
// Session methods must be called from one goroutine (or otherwise
// serialized); the Surface they write to may be read concurrently.
type Session struct {
	surface *Surface
	tension float64
	samples []Point
	path    Path
	active  bool
}

// NewSession creates an idle session drawing onto surface.
func NewSession(surface *Surface, opts ...SessionOption) *Session {
	o := sessionOptions{tension: DefaultTension}
	for _, opt := range opts {
		opt(&o)
	}
	return &Session{
		surface: surface,
		tension: o.tension,
	}
}

// Surface returns the surface the session draws onto.
func (s *Session) Surface() *Surface {
	return s.surface
}

// Active reports whether a stroke is in progress.
func (s *Session) Active() bool {
	return s.active
}

// Begin starts a new stroke at p, discarding any uncommitted samples.
// A non-finite p still abandons the stroke in progress but leaves the
// session idle.
func (s *Session) Begin(p Point) {
	if !p.isFinite() {
		Logger().Warn("ink: dropping non-finite sample", "x", p.X, "y", p.Y)
		if s.active {
			s.reset()
			s.surface.SetLive(Path{})
		}
		return
	}
	s.samples = []Point{p}
	s.active = true
	s.publish()
	Logger().Debug("ink: stroke begin", "x", p.X, "y", p.Y)
}

// Append adds p to the current stroke and regenerates the live path from
// the full sample history. While idle it starts a new stroke instead.
func (s *Session) Append(p Point) {
	if !s.active {
		s.Begin(p)
		return
	}
	if !p.isFinite() {
		Logger().Warn("ink: dropping non-finite sample", "x", p.X, "y", p.Y)
		return
	}
	s.samples = append(s.samples, p)
	s.publish()
}

// AppendBatch applies coalesced samples from one input event, in order,
// each as a separate Append.
func (s *Session) AppendBatch(points ...Point) {
	for _, p := range points {
		s.Append(p)
	}
}

// End finishes the current stroke and commits its path to the surface.
// It is a no-op while idle.
func (s *Session) End() {
	if !s.active {
		return
	}
	s.surface.Commit(s.path, s.samples)
	s.reset()
}

// Clear abandons any stroke in progress and erases the whole surface.
func (s *Session) Clear() {
	s.reset()
	s.surface.Clear()
	Logger().Debug("ink: surface cleared")
}

// Samples returns a copy of the samples of the current stroke.
func (s *Session) Samples() []Point {
	return slices.Clone(s.samples)
}

func (s *Session) publish() {
	s.path = Interpolate(s.samples, s.tension)
	s.surface.SetLive(s.path)
}

func (s *Session) reset() {
	s.samples = nil
	s.path = Path{}
	s.active = false
}
