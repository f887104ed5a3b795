package ink

import (
	"slices"
	"sync"
)

// Surface is the two-layer ink target: a committed layer holding every
// finished stroke and a live layer holding the stroke in progress.
//
// Surface is the only writer of both layers. Writers come from a single
// Session; readers such as a Rasterizer may call Frame from any goroutine
// and always observe a consistent pair of layers.
type Surface struct {
	width, height int

	mu         sync.RWMutex
	committed  []Stroke
	live       Path
	generation uint64
}

// NewSurface creates an empty surface with the given native resolution.
// Non-positive dimensions are clamped to 1.
func NewSurface(width, height int) *Surface {
	return &Surface{
		width:  max(width, 1),
		height: max(height, 1),
	}
}

// Size returns the native resolution of the surface.
func (s *Surface) Size() (width, height int) {
	return s.width, s.height
}

// SetLive replaces the live layer wholesale.
// The path must not be modified afterwards.
func (s *Surface) SetLive(p Path) {
	s.mu.Lock()
	s.live = p
	s.generation++
	s.mu.Unlock()
}

// Commit appends p to the committed layer as a new stroke and clears the
// live layer in the same step, so no reader sees the stroke twice or not at
// all. An empty path clears the live layer without committing anything.
func (s *Surface) Commit(p Path, samples []Point) (Stroke, bool) {
	if p.IsEmpty() {
		s.SetLive(Path{})
		return Stroke{}, false
	}
	st := newStroke(p, samples)

	s.mu.Lock()
	s.committed = append(s.committed, st)
	s.live = Path{}
	s.generation++
	n := len(s.committed)
	s.mu.Unlock()

	Logger().Debug("ink: stroke committed", "id", st.ID, "segments", p.Len(), "strokes", n)
	return st, true
}

// Clear erases both layers.
func (s *Surface) Clear() {
	s.mu.Lock()
	s.committed = nil
	s.live = Path{}
	s.generation++
	s.mu.Unlock()
}

// Frame returns the composed renderable. The committed slice is clipped so
// later commits cannot alias into it, and published paths are immutable.
func (s *Surface) Frame() Frame {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Frame{
		Committed:  slices.Clip(s.committed),
		Live:       s.live,
		Generation: s.generation,
		Width:      s.width,
		Height:     s.height,
	}
}

// Strokes returns the committed strokes in commit order.
func (s *Surface) Strokes() []Stroke {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.committed)
}

// Generation returns the number of mutations applied so far.
func (s *Surface) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation
}
