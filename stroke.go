package ink

import (
	"slices"

	"github.com/google/uuid"
)

// Stroke is a finished gesture held in the committed layer.
//
// The path is kept exactly as it was when the stroke ended; committed
// strokes are never re-interpolated against each other.
type Stroke struct {
	// ID identifies the stroke for export and logging.
	ID uuid.UUID

	// Path is the smoothed curve of the stroke.
	Path Path

	// Samples are the raw points the path was built from.
	Samples []Point
}

func newStroke(path Path, samples []Point) Stroke {
	return Stroke{
		ID:      uuid.New(),
		Path:    path,
		Samples: slices.Clone(samples),
	}
}

// Frame is an immutable view of a Surface at one instant: the composed
// renderable handed to the snapshot producer.
type Frame struct {
	// Committed holds finished strokes in commit order.
	Committed []Stroke

	// Live is the in-progress stroke, empty when no stroke is active.
	Live Path

	// Generation counts Surface mutations up to this frame.
	Generation uint64

	// Width and Height are the native resolution of the surface.
	Width, Height int
}

// Paths returns every path to draw, committed strokes first and the live
// path last so the active stroke sits on top.
func (f Frame) Paths() []Path {
	paths := make([]Path, 0, len(f.Committed)+1)
	for _, s := range f.Committed {
		paths = append(paths, s.Path)
	}
	if !f.Live.IsEmpty() {
		paths = append(paths, f.Live)
	}
	return paths
}

// IsBlank reports whether the frame has nothing to draw.
func (f Frame) IsBlank() bool {
	return len(f.Committed) == 0 && f.Live.IsEmpty()
}
