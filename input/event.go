package input

import (
	"errors"
	"fmt"

	"github.com/gogpu/ink"
)

// ErrUnknownEvent is returned for an event whose type is not recognized.
var ErrUnknownEvent = errors.New("input: unknown event type")

// Kind identifies a pointer event.
type Kind string

// Event kinds.
const (
	KindBegin Kind = "begin"
	KindMove  Kind = "move"
	KindEnd   Kind = "end"
	KindClear Kind = "clear"
)

// Sample is the wire form of one pointer position.
type Sample struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Point converts the sample to an ink point.
func (s Sample) Point() ink.Point {
	return ink.Pt(s.X, s.Y)
}

// Event is one pointer event.
type Event struct {
	Type Kind `json:"type"`

	// X and Y locate a begin event.
	X float64 `json:"x,omitempty"`
	Y float64 `json:"y,omitempty"`

	// Points holds the coalesced samples of a move event. A move event
	// with no points but with X/Y set is treated as a single sample.
	Points []Sample `json:"points,omitempty"`
}

// Validate reports whether the event type is known.
func (e Event) Validate() error {
	switch e.Type {
	case KindBegin, KindMove, KindEnd, KindClear:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEvent, e.Type)
	}
}

// Target receives pointer events. *ink.Session implements Target.
type Target interface {
	Begin(p ink.Point)
	Append(p ink.Point)
	End()
	Clear()
}

var _ Target = (*ink.Session)(nil)

// Apply delivers e to t.
func Apply(e Event, t Target) error {
	if err := e.Validate(); err != nil {
		return err
	}
	switch e.Type {
	case KindBegin:
		t.Begin(ink.Pt(e.X, e.Y))
	case KindMove:
		if len(e.Points) == 0 {
			t.Append(ink.Pt(e.X, e.Y))
			return nil
		}
		for _, s := range e.Points {
			t.Append(s.Point())
		}
	case KindEnd:
		t.End()
	case KindClear:
		t.Clear()
	}
	return nil
}
