package input

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/gogpu/ink"
)

// maxLine bounds a single encoded event.
const maxLine = 1 << 20

// Decoder reads events from a JSON-lines stream.
type Decoder struct {
	sc   *bufio.Scanner
	line int
}

// NewDecoder returns a decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLine)
	return &Decoder{sc: sc}
}

// Next returns the next event. It returns io.EOF when the stream is
// exhausted. Decoding errors carry the line number.
func (d *Decoder) Next() (Event, error) {
	for d.sc.Scan() {
		d.line++
		line := bytes.TrimSpace(d.sc.Bytes())
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		var e Event
		if err := json.Unmarshal(line, &e); err != nil {
			return Event{}, fmt.Errorf("input: line %d: %w", d.line, err)
		}
		if err := e.Validate(); err != nil {
			return Event{}, fmt.Errorf("input: line %d: %w", d.line, err)
		}
		return e, nil
	}
	if err := d.sc.Err(); err != nil {
		return Event{}, fmt.Errorf("input: line %d: %w", d.line+1, err)
	}
	return Event{}, io.EOF
}

// ReplayOption configures Replay.
type ReplayOption func(*replayOptions)

type replayOptions struct {
	delay time.Duration
}

// WithDelay pauses between events, approximating live input so concurrent
// consumers (such as a classification loop) observe intermediate states.
func WithDelay(d time.Duration) ReplayOption {
	return func(o *replayOptions) {
		o.delay = d
	}
}

// Replay decodes every event from r and applies it to t in order. It stops
// at the first decoding error or when ctx is done, and returns the number
// of events applied.
func Replay(ctx context.Context, r io.Reader, t Target, opts ...ReplayOption) (int, error) {
	var o replayOptions
	for _, opt := range opts {
		opt(&o)
	}

	dec := NewDecoder(r)
	n := 0
	for {
		if err := ctx.Err(); err != nil {
			return n, err
		}
		e, err := dec.Next()
		if errors.Is(err, io.EOF) {
			ink.Logger().Debug("input: replay finished", "events", n)
			return n, nil
		}
		if err != nil {
			return n, err
		}
		if err := Apply(e, t); err != nil {
			return n, err
		}
		n++

		if o.delay > 0 {
			select {
			case <-ctx.Done():
				return n, ctx.Err()
			case <-time.After(o.delay):
			}
		}
	}
}

// Encode writes events as JSON lines.
func Encode(w io.Writer, events ...Event) error {
	enc := json.NewEncoder(w)
	for _, e := range events {
		if err := enc.Encode(e); err != nil {
			return fmt.Errorf("input: encode %s: %w", e.Type, err)
		}
	}
	return nil
}
