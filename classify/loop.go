package classify

import (
	"context"
	"fmt"
	"image"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"github.com/gogpu/ink"
)

// DefaultInterval is the snapshot cadence used when none is given.
const DefaultInterval = 250 * time.Millisecond

// LoopConfig configures a Loop.
type LoopConfig struct {
	// Interval between snapshots. Zero selects DefaultInterval.
	Interval time.Duration

	// Timeout bounds one Classify call. Zero means no timeout.
	Timeout time.Duration

	// SkipUnchanged avoids classifying the same surface generation twice.
	// It requires Source to be a GenerationSource.
	SkipUnchanged bool

	// OnResult receives every successful result, from the worker
	// goroutine. It may be nil.
	OnResult func(Result)
}

// GenerationSource is a Snapshotter that can also report how many times
// its content changed.
type GenerationSource interface {
	Snapshotter
	Generation() uint64
}

// Stats counts what a Loop did.
type Stats struct {
	Snapshots  uint64
	Classified uint64
	Failed     uint64
	Dropped    uint64
	Skipped    uint64
}

// Loop periodically snapshots a source and classifies the result on a
// single background worker. When the worker is still busy the new snapshot
// is dropped, so a slow classifier never stalls the cadence.
type Loop struct {
	src        Snapshotter
	classifier Classifier
	cfg        LoopConfig
	limiter    *rate.Limiter

	snapshots  atomic.Uint64
	classified atomic.Uint64
	failed     atomic.Uint64
	dropped    atomic.Uint64
	skipped    atomic.Uint64
}

// NewLoop creates a loop classifying snapshots of src.
func NewLoop(src Snapshotter, classifier Classifier, cfg LoopConfig) *Loop {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	return &Loop{
		src:        src,
		classifier: classifier,
		cfg:        cfg,
		limiter:    rate.NewLimiter(rate.Every(cfg.Interval), 1),
	}
}

// Stats returns a copy of the loop counters.
func (l *Loop) Stats() Stats {
	return Stats{
		Snapshots:  l.snapshots.Load(),
		Classified: l.classified.Load(),
		Failed:     l.failed.Load(),
		Dropped:    l.dropped.Load(),
		Skipped:    l.skipped.Load(),
	}
}

// Run snapshots and classifies until ctx is done. It always returns
// ctx.Err() after the worker has finished.
func (l *Loop) Run(ctx context.Context) error {
	work := make(chan *image.RGBA)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for img := range work {
			l.classify(ctx, img)
		}
	}()
	defer func() {
		close(work)
		<-done
	}()

	gen, haveGen := l.src.(GenerationSource)
	var last uint64
	seen := false

	for {
		if err := l.limiter.Wait(ctx); err != nil {
			// Wait also fails early when the next token lies past the
			// deadline; report the context error once it is actually done.
			<-ctx.Done()
			return ctx.Err()
		}

		if l.cfg.SkipUnchanged && haveGen {
			g := gen.Generation()
			if seen && g == last {
				l.skipped.Add(1)
				continue
			}
			last, seen = g, true
		}

		img := l.src.Snapshot()
		l.snapshots.Add(1)

		select {
		case work <- img:
		default:
			l.dropped.Add(1)
			ink.Logger().Debug("classify: worker busy, snapshot dropped")
		}
	}
}

func (l *Loop) classify(parent context.Context, img image.Image) {
	ctx := parent
	if l.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(parent, l.cfg.Timeout)
		defer cancel()
	}

	res, err := l.safeClassify(ctx, img)
	if err != nil {
		l.failed.Add(1)
		if parent.Err() == nil {
			ink.Logger().Warn("classify: classification failed", "err", err)
		}
		return
	}
	res.Confidence = clamp01(res.Confidence)
	l.classified.Add(1)
	ink.Logger().Debug("classify: result", "label", res.Label, "confidence", res.Confidence)
	if l.cfg.OnResult != nil {
		l.cfg.OnResult(res)
	}
}

// safeClassify turns a classifier panic into an error so a faulty model
// cannot take down the loop.
func (l *Loop) safeClassify(ctx context.Context, img image.Image) (res Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r}
		}
	}()
	return l.classifier.Classify(ctx, img)
}

// PanicError reports a classifier that panicked.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("classify: classifier panicked: %v", e.Value)
}
