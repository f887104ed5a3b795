// Package classify runs an image classifier against periodic snapshots of
// an ink surface.
//
// The ink engine never waits for classification: a Loop takes snapshots on
// a fixed cadence and hands them to a background worker, and results are
// delivered through a callback. Classifier failures only cost the current
// cycle.
package classify

import (
	"context"
	"image"
)

// Result is the outcome of classifying one snapshot.
type Result struct {
	// Label is the predicted class, empty if nothing was recognized.
	Label string

	// Confidence is in [0, 1].
	Confidence float64
}

// Classifier predicts a label for a raster snapshot. Implementations own
// any normalization their model needs (color inversion, cropping,
// scaling); see Prepare.
type Classifier interface {
	Classify(ctx context.Context, img image.Image) (Result, error)
}

// ClassifierFunc adapts a function to the Classifier interface.
type ClassifierFunc func(ctx context.Context, img image.Image) (Result, error)

// Classify calls f(ctx, img).
func (f ClassifierFunc) Classify(ctx context.Context, img image.Image) (Result, error) {
	return f(ctx, img)
}

// Snapshotter produces raster snapshots. *ink.Rasterizer implements it.
type Snapshotter interface {
	Snapshot() *image.RGBA
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
