// Package ink turns freehand pointer samples into smooth ink.
//
// # Overview
//
// ink is the stroke engine of a handwriting pad: it converts a sparse, noisy
// stream of pointer samples into a continuous curve while the user is still
// drawing, keeps every finished stroke in a persistent layer, and rasterizes
// the result on demand (for example for a digit classifier).
//
// # Quick Start
//
//	surface := ink.NewSurface(280, 280)
//	session := ink.NewSession(surface)
//
//	session.Begin(ink.Pt(40, 40))
//	session.Append(ink.Pt(120, 60))
//	session.Append(ink.Pt(200, 180))
//	session.End()
//
//	img := ink.NewRasterizer(surface).Snapshot()
//
// # Architecture
//
//   - Interpolate: pure geometry, samples to a cubic Hermite path
//   - Session: begin/append/end/clear state machine for one stroke at a time
//   - Surface: committed and live layers, safe for concurrent readers
//   - Rasterizer: renders a Frame of the surface with gg
//
// Input decoding, classification and export live in the input, classify and
// export sub-packages.
//
// # Coordinate System
//
// Surface coordinates follow gg: origin at top-left, X right, Y down.
//
// # Concurrency
//
// A Session is driven by a single goroutine. Surface.Frame and
// Rasterizer.Snapshot may be called from any goroutine at any time.
package ink

// Version is the current version of the library.
const Version = "0.3.0"
