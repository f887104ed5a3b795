// Package input decodes recorded pointer events and feeds them to a stroke
// session.
//
// Events are JSON objects, one per line:
//
//	{"type":"begin","x":12,"y":40}
//	{"type":"move","points":[{"x":13,"y":41},{"x":15,"y":43}]}
//	{"type":"end"}
//	{"type":"clear"}
//
// A move event carries the coalesced samples of one hardware event; each is
// applied as a separate Append, in order. Blank lines and lines starting
// with '#' are skipped.
package input
