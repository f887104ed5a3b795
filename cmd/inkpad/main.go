// Command inkpad replays recorded pointer strokes through the ink engine.
//
// Usage:
//
//	inkpad render strokes.jsonl -o digit.png --pdf digit.pdf
//	inkpad classify strokes.jsonl --templates ./digits --preview out.png
//
// Build with -tags gpu to enable the gg GPU accelerator.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/gogpu/ink/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cli.Execute(ctx)
	stop()
	os.Exit(code)
}
