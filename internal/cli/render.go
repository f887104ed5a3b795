package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gogpu/ink/export"
	"github.com/gogpu/ink/input"
)

func newRenderCommand(opts *options) *cobra.Command {
	var (
		output string
		pdfOut string
	)
	cmd := &cobra.Command{
		Use:   "render <events.jsonl|->",
		Short: "Replay events and write the drawing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := openInput(cmd, args[0])
			if err != nil {
				return err
			}
			defer func() { _ = in.Close() }()

			e := newEngine(opts.cfg)
			n, err := input.Replay(cmd.Context(), in, e.session)
			if err != nil {
				return err
			}

			img := e.raster.Snapshot()
			if err := writeFile(output, func(w io.Writer) error { return export.PNG(w, img) }); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}

			if pdfOut != "" {
				w, h := e.surface.Size()
				pdfOpts := export.PDFOptions{
					Width:     float64(w),
					Height:    float64(h),
					LineWidth: opts.cfg.LineWidth,
					Title:     args[0],
				}
				strokes := e.surface.Strokes()
				if err := writeFile(pdfOut, func(w io.Writer) error { return export.PDF(w, strokes, pdfOpts) }); err != nil {
					return fmt.Errorf("write %s: %w", pdfOut, err)
				}
			}

			cmd.Printf("%d events, %d strokes -> %s\n", n, len(e.surface.Strokes()), output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "ink.png", "PNG output file")
	cmd.Flags().StringVar(&pdfOut, "pdf", "", "also write a vector PDF")
	return cmd
}
