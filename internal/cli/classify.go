package cli

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/spf13/cobra"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/ink"
	"github.com/gogpu/ink/classify"
	"github.com/gogpu/ink/input"
)

func newClassifyCommand(opts *options) *cobra.Command {
	var (
		templates string
		preview   string
		watch     bool
	)
	cmd := &cobra.Command{
		Use:   "classify <events.jsonl|->",
		Short: "Replay events while classifying periodic snapshots",
		Long: `classify replays the events with the configured delay between them while a
background loop snapshots the surface and matches it against the PNG
templates in --templates. Every result is printed as it arrives; the
final drawing is classified once more after the replay ends.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.cfg
			if templates == "" {
				templates = cfg.Templates
			}
			if templates == "" {
				return errors.New("no template directory: use --templates or set templates in the config")
			}

			clf, err := classify.NewTemplateClassifier(templates, cfg.SampleSize)
			if err != nil {
				return err
			}

			in, err := openInput(cmd, args[0])
			if err != nil {
				return err
			}
			defer func() { _ = in.Close() }()

			e := newEngine(cfg)

			var mu sync.Mutex
			last := classify.Result{}
			loop := classify.NewLoop(e.raster, clf, classify.LoopConfig{
				Interval:      cfg.Interval.Duration,
				SkipUnchanged: true,
				OnResult: func(r classify.Result) {
					mu.Lock()
					defer mu.Unlock()
					if r == last {
						return
					}
					last = r
					cmd.Printf("%s\n", formatResult(r))
				},
			})

			ctx, cancel := context.WithCancel(cmd.Context())
			var wg sync.WaitGroup
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = loop.Run(ctx)
			}()
			if watch {
				wg.Add(1)
				go func() {
					defer wg.Done()
					if err := clf.Watch(ctx); err != nil {
						ink.Logger().Warn("template watch stopped", "err", err)
					}
				}()
			}

			_, replayErr := input.Replay(ctx, in, e.session, input.WithDelay(cfg.Delay.Duration))
			cancel()
			wg.Wait()
			if replayErr != nil {
				return replayErr
			}

			img := e.raster.Snapshot()
			final, err := clf.Classify(cmd.Context(), img)
			if err != nil {
				return err
			}
			cmd.Printf("final: %s\n", formatResult(final))

			st := loop.Stats()
			ink.Logger().Info("classification loop finished",
				"snapshots", st.Snapshots, "classified", st.Classified,
				"failed", st.Failed, "dropped", st.Dropped, "skipped", st.Skipped)

			if preview != "" {
				if err := writePreview(preview, img, final); err != nil {
					return fmt.Errorf("write %s: %w", preview, err)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&templates, "templates", "t", "", "directory of <label>.png templates")
	cmd.Flags().StringVar(&preview, "preview", "", "write the final snapshot with its label to this PNG")
	cmd.Flags().BoolVar(&watch, "watch", false, "reload templates when the directory changes")
	return cmd
}

func formatResult(r classify.Result) string {
	if r.Label == "" {
		return "- 0.00"
	}
	return fmt.Sprintf("%s %.2f", r.Label, r.Confidence)
}

// writePreview draws the result caption in the top-left corner of img.
func writePreview(path string, img image.Image, r classify.Result) error {
	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()

	dc := gg.NewContextForImage(img)
	defer func() { _ = dc.Close() }()

	size := max(float64(dc.Height())/14, 10)
	dc.SetFont(src.Face(size))
	dc.SetColor(color.RGBA{R: 200, A: 255})
	dc.DrawString(formatResult(r), size/2, size*1.2)
	return dc.SavePNG(path)
}
