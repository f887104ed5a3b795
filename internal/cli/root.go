// Package cli implements the inkpad command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/ink"
	"github.com/gogpu/ink/internal/config"
)

// options shared by all subcommands.
type options struct {
	configPath string
	verbose    bool
	cfg        config.Config
}

// NewRootCommand builds the inkpad command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "inkpad",
		Short: "Smooth freehand strokes and classify the drawing",
		Long: `inkpad replays recorded pointer events through the ink stroke engine.

It renders the smoothed drawing to PNG or PDF, and can run a template
classifier against periodic snapshots while the strokes are replayed.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			opts.cfg = cfg
			setupLogging(cmd.ErrOrStderr(), opts.verbose)
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "TOML config file")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newRenderCommand(opts),
		newClassifyCommand(opts),
		newVersionCommand(),
	)
	return root
}

// Execute runs the root command and returns the process exit code.
func Execute(ctx context.Context) int {
	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		return 1
	}
	return 0
}

func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	ink.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// openInput opens path for reading, "-" meaning stdin.
func openInput(cmd *cobra.Command, path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open events: %w", err)
	}
	return f, nil
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return write(f)
}

// engine wires a surface, session and rasterizer from the config.
type engine struct {
	surface *ink.Surface
	session *ink.Session
	raster  *ink.Rasterizer
}

func newEngine(cfg config.Config) engine {
	surface := ink.NewSurface(cfg.Width, cfg.Height)
	return engine{
		surface: surface,
		session: ink.NewSession(surface, ink.WithTension(cfg.Tension)),
		raster:  ink.NewRasterizer(surface, ink.WithLineWidth(cfg.LineWidth)),
	}
}
