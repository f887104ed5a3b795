// Package config loads inkpad settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/ink"
	"github.com/gogpu/ink/classify"
)

// Config holds the settings of the inkpad command.
type Config struct {
	// Width and Height give the surface resolution in pixels.
	Width  int `toml:"width"`
	Height int `toml:"height"`

	// LineWidth is the rendered stroke width in pixels.
	LineWidth float64 `toml:"line_width"`

	// Tension is the curve control arm scale, in (0, 1].
	Tension float64 `toml:"tension"`

	// Interval is the classification cadence, e.g. "250ms".
	Interval Duration `toml:"interval"`

	// SampleSize is the side of the square classifier input.
	SampleSize int `toml:"sample_size"`

	// Templates is the template directory for the classifier.
	Templates string `toml:"templates"`

	// Delay paces event replay to imitate live input, e.g. "8ms".
	Delay Duration `toml:"delay"`
}

// Duration is a time.Duration stored as a string in TOML.
type Duration struct {
	time.Duration
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// Default returns the built-in settings: a 280×280 surface with the
// stroke width and classification cadence of a phone digit pad.
func Default() Config {
	return Config{
		Width:      280,
		Height:     280,
		LineWidth:  ink.DefaultLineWidth,
		Tension:    ink.DefaultTension,
		Interval:   Duration{classify.DefaultInterval},
		SampleSize: classify.DefaultSampleSize,
	}
}

// Load reads path on top of Default. An empty path returns Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return cfg, fmt.Errorf("config: %s:%d:%d: %w", path, row, col, err)
		}
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Save writes cfg to path as TOML.
func Save(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("size %dx%d must be positive", c.Width, c.Height))
	}
	if c.LineWidth <= 0 {
		errs = append(errs, fmt.Errorf("line_width %g must be positive", c.LineWidth))
	}
	if !(c.Tension > 0 && c.Tension <= 1) {
		errs = append(errs, fmt.Errorf("tension %g must be in (0, 1]", c.Tension))
	}
	if c.Interval.Duration < 0 || c.Delay.Duration < 0 {
		errs = append(errs, errors.New("durations must not be negative"))
	}
	if c.SampleSize < 0 {
		errs = append(errs, fmt.Errorf("sample_size %d must not be negative", c.SampleSize))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
