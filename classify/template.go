package classify

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/ink"
)

// ErrNoTemplates is returned when a template directory holds no usable
// PNG files.
var ErrNoTemplates = errors.New("classify: no templates found")

// DefaultSampleSize is the side of the square both templates and snapshots
// are reduced to before comparison.
const DefaultSampleSize = 28

// minCoverage is the ink fraction below which a snapshot counts as blank.
const minCoverage = 0.002

// variantSuffix matches the "_<n>" suffix that lets several templates
// share a label, e.g. "7_2.png".
var variantSuffix = regexp.MustCompile(`_[0-9]+$`)

type template struct {
	label  string
	vector []float64
}

// TemplateClassifier labels snapshots by comparing them to reference
// drawings. Each PNG file in the template directory is one reference; its
// label is the file name without extension and without a trailing "_<n>"
// variant suffix. Labels are NFC-normalized.
//
// The score is the cosine similarity of the two ink-darkness vectors after
// both images are reduced to the sample size, so it lies in [0, 1].
type TemplateClassifier struct {
	dir  string
	size int

	mu        sync.RWMutex
	templates []template
}

// NewTemplateClassifier loads every template in dir. size is the side of
// the comparison grid; non-positive selects DefaultSampleSize.
func NewTemplateClassifier(dir string, size int) (*TemplateClassifier, error) {
	if size <= 0 {
		size = DefaultSampleSize
	}
	c := &TemplateClassifier{dir: dir, size: size}
	if err := c.Reload(); err != nil {
		return nil, err
	}
	return c, nil
}

// Labels returns the distinct template labels in sorted order.
func (c *TemplateClassifier) Labels() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	seen := make(map[string]bool, len(c.templates))
	var labels []string
	for _, t := range c.templates {
		if !seen[t.label] {
			seen[t.label] = true
			labels = append(labels, t.label)
		}
	}
	sort.Strings(labels)
	return labels
}

// Reload rereads the template directory. On error the previous templates
// stay in use.
func (c *TemplateClassifier) Reload() error {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return fmt.Errorf("classify: read templates: %w", err)
	}

	var templates []template
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".png") {
			continue
		}
		path := filepath.Join(c.dir, e.Name())
		img, err := loadPNG(path)
		if err != nil {
			ink.Logger().Warn("classify: skipping template", "path", path, "err", err)
			continue
		}
		templates = append(templates, template{
			label:  labelFromName(e.Name()),
			vector: darkness(Prepare(img, c.size, false)),
		})
	}
	if len(templates) == 0 {
		return fmt.Errorf("%w in %s", ErrNoTemplates, c.dir)
	}

	c.mu.Lock()
	c.templates = templates
	c.mu.Unlock()

	ink.Logger().Info("classify: templates loaded", "dir", c.dir, "count", len(templates))
	return nil
}

// Classify returns the best matching label. A blank snapshot yields an
// empty Result.
func (c *TemplateClassifier) Classify(ctx context.Context, img image.Image) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	g := Prepare(img, c.size, false)
	if inkCoverage(g) < minCoverage {
		return Result{}, nil
	}
	v := darkness(g)

	c.mu.RLock()
	defer c.mu.RUnlock()

	var best Result
	for _, t := range c.templates {
		if score := cosine(v, t.vector); score > best.Confidence {
			best = Result{Label: t.label, Confidence: score}
		}
	}
	best.Confidence = clamp01(best.Confidence)
	return best, nil
}

// Watch reloads the templates whenever a PNG in the directory is created,
// written, renamed or removed. It returns when ctx is done.
func (c *TemplateClassifier) Watch(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("classify: watch templates: %w", err)
	}
	defer func() { _ = w.Close() }()

	if err := w.Add(c.dir); err != nil {
		return fmt.Errorf("classify: watch %s: %w", c.dir, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !strings.EqualFold(filepath.Ext(ev.Name), ".png") || ev.Op == fsnotify.Chmod {
				continue
			}
			if err := c.Reload(); err != nil {
				ink.Logger().Warn("classify: template reload failed", "event", ev.String(), "err", err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			ink.Logger().Warn("classify: watcher error", "err", err)
		}
	}
}

func labelFromName(name string) string {
	label := strings.TrimSuffix(name, filepath.Ext(name))
	label = variantSuffix.ReplaceAllString(label, "")
	return norm.NFC.String(label)
}

func loadPNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return png.Decode(f)
}

// darkness maps gray levels to ink intensity in [0, 1], background 0.
func darkness(g *image.Gray) []float64 {
	v := make([]float64, len(g.Pix))
	for i, p := range g.Pix {
		v[i] = float64(255-p) / 255
	}
	return v
}

func cosine(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / math.Sqrt(na*nb)
}
