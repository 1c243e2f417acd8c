// Package workflow orchestrates end-to-end generation: it resolves the
// brand and canvas catalogs, composes the canvas, and persists stills or
// animated clips under per-task output names. Batch generation runs the
// tasks through a bounded worker pool.
package workflow

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mediatalo/somegen/pkg/brand"
	"github.com/mediatalo/somegen/pkg/compose"
	"github.com/mediatalo/somegen/pkg/generator"
	"github.com/mediatalo/somegen/pkg/motion"
	"github.com/mediatalo/somegen/pkg/textgen"
)

// Task is one generation request.
type Task struct {
	BrandID     string
	Platform    string
	ContentType brand.ContentType
	Layout      brand.Layout
	Version     int

	Heading     string
	Description string
	BannerMode  compose.BannerMode
	BannerText  string

	// ImagePath points at the uploaded photo. Empty or unreadable paths
	// degrade to the gradient background.
	ImagePath string

	// Animate selects clip output instead of a still.
	Animate     bool
	Effect      motion.Effect
	DurationSec float64
}

// Result describes one finished artifact.
type Result struct {
	TaskID     string
	OutputPath string
	Heading    string
}

// Workflow wires the catalogs, compositor, clip renderer and optional
// text generator together. All collaborators are injected; New fills
// nil ones with working defaults.
type Workflow struct {
	cfg    Config
	brands *brand.Catalog
	specs  *brand.SpecCatalog
	comp   *compose.Compositor
	clips  *motion.Renderer
	text   textgen.Generator
	logger *zap.Logger
}

// Option customizes a Workflow built by New.
type Option func(*Workflow)

// WithTextGenerator attaches a copy suggestion backend.
func WithTextGenerator(g textgen.Generator) Option {
	return func(w *Workflow) { w.text = g }
}

// WithLogoLoader overrides the logo asset source, mainly for tests.
func WithLogoLoader(l compose.LogoLoader) Option {
	return func(w *Workflow) {
		w.comp = compose.NewCompositor(compose.NewFontResolver([]string{w.cfg.FontDir}, w.logger), l, w.logger)
	}
}

// New builds a ready-to-use workflow from the config.
func New(cfg Config, logger *zap.Logger, opts ...Option) *Workflow {
	if logger == nil {
		logger = zap.NewNop()
	}

	fonts := compose.NewFontResolver([]string{cfg.FontDir}, logger)
	w := &Workflow{
		cfg:    cfg,
		brands: brand.NewCatalog(),
		specs:  brand.NewSpecCatalog(),
		comp:   compose.NewCompositor(fonts, nil, logger),
		clips:  motion.NewRenderer(cfg.FFmpegPath, cfg.VideoQuality, logger),
		logger: logger,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Brands exposes the brand catalog for listing commands.
func (w *Workflow) Brands() *brand.Catalog { return w.brands }

// Specs exposes the canvas spec catalog for listing commands.
func (w *Workflow) Specs() *brand.SpecCatalog { return w.specs }

// GenerateContent runs one task to completion. Validation failures
// surface as ConfigErrors before any pixel work happens, and no output
// file exists after a failed run.
func (w *Workflow) GenerateContent(ctx context.Context, task Task) (Result, error) {
	b, err := w.brands.Lookup(task.BrandID)
	if err != nil {
		return Result{}, err
	}
	spec, err := w.specs.Lookup(task.Platform, task.ContentType, task.Layout)
	if err != nil {
		return Result{}, err
	}
	format, err := compose.StaticFormat(spec.ContentType, spec.Layout, task.Version)
	if err != nil {
		return Result{}, err
	}

	req := &compose.Request{
		Background:  w.loadBackground(task.ImagePath),
		Heading:     task.Heading,
		Description: task.Description,
		Brand:       b,
		Canvas:      spec,
		Version:     task.Version,
		BannerMode:  task.BannerMode,
		BannerText:  task.BannerText,
	}

	if err := os.MkdirAll(w.cfg.OutputDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("output dir: %w", err)
	}

	taskID := randomID()
	base := fmt.Sprintf("%s_%s_%s_v%d_%s", slugify(task.BrandID), task.Platform, task.ContentType, task.Version, taskID)

	var outPath string
	if task.Animate {
		outPath = filepath.Join(w.cfg.OutputDir, base+".mp4")
		photo, full, err := w.comp.ComposeLayers(req)
		if err != nil {
			return Result{}, err
		}
		dur := task.DurationSec
		if dur <= 0 {
			dur = 3
		}
		if err := w.clips.Render(ctx, photo, full, dur, task.Effect, outPath); err != nil {
			return Result{}, err
		}
	} else {
		ext := ".png"
		if format == "jpeg" {
			ext = ".jpg"
		}
		outPath = filepath.Join(w.cfg.OutputDir, base+ext)
		img, err := w.comp.ComposeStatic(req)
		if err != nil {
			return Result{}, err
		}
		if err := generator.Write(outPath, img); err != nil {
			return Result{}, err
		}
	}

	w.logger.Info("task complete",
		zap.String("task_id", taskID),
		zap.String("brand", task.BrandID),
		zap.String("output", outPath))

	return Result{TaskID: taskID, OutputPath: outPath, Heading: task.Heading}, nil
}

// GenerateBatch runs the tasks through a worker pool bounded by
// MaxConcurrent, each under the configured task timeout. Results keep
// task order; the first failure cancels the remaining tasks.
func (w *Workflow) GenerateBatch(ctx context.Context, tasks []Task) ([]Result, error) {
	results := make([]Result, len(tasks))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(w.cfg.MaxConcurrent)

	for i, task := range tasks {
		g.Go(func() error {
			taskCtx, cancel := context.WithTimeout(ctx, w.cfg.TaskTimeout)
			defer cancel()

			res, err := w.GenerateContent(taskCtx, task)
			if err != nil {
				return fmt.Errorf("task %d (%s/%s): %w", i, task.BrandID, task.Platform, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// SuggestText asks the configured text backend for a heading/description
// pair. Without a backend the call fails cleanly.
func (w *Workflow) SuggestText(ctx context.Context, req textgen.SuggestRequest) (textgen.Suggestion, error) {
	if w.text == nil {
		return textgen.Suggestion{}, errors.New("text suggestion not configured (set GEMINI_API_KEY)")
	}
	return w.text.Suggest(ctx, req)
}

// loadBackground decodes the uploaded photo. Failures are logged and
// return nil so the compositor falls back to the gradient.
func (w *Workflow) loadBackground(path string) image.Image {
	if path == "" {
		return nil
	}
	f, err := os.Open(path)
	if err != nil {
		w.logger.Warn("background unreadable, using gradient", zap.String("path", path), zap.Error(err))
		return nil
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		w.logger.Warn("background undecodable, using gradient", zap.String("path", path), zap.Error(err))
		return nil
	}
	return img
}

func randomID() string {
	b := make([]byte, 8)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// slugify makes a brand id safe for a file name.
func slugify(s string) string {
	s = strings.ToLower(s)
	var out strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			out.WriteRune(r)
		case r == 'ä':
			out.WriteRune('a')
		case r == 'ö':
			out.WriteRune('o')
		case r == 'å':
			out.WriteRune('a')
		default:
			out.WriteRune('_')
		}
	}
	return out.String()
}
