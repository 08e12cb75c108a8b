package generator

import (
	"context"
	"os"
	"path/filepath"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/vango-dev/routegen/internal/errors"
	"github.com/vango-dev/routegen/internal/fsutil"
	"github.com/vango-dev/routegen/internal/logging"
	"github.com/vango-dev/routegen/pkg/classify"
)

// Default tracer name for generation spans.
const defaultTracerName = "routegen/generator"

// Config is the resolved input of a generation pass.
type Config struct {
	// RouteDir is the directory scanned for route modules.
	RouteDir string

	// OutDir is the directory the registry is written to.
	OutDir string

	// OutputFileName is the bare name of the registry file.
	OutputFileName string

	// BaseDir anchors relative RouteDir and OutDir. Empty means the
	// process working directory.
	BaseDir string
}

// Classifier decides whether a file is a route module.
type Classifier interface {
	IsRouteModule(ctx context.Context, path string) bool
}

// ReportFunc receives the absolute registry path and the entries written
// after a successful pass.
type ReportFunc func(outPath string, entries []RouteEntry)

// Generator runs generation passes for one configuration.
type Generator struct {
	cfg         Config
	classifier  Classifier
	concurrency int
	tracer      trace.Tracer
	report      ReportFunc
}

// Option configures a Generator.
type Option func(*Generator)

// WithClassifier replaces the default classifier.
func WithClassifier(c Classifier) Option {
	return func(g *Generator) {
		if c != nil {
			g.classifier = c
		}
	}
}

// WithConcurrency bounds the number of files classified at once.
// Values below 1 are ignored.
func WithConcurrency(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.concurrency = n
		}
	}
}

// WithReporter registers fn to run after every successful pass.
func WithReporter(fn ReportFunc) Option {
	return func(g *Generator) {
		g.report = fn
	}
}

// New creates a Generator for cfg.
func New(cfg Config, opts ...Option) *Generator {
	g := &Generator{
		cfg:         cfg,
		classifier:  classify.New(),
		concurrency: runtime.GOMAXPROCS(0),
		tracer:      otel.Tracer(defaultTracerName),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Run performs one pass and returns the entries written. Any failure is
// logged and reported as an empty list, so callers cannot tell "no routes"
// from "failed" without the log.
func (g *Generator) Run(ctx context.Context) []RouteEntry {
	entries, err := g.Generate(ctx)
	if err != nil {
		logging.FromContext(ctx).Error(err.Error())
		return []RouteEntry{}
	}
	return entries
}

// Generate performs one pass: walk, classify, render and write.
func (g *Generator) Generate(ctx context.Context) ([]RouteEntry, error) {
	ctx, span := g.tracer.Start(ctx, "generator.generate")
	defer span.End()

	entries, err := g.generate(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "generation failed")
		return nil, err
	}
	span.SetAttributes(attribute.Int("routegen.routes", len(entries)))
	return entries, nil
}

func (g *Generator) generate(ctx context.Context) ([]RouteEntry, error) {
	routeDir, outDir, err := g.resolveDirs()
	if err != nil {
		return nil, errors.New(errors.CodeGeneration).Wrap(err)
	}
	outPath := filepath.Join(outDir, g.cfg.OutputFileName)
	log := logging.FromContext(ctx)

	var candidates []string
	for _, path := range fsutil.WalkFiles(ctx, routeDir) {
		if IsCandidate(path) {
			candidates = append(candidates, path)
		}
	}
	log.Debug("scanning route files", "dir", routeDir, "candidates", len(candidates))

	matched, err := g.classifyAll(ctx, candidates)
	if err != nil {
		return nil, errors.New(errors.CodeGeneration).Wrap(err)
	}

	entries := make([]RouteEntry, 0, len(candidates))
	for i, path := range candidates {
		if !matched[i] {
			continue
		}
		rel, err := filepath.Rel(routeDir, path)
		if err != nil {
			return nil, errors.New(errors.CodeGeneration).WithDetail(path).Wrap(err)
		}
		entries = append(entries, NewEntry(rel))
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, errors.New(errors.CodeGeneration).
			WithDetail("creating " + outDir).
			Wrap(err)
	}
	if err := os.WriteFile(outPath, Render(entries), 0644); err != nil {
		return nil, errors.New(errors.CodeGeneration).
			WithDetail("writing " + outPath).
			Wrap(err)
	}

	log.Debug("wrote route registry", "path", outPath, "routes", len(entries))
	if g.report != nil {
		g.report(outPath, entries)
	}
	return entries, nil
}

// classifyAll classifies candidates concurrently. matched[i] holds the
// verdict for candidates[i], so result order never depends on scheduling.
func (g *Generator) classifyAll(ctx context.Context, candidates []string) ([]bool, error) {
	matched := make([]bool, len(candidates))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(g.concurrency)
	for i, path := range candidates {
		i, path := i, path
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			matched[i] = g.classifier.IsRouteModule(egCtx, path)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return matched, ctx.Err()
}

// resolveDirs makes RouteDir and OutDir absolute.
func (g *Generator) resolveDirs() (routeDir, outDir string, err error) {
	base := g.cfg.BaseDir
	if base == "" {
		if base, err = os.Getwd(); err != nil {
			return "", "", err
		}
	}
	abs := func(p string) string {
		if filepath.IsAbs(p) {
			return filepath.Clean(p)
		}
		return filepath.Join(base, p)
	}
	return abs(g.cfg.RouteDir), abs(g.cfg.OutDir), nil
}
