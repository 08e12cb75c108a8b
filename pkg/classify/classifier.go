package classify

import (
	"context"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/routegen/internal/errors"
	"github.com/vango-dev/routegen/internal/logging"
)

// Default tracer name for classification spans.
const defaultTracerName = "routegen/classify"

// Reason names one export that made a file a route module.
type Reason string

const (
	ReasonAction    Reason = "action"
	ReasonLoader    Reason = "loader"
	ReasonComponent Reason = "component"
)

// Result is the outcome of classifying one file.
type Result struct {
	// Path is the file that was classified.
	Path string

	// IsRoute is the verdict.
	IsRoute bool

	// Reasons lists what matched, in action, loader, component order.
	Reasons []Reason

	// Signals are the component markers found in the file text.
	Signals Signals

	// HasDefaultExport reports whether a default export was found.
	HasDefaultExport bool

	// Err is the read or parse failure, if any. IsRoute is false when set.
	Err error
}

// Classifier decides whether files are route modules. It holds no per-file
// state and is safe for concurrent use.
type Classifier struct {
	heuristic Heuristic
	tracer    trace.Tracer
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithHeuristic replaces the component heuristic.
func WithHeuristic(h Heuristic) Option {
	return func(c *Classifier) {
		if h != nil {
			c.heuristic = h
		}
	}
}

// WithTracerName sets the tracer name used for classification spans.
func WithTracerName(name string) Option {
	return func(c *Classifier) {
		c.tracer = otel.Tracer(name)
	}
}

// New creates a Classifier using DefaultHeuristic unless overridden.
func New(opts ...Option) *Classifier {
	c := &Classifier{
		heuristic: DefaultHeuristic,
		tracer:    otel.Tracer(defaultTracerName),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// IsRouteModule reports whether the file at path is a route module.
func (c *Classifier) IsRouteModule(ctx context.Context, path string) bool {
	return c.Classify(ctx, path).IsRoute
}

// Classify reads and parses the file at path. Content is read fresh on every
// call. Failures are logged and yield a negative Result; they are never
// returned to the caller.
func (c *Classifier) Classify(ctx context.Context, path string) Result {
	ctx, span := c.tracer.Start(ctx, "classify.file",
		trace.WithAttributes(attribute.String("routegen.path", path)))
	defer span.End()

	log := logging.FromContext(ctx)
	res := Result{Path: path}

	content, err := os.ReadFile(path)
	if err != nil {
		res.Err = errors.New(errors.CodeClassification).WithDetail(path).Wrap(err)
		log.Error(res.Err.Error(), "path", path)
		span.RecordError(err)
		span.SetStatus(codes.Error, "read failed")
		return res
	}

	set, err := scanExports(ctx, path, content)
	if err != nil {
		res.Err = errors.New(errors.CodeClassification).WithDetail(path).Wrap(err)
		log.Error(res.Err.Error(), "path", path)
		span.RecordError(err)
		span.SetStatus(codes.Error, "parse failed")
		return res
	}
	if set.syntaxError != nil {
		loc := errors.New(errors.CodeClassification).
			WithLocation(path, int(set.syntaxError.Row)+1, int(set.syntaxError.Column)+1).
			WithDetail("syntax error, scanning recovered statements")
		log.Debug(loc.FormatCompact(), "path", path)
	}

	res.Signals = DetectSignals(content)
	res.HasDefaultExport = set.defaultExport

	if set.action {
		res.Reasons = append(res.Reasons, ReasonAction)
	}
	if set.loader {
		res.Reasons = append(res.Reasons, ReasonLoader)
	}
	if set.defaultExport && c.heuristic.IsComponent(res.Signals) {
		res.Reasons = append(res.Reasons, ReasonComponent)
	}
	res.IsRoute = len(res.Reasons) > 0

	span.SetAttributes(attribute.Bool("routegen.route", res.IsRoute))
	log.Debug("classified", "path", path, "route", res.IsRoute, "reasons", res.Reasons)
	return res
}
