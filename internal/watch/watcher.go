package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/vango-dev/routegen/internal/errors"
	"github.com/vango-dev/routegen/internal/logging"
	"github.com/vango-dev/routegen/internal/metrics"
)

// DefaultQuietPeriod is how long the tree must stay quiet before
// regeneration starts.
const DefaultQuietPeriod = 200 * time.Millisecond

// Config describes what to watch and how to regenerate.
type Config struct {
	// Dir is the project working directory. Subprocesses run here and
	// event paths are reported relative to it.
	Dir string

	// RouteDir is the absolute route directory to watch.
	RouteDir string

	// Target is forwarded to the regeneration command as flags.
	Target Target
}

// Options supplies collaborators. Zero values select the real
// implementations.
type Options struct {
	// QuietPeriod overrides DefaultQuietPeriod.
	QuietPeriod time.Duration

	// Source overrides the fsnotify source on RouteDir.
	Source Source

	// Resolver overrides launcher resolution on the real environment.
	Resolver *Resolver

	// Spawner overrides ExecSpawner.
	Spawner Spawner

	// Metrics records watch activity when non-nil.
	Metrics *metrics.Metrics
}

// Watcher is the watch-mode control loop.
type Watcher struct {
	cfg      Config
	quiet    time.Duration
	source   Source
	resolver *Resolver
	spawner  Spawner
	metrics  *metrics.Metrics
}

// exit is the outcome of one regeneration subprocess.
type exit struct {
	launcher Launcher
	started  time.Time
	code     int
	err      error
}

// New creates a Watcher.
func New(cfg Config, opts Options) *Watcher {
	w := &Watcher{
		cfg:      cfg,
		quiet:    opts.QuietPeriod,
		source:   opts.Source,
		resolver: opts.Resolver,
		spawner:  opts.Spawner,
		metrics:  opts.Metrics,
	}
	if w.quiet <= 0 {
		w.quiet = DefaultQuietPeriod
	}
	if w.resolver == nil {
		w.resolver = NewResolver(SystemEnvironment{Dir: cfg.Dir})
	}
	if w.spawner == nil {
		w.spawner = ExecSpawner{}
	}
	return w
}

// Run processes events until ctx is canceled, then returns nil without
// waiting for a pending timer or running subprocesses. It returns an error
// only when the event source cannot be set up.
func (w *Watcher) Run(ctx context.Context) error {
	log := logging.FromContext(ctx)

	src := w.source
	if src == nil {
		fsSrc, err := NewFSSource(ctx, w.cfg.RouteDir)
		if err != nil {
			return errors.New(errors.CodeWatchSubscribe).
				WithDetail(w.cfg.RouteDir).
				WithSuggestion("Check that the route directory exists").
				Wrap(err)
		}
		src = fsSrc
	}
	defer src.Close()

	timer := newDebouncer(w.quiet)
	defer timer.stop()

	exits := make(chan exit)
	events := src.Events()
	errs := src.Errors()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			w.metrics.ObserveEvent(ev.Kind.String())
			if !ev.Kind.Relevant() {
				continue
			}
			log.Info(fmt.Sprintf("%s: %s", strings.ToUpper(ev.Kind.String()), w.relative(ev.Path)))
			timer.reset()

		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			log.Warn(errors.New(errors.CodeWatchSubscribe).Wrap(err).Error())

		case <-timer.C():
			timer.fired()
			w.spawn(ctx, exits)

		case res := <-exits:
			w.finish(ctx, res)
		}
	}
}

// spawn resolves the launcher afresh and starts it without waiting.
func (w *Watcher) spawn(ctx context.Context, exits chan<- exit) {
	log := logging.FromContext(ctx)

	launcher := w.resolver.Resolve(ctx, w.cfg.Target)
	log.Debug("regenerating", "command", launcher.String())

	started := time.Now()
	proc, err := w.spawner.Start(launcher, w.cfg.Dir)
	if err != nil {
		w.metrics.ObserveSpawnFailure()
		log.Error(errors.New(errors.CodeWatchSpawn).
			WithDetail(launcher.String()).
			Wrap(err).Error())
		return
	}
	w.metrics.ObserveSpawn(launcher.Name)

	go func() {
		code, err := proc.Wait()
		select {
		case exits <- exit{launcher: launcher, started: started, code: code, err: err}:
		case <-ctx.Done():
		}
	}()
}

func (w *Watcher) finish(ctx context.Context, res exit) {
	ok := res.err == nil && res.code == 0
	w.metrics.ObserveExit(time.Since(res.started), ok)
	if ok {
		return
	}

	e := errors.New(errors.CodeWatchSpawn).
		WithDetail(fmt.Sprintf("Generation failed with code %d", res.code))
	if res.err != nil {
		e = e.Wrap(res.err)
	}
	logging.FromContext(ctx).Error(e.Error(), "command", res.launcher.String())
}

// relative reports path relative to the project directory with "/"
// separators, falling back to the path itself.
func (w *Watcher) relative(path string) string {
	if w.cfg.Dir != "" {
		if rel, err := filepath.Rel(w.cfg.Dir, path); err == nil {
			path = rel
		}
	}
	return filepath.ToSlash(path)
}
