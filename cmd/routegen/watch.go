package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/vango-dev/routegen/internal/logging"
	"github.com/vango-dev/routegen/internal/metrics"
	"github.com/vango-dev/routegen/internal/watch"
)

func watchCmd(opts *rootOptions) *cobra.Command {
	var (
		metricsAddr string
		quiet       time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Regenerate the route registry on file changes",
		Long: `Watch the route directory and regenerate the registry when files are
added, changed or removed.

Bursts of changes are collapsed: regeneration starts once the tree has been
quiet for the debounce period. Each regeneration runs routegen through the
project's package runner (bun, yarn, pnpm or npx, in that order).

Examples:
  routegen watch
  routegen watch --route-dir=src/routes
  routegen watch --metrics-addr=:9464`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, opts, metricsAddr, quiet)
		},
	}

	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address (disabled when empty)")
	cmd.Flags().DurationVar(&quiet, "debounce", watch.DefaultQuietPeriod, "Quiet period before regenerating")

	return cmd
}

func runWatch(cmd *cobra.Command, opts *rootOptions, metricsAddr string, quiet time.Duration) error {
	ctx := opts.context(cmd)

	cfg, err := opts.resolveConfig(cmd)
	if err != nil {
		return err
	}

	injectScripts(ctx, cfg.Dir())

	// Handle signals
	ctx, cancel := signalContext(ctx)
	defer cancel()

	var m *metrics.Metrics
	if metricsAddr != "" {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		m = metrics.New(reg)
		go func() {
			if err := metrics.Serve(ctx, metricsAddr, reg); err != nil {
				logging.FromContext(ctx).Debug("metrics endpoint stopped", "addr", metricsAddr, "error", err)
				errorMsg("Metrics endpoint on %s failed: %v", metricsAddr, err)
			}
		}()
	}

	info("Watching %s for route changes...", cfg.RouteDir)

	w := watch.New(watch.Config{
		Dir:      cfg.Dir(),
		RouteDir: cfg.RouteDirPath(),
		Target: watch.Target{
			RouteDir:       cfg.RouteDir,
			OutDir:         cfg.OutDir,
			OutputFileName: cfg.OutputFileName,
		},
	}, watch.Options{
		QuietPeriod: quiet,
		Metrics:     m,
	})
	return w.Run(ctx)
}

// signalContext cancels on SIGINT or SIGTERM.
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-sigCh:
			fmt.Println("\n  Shutting down...")
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		signal.Stop(sigCh)
		cancel()
	}
}
