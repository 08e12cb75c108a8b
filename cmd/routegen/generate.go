package main

import (
	"context"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vango-dev/routegen/internal/config"
	"github.com/vango-dev/routegen/internal/logging"
	"github.com/vango-dev/routegen/internal/manifest"
	"github.com/vango-dev/routegen/pkg/generator"
)

func generateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Generate the route registry",
		Long: `Scan the route directory and write the route registry.

Settings come from, lowest to highest precedence: built-in defaults, the
nearest .routegenrc / package.json "rrv7Routegen" entry, ROUTEGEN_*
environment variables (a .env file is read too), and command-line flags.

Examples:
  routegen generate
  routegen generate --route-dir=src/routes
  routegen generate --out-dir=app/.generated --output-file-name=routes.ts`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}
}

// runGenerate performs one generation pass. Only configuration problems
// make it fail; generation errors are reported and the command exits 0.
func runGenerate(cmd *cobra.Command, opts *rootOptions) error {
	ctx := opts.context(cmd)

	cfg, err := opts.resolveConfig(cmd)
	if err != nil {
		return err
	}
	logging.FromContext(ctx).Debug("resolved config",
		"file", cfg.Path(),
		"routes", cfg.RouteDirPath(),
		"output", cfg.OutputPath())

	injectScripts(ctx, cfg.Dir())

	info("Scanning route files...")
	g := generator.New(generatorConfig(cfg), generator.WithReporter(func(outPath string, entries []generator.RouteEntry) {
		printReport(cfg, outPath, entries)
	}))
	// Failures are logged by Run and leave the report unprinted.
	g.Run(ctx)
	return nil
}

func generatorConfig(cfg *config.Config) generator.Config {
	return generator.Config{
		RouteDir:       cfg.RouteDir,
		OutDir:         cfg.OutDir,
		OutputFileName: cfg.OutputFileName,
		BaseDir:        cfg.Dir(),
	}
}

func printReport(cfg *config.Config, outPath string, entries []generator.RouteEntry) {
	if rel, err := filepath.Rel(cfg.Dir(), outPath); err == nil {
		outPath = rel
	}
	success("Generated %s", filepath.ToSlash(outPath))

	plural := "s"
	if len(entries) == 1 {
		plural = ""
	}
	info("Found %d route module%s:", len(entries), plural)
	for _, e := range entries {
		info("  • %s → %s", e.RouteKey, e.ImportPath)
	}
}

// injectScripts makes sure package.json carries the routegen scripts.
// Failures are reported as warnings and never stop the command.
func injectScripts(ctx context.Context, dir string) {
	changed, err := manifest.InjectScripts(dir)
	if err != nil {
		logging.FromContext(ctx).Debug("script injection skipped", "error", err)
		warn("Could not add routegen scripts: %v", err)
		return
	}
	if changed {
		success("Added missing routegen scripts to package.json")
	}
}
