package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/routegen/internal/config"
	"github.com/vango-dev/routegen/internal/errors"
	"github.com/vango-dev/routegen/internal/logging"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┬─┐┌─┐┬ ┬┌┬┐┌─┐┌─┐┌─┐┌┐┌
  ├┬┘│ ││ │ │ ├┤ │ ┬├┤ │││
  ┴└─└─┘└─┘ ┴ └─┘└─┘└─┘┘└┘
`

// rootOptions holds the persistent flags shared by every command.
type rootOptions struct {
	routeDir       string
	outDir         string
	outputFileName string
	logLevel       string
	logFormat      string
	noColor        bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit status. Errors are
// printed in the format selected by --log-format.
func run(args []string, stdout, stderr io.Writer) int {
	rootCmd, opts := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		if opts.logFormat == "json" {
			errors.PrintErrorJSON(stderr, err)
		} else {
			errors.PrintError(stderr, err)
		}
		return 1
	}
	return 0
}

func newRootCmd() (*cobra.Command, *rootOptions) {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "routegen",
		Short: "Typed route registry generator for file-based routes",
		Long: `routegen scans a route directory, recognises route modules and writes a
typed registry mapping each route key to its import path.

A file is a route module when it exports an action or loader, or when its
default export looks like a React component.

Running routegen without a command is the same as "routegen generate".`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.routeDir, "route-dir", config.DefaultRouteDir, "Directory to scan for routes")
	flags.StringVar(&opts.outDir, "out-dir", config.DefaultOutDir, "Output directory")
	flags.StringVar(&opts.outputFileName, "output-file-name", config.DefaultOutputFileName, "Output file name")
	flags.StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flags.StringVar(&opts.logFormat, "log-format", "text", "Log format (text, json)")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colored error output")

	rootCmd.AddCommand(
		generateCmd(opts),
		watchCmd(opts),
		versionCmd(),
	)

	return rootCmd, opts
}

// context builds the command context carrying the configured logger.
func (o *rootOptions) context(cmd *cobra.Command) context.Context {
	if o.noColor {
		errors.DisableColors()
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.New(o.logLevel, o.logFormat, cmd.ErrOrStderr())
	return logging.WithLogger(ctx, logger)
}

// overrides returns only the path flags the user actually set, so flag
// defaults never mask values from config files or the environment.
func (o *rootOptions) overrides(cmd *cobra.Command) config.Overrides {
	var ov config.Overrides
	if cmd.Flags().Changed("route-dir") {
		ov.RouteDir = o.routeDir
	}
	if cmd.Flags().Changed("out-dir") {
		ov.OutDir = o.outDir
	}
	if cmd.Flags().Changed("output-file-name") {
		ov.OutputFileName = o.outputFileName
	}
	return ov
}

// resolveConfig loads the configuration for the working directory.
func (o *rootOptions) resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, errors.New(errors.CodeConfigRead).Wrap(err)
	}
	return config.Resolve(wd, o.overrides(cmd))
}

// printBanner prints the routegen ASCII art banner.
func printBanner(w io.Writer) {
	fmt.Fprint(w, banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(format string, args ...any) {
	fmt.Printf("\033[33m⚠\033[0m %s\n", fmt.Sprintf(format, args...))
}

// errorMsg prints an error message.
func errorMsg(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "\033[31m✗\033[0m %s\n", fmt.Sprintf(format, args...))
}
