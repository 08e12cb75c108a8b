package watch

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// PackageName is the published package the runners execute.
const PackageName = "rrv7-routegen"

// Launcher names for logs and metrics.
const (
	LauncherBun  = "bun"
	LauncherYarn = "yarn"
	LauncherPnpm = "pnpm"
	LauncherNpx  = "npx"
)

// Launcher is a resolved regeneration command.
type Launcher struct {
	Name string
	Bin  string
	Args []string
}

// String renders the command line.
func (l Launcher) String() string {
	return strings.Join(append([]string{l.Bin}, l.Args...), " ")
}

// Environment answers the questions launcher resolution asks.
type Environment interface {
	// Probe reports whether running bin with args exits successfully.
	Probe(ctx context.Context, bin string, args ...string) bool

	// FileExists reports whether name exists in the project directory.
	FileExists(name string) bool
}

// SystemEnvironment probes the real machine.
type SystemEnvironment struct {
	// Dir is the project directory lockfiles are looked up in.
	Dir string

	// ProbeTimeout bounds each probe. Zero means 5s.
	ProbeTimeout time.Duration
}

// Probe runs bin with args, discarding its output.
func (e SystemEnvironment) Probe(ctx context.Context, bin string, args ...string) bool {
	timeout := e.ProbeTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = e.Dir
	return cmd.Run() == nil
}

// FileExists checks for name relative to Dir.
func (e SystemEnvironment) FileExists(name string) bool {
	_, err := os.Stat(filepath.Join(e.Dir, name))
	return err == nil
}

// Target is the configuration forwarded to the regeneration command.
type Target struct {
	RouteDir       string
	OutDir         string
	OutputFileName string
}

// Args returns the generate subcommand with explicit flags.
func (t Target) Args() []string {
	return []string{
		"generate",
		"--route-dir=" + t.RouteDir,
		"--out-dir=" + t.OutDir,
		"--output-file-name=" + t.OutputFileName,
	}
}

// Resolver picks the launcher for the current environment. It keeps no
// state between calls.
type Resolver struct {
	Env Environment
}

// NewResolver creates a Resolver over env.
func NewResolver(env Environment) *Resolver {
	return &Resolver{Env: env}
}

// Resolve checks, in order, for a working bun, a yarn.lock, a
// pnpm-lock.yaml, and falls back to npx. The yarn form runs the project's
// generate:routes script and does not forward t.
func (r *Resolver) Resolve(ctx context.Context, t Target) Launcher {
	args := t.Args()

	if r.Env.Probe(ctx, "bun", "--version") {
		return Launcher{
			Name: LauncherBun,
			Bin:  "bun",
			Args: append([]string{"x", PackageName}, args...),
		}
	}
	if r.Env.FileExists("yarn.lock") {
		return Launcher{
			Name: LauncherYarn,
			Bin:  "yarn",
			Args: []string{"run", "generate:routes"},
		}
	}
	if r.Env.FileExists("pnpm-lock.yaml") {
		return Launcher{
			Name: LauncherPnpm,
			Bin:  "pnpm",
			Args: append([]string{"exec", PackageName}, args...),
		}
	}
	return Launcher{
		Name: LauncherNpx,
		Bin:  "npx",
		Args: append([]string{PackageName}, args...),
	}
}
