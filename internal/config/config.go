package config

import (
	"path/filepath"
	"strings"

	"github.com/vango-dev/routegen/internal/errors"
)

const (
	// DefaultRouteDir is the default route module directory.
	DefaultRouteDir = "app/routes"

	// DefaultOutDir is the default directory for the generated file.
	DefaultOutDir = ".routegen"

	// DefaultOutputFileName is the default name of the generated file.
	DefaultOutputFileName = "route-file.ts"

	// PackageProp is the package.json property holding inline configuration.
	PackageProp = "rrv7Routegen"
)

// Config is the resolved generator configuration. Relative paths are
// interpreted against the working directory passed to Resolve.
type Config struct {
	// RouteDir is the directory scanned for route modules.
	RouteDir string `json:"routeDir" yaml:"routeDir"`

	// OutDir is the directory the generated file is written to.
	OutDir string `json:"outDir" yaml:"outDir"`

	// OutputFileName is the bare name of the generated file.
	OutputFileName string `json:"outputFileName" yaml:"outputFileName"`

	// dir is the working directory relative paths resolve against.
	dir string

	// configPath stores the path where file values were loaded from.
	configPath string
}

// New creates a new Config with default values rooted at dir.
func New(dir string) *Config {
	return &Config{
		RouteDir:       DefaultRouteDir,
		OutDir:         DefaultOutDir,
		OutputFileName: DefaultOutputFileName,
		dir:            dir,
	}
}

// Path returns the config file the values were loaded from, or "" when no
// file was found.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the working directory relative paths resolve against.
func (c *Config) Dir() string {
	return c.dir
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.RouteDir == "" {
		c.RouteDir = DefaultRouteDir
	}
	if c.OutDir == "" {
		c.OutDir = DefaultOutDir
	}
	if c.OutputFileName == "" {
		c.OutputFileName = DefaultOutputFileName
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.RouteDir) == "" {
		return errors.New(errors.CodeConfigInvalid).
			WithDetail("routeDir must not be empty")
	}
	if strings.TrimSpace(c.OutDir) == "" {
		return errors.New(errors.CodeConfigInvalid).
			WithDetail("outDir must not be empty")
	}
	name := c.OutputFileName
	if strings.TrimSpace(name) == "" {
		return errors.New(errors.CodeConfigInvalid).
			WithDetail("outputFileName must not be empty")
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return errors.New(errors.CodeConfigInvalid).
			WithDetail("outputFileName must be a bare file name, got " + quote(name)).
			WithSuggestion("Put the directory part in outDir instead")
	}
	return nil
}

// RouteDirPath returns the absolute path to the route directory.
func (c *Config) RouteDirPath() string {
	return c.abs(c.RouteDir)
}

// OutDirPath returns the absolute path to the output directory.
func (c *Config) OutDirPath() string {
	return c.abs(c.OutDir)
}

// OutputPath returns the absolute path to the generated file.
func (c *Config) OutputPath() string {
	return filepath.Join(c.OutDirPath(), c.OutputFileName)
}

func (c *Config) abs(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(c.dir, path)
}

func quote(s string) string {
	return `"` + s + `"`
}
