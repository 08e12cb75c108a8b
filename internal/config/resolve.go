package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/vango-dev/routegen/internal/errors"
)

// Environment variables consulted after the config file.
const (
	EnvRouteDir       = "ROUTEGEN_ROUTE_DIR"
	EnvOutDir         = "ROUTEGEN_OUT_DIR"
	EnvOutputFileName = "ROUTEGEN_OUTPUT_FILE_NAME"
)

// Overrides carries values supplied on the command line. An empty field means
// the flag was not given.
type Overrides struct {
	RouteDir       string
	OutDir         string
	OutputFileName string
}

// Resolve builds the configuration for a run started in dir and validates it.
// Any returned error is fatal.
func Resolve(dir string, o Overrides) (*Config, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.New(errors.CodeConfigRead).Wrap(err)
	}

	cfg := New(absDir)

	path, values, err := Discover(absDir)
	if err != nil {
		return nil, err
	}
	if path != "" {
		cfg.configPath = path
		cfg.apply(values["routeDir"], values["outDir"], values["outputFileName"])
	}

	env, err := environment(absDir)
	if err != nil {
		return nil, err
	}
	cfg.apply(env[EnvRouteDir], env[EnvOutDir], env[EnvOutputFileName])

	cfg.apply(o.RouteDir, o.OutDir, o.OutputFileName)
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// apply overwrites fields with the non-empty arguments.
func (c *Config) apply(routeDir, outDir, outputFileName string) {
	if routeDir != "" {
		c.RouteDir = routeDir
	}
	if outDir != "" {
		c.OutDir = outDir
	}
	if outputFileName != "" {
		c.OutputFileName = outputFileName
	}
}

// environment returns the ROUTEGEN_* variables, reading dir/.env for any
// that are not already set in the process environment.
func environment(dir string) (map[string]string, error) {
	dotenv := map[string]string{}
	envPath := filepath.Join(dir, ".env")
	if _, err := os.Stat(envPath); err == nil {
		dotenv, err = godotenv.Read(envPath)
		if err != nil {
			return nil, errors.New(errors.CodeConfigRead).
				WithDetail("Failed to parse " + envPath).
				Wrap(err)
		}
	}

	out := make(map[string]string, 3)
	for _, key := range []string{EnvRouteDir, EnvOutDir, EnvOutputFileName} {
		if v, ok := os.LookupEnv(key); ok {
			out[key] = v
			continue
		}
		if v, ok := dotenv[key]; ok {
			out[key] = v
		}
	}
	return out, nil
}
