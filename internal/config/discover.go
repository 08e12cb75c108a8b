package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/routegen/internal/errors"
)

// SearchPlaces lists the files looked for in each directory, in order.
var SearchPlaces = []string{
	".routegenrc",
	".routegenrc.json",
	".routegenrc.yaml",
	".routegenrc.yml",
	"package.json",
}

// knownKeys are the settings read from a config file. Other keys are ignored.
var knownKeys = []string{"routeDir", "outDir", "outputFileName"}

// Values holds the string settings found in a config file, keyed by
// routeDir, outDir and outputFileName.
type Values map[string]string

// Discover walks up from startDir and returns the first config file it finds
// along with its values. It returns "", nil, nil when nothing is found.
func Discover(startDir string) (string, Values, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", nil, errors.New(errors.CodeConfigRead).Wrap(err)
	}

	for {
		for _, name := range SearchPlaces {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err != nil {
				continue
			}
			values, found, err := LoadFile(path)
			if err != nil {
				return "", nil, err
			}
			if found {
				return path, values, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil, nil
		}
		dir = parent
	}
}

// LoadFile reads config values from path. found is false for a package.json
// without an rrv7Routegen object.
func LoadFile(path string) (values Values, found bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false, errors.New(errors.CodeConfigRead).
			WithDetail(path).
			Wrap(err)
	}

	switch filepath.Base(path) {
	case "package.json":
		return loadPackageJSON(path, data)
	case ".routegenrc.json":
		values, err := loadJSON(path, data)
		return values, err == nil, err
	default:
		values, err := loadYAML(path, data)
		return values, err == nil, err
	}
}

func loadPackageJSON(path string, data []byte) (Values, bool, error) {
	var pkg map[string]json.RawMessage
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, false, errors.New(errors.CodeConfigRead).
			WithDetail("Failed to parse " + path + ": " + err.Error()).
			WithSuggestion("Check that package.json is valid JSON")
	}
	raw, ok := pkg[PackageProp]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, false, nil
	}
	values, err := loadJSON(path, raw)
	if err != nil {
		return nil, false, err
	}
	return values, true, nil
}

func loadJSON(path string, data []byte) (Values, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Values{}, nil
	}

	var obj any
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, errors.New(errors.CodeConfigRead).
			WithDetail("Failed to parse " + path + ": " + err.Error()).
			WithSuggestion("Check that the file is valid JSON")
	}
	m, ok := obj.(map[string]any)
	if !ok {
		return nil, errors.New(errors.CodeConfigInvalid).
			WithDetail(path + ": configuration must be an object")
	}

	values := Values{}
	for _, key := range knownKeys {
		v, ok := m[key]
		if !ok || v == nil {
			continue
		}
		s, ok := v.(string)
		if !ok {
			return nil, errors.New(errors.CodeConfigInvalid).
				WithDetail(fmt.Sprintf("%s: %s must be a string, got %T", path, key, v))
		}
		values[key] = s
	}
	return values, nil
}

func loadYAML(path string, data []byte) (Values, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.New(errors.CodeConfigRead).
			WithDetail("Failed to parse " + path + ": " + err.Error()).
			WithSuggestion("Check that the file is valid YAML")
	}
	// Empty document.
	if len(doc.Content) == 0 {
		return Values{}, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, errors.New(errors.CodeConfigInvalid).
			WithLocation(path, root.Line, root.Column).
			WithDetail(path + ": configuration must be a mapping")
	}

	values := Values{}
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]
		if !isKnownKey(key.Value) {
			continue
		}
		if val.Kind == yaml.ScalarNode && val.Tag == "!!null" {
			continue
		}
		if val.Kind != yaml.ScalarNode || val.Tag != "!!str" {
			return nil, errors.New(errors.CodeConfigInvalid).
				WithLocation(path, val.Line, val.Column).
				WithDetail(fmt.Sprintf("%s must be a string", key.Value)).
				WithSuggestion("Quote the value, e.g. " + key.Value + `: "` + val.Value + `"`)
		}
		values[key.Value] = val.Value
	}
	return values, nil
}

func isKnownKey(k string) bool {
	for _, known := range knownKeys {
		if k == known {
			return true
		}
	}
	return false
}
