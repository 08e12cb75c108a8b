package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/vango-dev/routegen/internal/errors"
)

func writePackage(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0644))
	return dir
}

func readPackage(t *testing.T, dir string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	require.NoError(t, err)
	return string(data)
}

func TestInjectScripts_AddsMissing(t *testing.T) {
	dir := writePackage(t, `{"name":"app","version":"1.0.0","scripts":{"dev":"vite"},"dependencies":{"react":"^19.0.0"}}`)

	changed, err := InjectScripts(dir)
	require.NoError(t, err)
	assert.True(t, changed)

	want := `{
  "name": "app",
  "version": "1.0.0",
  "scripts": {
    "dev": "vite",
    "generate:routes": "routegen",
    "watch:routes": "routegen watch"
  },
  "dependencies": {
    "react": "^19.0.0"
  }
}
`
	assert.Equal(t, want, readPackage(t, dir))
}

func TestInjectScripts_CreatesScriptsObject(t *testing.T) {
	dir := writePackage(t, `{"name": "app"}`)

	changed, err := InjectScripts(dir)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, `{
  "name": "app",
  "scripts": {
    "generate:routes": "routegen",
    "watch:routes": "routegen watch"
  }
}
`, readPackage(t, dir))
}

func TestInjectScripts_KeepsExisting(t *testing.T) {
	original := `{
  "scripts": {
    "generate:routes": "routegen --route-dir=src/routes",
    "watch:routes": "routegen watch"
  }
}`
	dir := writePackage(t, original)

	changed, err := InjectScripts(dir)
	require.NoError(t, err)
	assert.False(t, changed)
	// Untouched byte for byte, including the missing trailing newline.
	assert.Equal(t, original, readPackage(t, dir))
}

func TestInjectScripts_ReplacesFalsyEntries(t *testing.T) {
	dir := writePackage(t, `{"scripts":{"generate:routes":"","watch:routes":null},"private":true}`)

	changed, err := InjectScripts(dir)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, `{
  "scripts": {
    "generate:routes": "routegen",
    "watch:routes": "routegen watch"
  },
  "private": true
}
`, readPackage(t, dir))
}

func TestInjectScripts_NullScripts(t *testing.T) {
	dir := writePackage(t, `{"scripts":null}`)

	changed, err := InjectScripts(dir)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Contains(t, readPackage(t, dir), `"watch:routes": "routegen watch"`)
}

func TestInjectScripts_Idempotent(t *testing.T) {
	dir := writePackage(t, `{"name":"app"}`)

	_, err := InjectScripts(dir)
	require.NoError(t, err)
	first := readPackage(t, dir)

	changed, err := InjectScripts(dir)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, first, readPackage(t, dir))
}

func TestInjectScripts_PreservesValuesVerbatim(t *testing.T) {
	dir := writePackage(t, `{"a":1.50,"b":"x<y && z","c":"é","d":[1,{"e":null}]}`)

	_, err := InjectScripts(dir)
	require.NoError(t, err)

	got := readPackage(t, dir)
	assert.Contains(t, got, `"a": 1.50,`)
	assert.Contains(t, got, `"b": "x<y && z",`)
	assert.Contains(t, got, `"c": "é",`)
	assert.Contains(t, got, `"e": null`)
}

func TestInjectScripts_KeepsArraysMultiline(t *testing.T) {
	dir := writePackage(t, `{"files":["dist","src"],"workspaces":[]}`)

	_, err := InjectScripts(dir)
	require.NoError(t, err)
	assert.Equal(t, `{
  "files": [
    "dist",
    "src"
  ],
  "workspaces": [],
  "scripts": {
    "generate:routes": "routegen",
    "watch:routes": "routegen watch"
  }
}
`, readPackage(t, dir))
}

func TestInjectScripts_KeepsFileMode(t *testing.T) {
	dir := writePackage(t, `{}`)
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.Chmod(path, 0600))

	changed, err := InjectScripts(dir)
	require.NoError(t, err)
	require.True(t, changed)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestInjectScripts_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content *string
	}{
		{name: "missing file"},
		{name: "invalid json", content: ptr(`{"name": `)},
		{name: "top-level array", content: ptr(`[1, 2]`)},
		{name: "scripts not an object", content: ptr(`{"scripts": ["build"]}`)},
		{name: "trailing data", content: ptr(`{} {}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if tt.content != nil {
				dir = writePackage(t, *tt.content)
			}

			changed, err := InjectScripts(dir)
			require.Error(t, err)
			assert.False(t, changed)

			re, ok := err.(*errors.RoutegenError)
			require.True(t, ok, "error type = %T", err)
			assert.Equal(t, errors.CodeManifest, re.Code)
			assert.False(t, errors.IsFatal(err))
		})
	}
}

func ptr(s string) *string { return &s }

func TestIsFalsy(t *testing.T) {
	assert.True(t, isFalsy(gjson.Result{}), "missing")
	for _, raw := range []string{`null`, `false`, `""`, `0`, ` 0.0 `} {
		assert.True(t, isFalsy(gjson.Parse(raw)), raw)
	}
	for _, raw := range []string{`"routegen"`, `true`, `1`, `{}`, `[]`, `" "`} {
		assert.False(t, isFalsy(gjson.Parse(raw)), raw)
	}
}
