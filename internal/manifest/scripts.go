// Package manifest keeps the project's package.json wired to routegen.
package manifest

import (
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/vango-dev/routegen/internal/errors"
)

// FileName is the manifest file looked up in the project directory.
const FileName = "package.json"

// Script is a package.json script entry.
type Script struct {
	Name    string
	Command string
}

// Scripts are the entries InjectScripts ensures exist, in insertion order.
var Scripts = []Script{
	{Name: "generate:routes", Command: "routegen"},
	{Name: "watch:routes", Command: "routegen watch"},
}

// prettyOptions re-indents with two spaces and keeps arrays one element per
// line, like npm does.
var prettyOptions = &pretty.Options{Indent: "  "}

// InjectScripts adds any missing Scripts to dir/package.json. Existing
// entries are never overwritten; an entry that is null, false, 0 or "" counts
// as missing. Key order and all other content are preserved. The file is
// written only when something was added, and changed reports whether it was.
func InjectScripts(dir string) (changed bool, err error) {
	path := filepath.Join(dir, FileName)

	info, err := os.Stat(path)
	if err != nil {
		return false, errors.New(errors.CodeManifest).WithDetail(path).Wrap(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return false, errors.New(errors.CodeManifest).WithDetail(path).Wrap(err)
	}

	if !gjson.ValidBytes(data) || !gjson.ParseBytes(data).IsObject() {
		return false, errors.New(errors.CodeManifest).
			WithDetail("Failed to parse " + path).
			WithSuggestion("Check that package.json is a valid JSON object")
	}

	scripts := gjson.GetBytes(data, "scripts")
	switch {
	case isFalsy(scripts):
		if data, err = sjson.SetRawBytes(data, "scripts", []byte("{}")); err != nil {
			return false, errors.New(errors.CodeManifest).WithDetail(path).Wrap(err)
		}
		scripts = gjson.Parse("{}")
	case !scripts.IsObject():
		return false, errors.New(errors.CodeManifest).
			WithDetail(`"scripts" in ` + path + " is not an object")
	}

	existing := scripts.Map()
	for _, s := range Scripts {
		if !isFalsy(existing[s.Name]) {
			continue
		}
		if data, err = sjson.SetBytes(data, "scripts."+gjson.Escape(s.Name), s.Command); err != nil {
			return false, errors.New(errors.CodeManifest).WithDetail(path).Wrap(err)
		}
		changed = true
	}
	if !changed {
		return false, nil
	}

	if err := os.WriteFile(path, pretty.PrettyOptions(data, prettyOptions), info.Mode().Perm()); err != nil {
		return false, errors.New(errors.CodeManifest).
			WithDetail("writing " + path).
			Wrap(err)
	}
	return true, nil
}

// isFalsy reports whether v is missing, null, false, 0 or the empty string.
func isFalsy(v gjson.Result) bool {
	switch v.Type {
	case gjson.Null, gjson.False:
		return true
	case gjson.String:
		return v.Str == ""
	case gjson.Number:
		return v.Num == 0
	}
	return false
}
