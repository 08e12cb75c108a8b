package generator

import (
	"path/filepath"
	"strings"
)

// ImportPrefix is prepended to the relative path to form an import path.
const ImportPrefix = "./routes/"

// Extensions lists the file extensions considered for classification.
var Extensions = []string{".ts", ".tsx", ".js", ".jsx"}

// RouteEntry maps one route key to the module that implements it.
type RouteEntry struct {
	RouteKey   string `json:"routeKey"`
	ImportPath string `json:"importPath"`
}

// IsCandidate reports whether path has one of the supported extensions.
// The comparison is case-sensitive.
func IsCandidate(path string) bool {
	ext := filepath.Ext(path)
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// normalize converts a relative path to forward slashes.
func normalize(rel string) string {
	return strings.ReplaceAll(filepath.ToSlash(rel), `\`, "/")
}

// RouteKey derives the route key from a path relative to the route
// directory: separators become "/" and the final extension is dropped.
func RouteKey(rel string) string {
	rel = normalize(rel)
	return strings.TrimSuffix(rel, filepath.Ext(rel))
}

// ImportPath derives the import path from a path relative to the route
// directory. The extension is kept.
func ImportPath(rel string) string {
	return ImportPrefix + normalize(rel)
}

// NewEntry builds the entry for a path relative to the route directory.
func NewEntry(rel string) RouteEntry {
	return RouteEntry{
		RouteKey:   RouteKey(rel),
		ImportPath: ImportPath(rel),
	}
}
