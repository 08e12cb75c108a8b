package generator

import (
	"bytes"
	"encoding/json"
)

// Header is the first line of every generated file.
const Header = "// AUTO-GENERATED — DO NOT EDIT"

// Render produces the registry module for entries, in the given order.
// With no entries the union is "never" so the output still type-checks.
func Render(entries []RouteEntry) []byte {
	var b bytes.Buffer

	b.WriteString(Header)
	b.WriteString("\n")

	if len(entries) == 0 {
		b.WriteString("export type RouteFilePath = never;\n\n")
	} else {
		b.WriteString("export type RouteFilePath =\n")
		for i, e := range entries {
			b.WriteString("  | ")
			b.WriteString(jsString(e.RouteKey))
			if i == len(entries)-1 {
				b.WriteString(";")
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("export function routeFile(path: RouteFilePath) {\n")
	b.WriteString("  switch(path) {\n")
	for _, e := range entries {
		b.WriteString("    case ")
		b.WriteString(jsString(e.RouteKey))
		b.WriteString(": return ")
		b.WriteString(jsString(e.ImportPath))
		b.WriteString(";\n")
	}
	b.WriteString("    default: throw new Error(`Invalid routeFile: ${path}`);\n")
	b.WriteString("  }\n")
	b.WriteString("}\n")

	return b.Bytes()
}

// jsString returns s as a double-quoted string literal that JavaScript
// reads back unchanged. Invalid UTF-8 becomes U+FFFD.
func jsString(s string) string {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return `""`
	}
	return string(bytes.TrimSuffix(b.Bytes(), []byte("\n")))
}
