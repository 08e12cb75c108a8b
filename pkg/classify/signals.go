package classify

import (
	"bytes"
	"regexp"
)

// Signals are the independent component-likelihood markers found in a file.
type Signals struct {
	// LibraryImport is set when the file imports React.
	LibraryImport bool `json:"libraryImport"`

	// Markup is set when the file contains JSX-like tags.
	Markup bool `json:"markup"`

	// ComponentName is set when a PascalCase function is declared.
	ComponentName bool `json:"componentName"`

	// FrameworkImport is set when the file imports from a router package.
	FrameworkImport bool `json:"frameworkImport"`

	// DefaultExportFunction is set for "export default function".
	DefaultExportFunction bool `json:"defaultExportFunction"`
}

var (
	componentNamePattern         = regexp.MustCompile(`function\s+[A-Z][a-zA-Z0-9]*`)
	defaultExportFunctionPattern = regexp.MustCompile(`export\s+default\s+function`)

	libraryImportMarkers = [][]byte{
		[]byte("import React"),
		[]byte("import * as React"),
		[]byte(`from "react"`),
		[]byte(`from 'react'`),
	}

	frameworkImportMarkers = [][]byte{
		[]byte(`from "@remix-run/react"`),
		[]byte(`from '@remix-run/react'`),
		[]byte(`from "react-router"`),
		[]byte(`from 'react-router'`),
		[]byte(`from "react-router-dom"`),
		[]byte(`from 'react-router-dom'`),
	}
)

// DetectSignals scans the raw file content for component-likelihood markers.
func DetectSignals(content []byte) Signals {
	return Signals{
		LibraryImport: containsAny(content, libraryImportMarkers),
		Markup: bytes.Contains(content, []byte("<")) &&
			(bytes.Contains(content, []byte("/>")) || bytes.Contains(content, []byte("</"))),
		ComponentName:         componentNamePattern.Match(content),
		FrameworkImport:       containsAny(content, frameworkImportMarkers),
		DefaultExportFunction: defaultExportFunctionPattern.Match(content),
	}
}

func containsAny(content []byte, markers [][]byte) bool {
	for _, m := range markers {
		if bytes.Contains(content, m) {
			return true
		}
	}
	return false
}
