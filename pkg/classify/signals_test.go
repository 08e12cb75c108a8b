package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectSignals(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Signals
	}{
		{
			name:    "empty",
			content: "",
			want:    Signals{},
		},
		{
			name:    "default react import",
			content: `import React from "react";`,
			want:    Signals{LibraryImport: true},
		},
		{
			name:    "namespace react import",
			content: `import * as React from "react";`,
			want:    Signals{LibraryImport: true},
		},
		{
			name:    "named react import single quotes",
			content: `import { useState } from 'react';`,
			want:    Signals{LibraryImport: true},
		},
		{
			name:    "self-closing markup",
			content: `const x = <br />;`,
			want:    Signals{Markup: true},
		},
		{
			name:    "closing tag markup",
			content: `const x = <p>hi</p>;`,
			want:    Signals{Markup: true},
		},
		{
			name:    "less-than without tags",
			content: `if (a < b) {}`,
			want:    Signals{},
		},
		{
			name:    "pascal case function",
			content: `function UserCard() {}`,
			want:    Signals{ComponentName: true},
		},
		{
			name:    "camel case function",
			content: `function userCard() {}`,
			want:    Signals{},
		},
		{
			name:    "default export function",
			content: "export  default\nfunction () {}",
			want:    Signals{DefaultExportFunction: true},
		},
		{
			name:    "remix import",
			content: `import { Form } from "@remix-run/react";`,
			want:    Signals{FrameworkImport: true},
		},
		{
			name:    "react-router-dom import",
			content: `import { Link } from 'react-router-dom';`,
			want:    Signals{FrameworkImport: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectSignals([]byte(tt.content)))
		})
	}
}

func TestDefaultHeuristic(t *testing.T) {
	tests := []struct {
		name string
		s    Signals
		want bool
	}{
		{"nothing", Signals{}, false},
		{"library only", Signals{LibraryImport: true}, false},
		{"library and markup", Signals{LibraryImport: true, Markup: true}, true},
		{"library and name", Signals{LibraryImport: true, ComponentName: true}, true},
		{"default fn only", Signals{DefaultExportFunction: true}, false},
		{"default fn and markup", Signals{DefaultExportFunction: true, Markup: true}, true},
		{"markup and name only", Signals{Markup: true, ComponentName: true}, false},
		{"framework only", Signals{FrameworkImport: true}, false},
		{"framework and markup", Signals{FrameworkImport: true, Markup: true}, false},
		{"framework and default fn", Signals{FrameworkImport: true, DefaultExportFunction: true}, true},
		{"framework and name", Signals{FrameworkImport: true, ComponentName: true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DefaultHeuristic.IsComponent(tt.s))
		})
	}
}
