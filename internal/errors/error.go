package errors

import (
	"bufio"
	"fmt"
	"os"
)

// Category represents the type of error.
type Category string

const (
	CategoryClassify Category = "classify"
	CategoryWalk     Category = "walk"
	CategoryGenerate Category = "generate"
	CategoryWatch    Category = "watch"
	CategoryConfig   Category = "config"
	CategoryManifest Category = "manifest"
	CategoryCLI      Category = "cli"
)

// Location represents a source code location.
type Location struct {
	File   string
	Line   int
	Column int
}

// String returns the location as a formatted string.
func (l *Location) String() string {
	if l == nil {
		return ""
	}
	if l.Column > 0 {
		return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// RoutegenError is a structured error with an optional source location and a
// fix suggestion.
type RoutegenError struct {
	// Code is a unique error identifier (e.g., "E001").
	Code string

	// Category is the error type (classify, walk, config, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Location is the source location where the error occurred.
	Location *Location

	// Context contains surrounding source lines.
	Context []string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *RoutegenError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *RoutegenError) Unwrap() error {
	return e.Wrapped
}

// Fatal reports whether the error must abort the run instead of being logged.
// Only configuration problems are fatal.
func (e *RoutegenError) Fatal() bool {
	return e.Category == CategoryConfig
}

// WithLocation adds source location to the error.
func (e *RoutegenError) WithLocation(file string, line, column int) *RoutegenError {
	e.Location = &Location{File: file, Line: line, Column: column}
	e.Context = readContextLines(file, line, 5)
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *RoutegenError) WithSuggestion(s string) *RoutegenError {
	e.Suggestion = s
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *RoutegenError) WithDetail(d string) *RoutegenError {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *RoutegenError) Wrap(err error) *RoutegenError {
	e.Wrapped = err
	return e
}

// readContextLines reads lines around the specified line number from a file.
func readContextLines(filename string, targetLine, contextSize int) []string {
	file, err := os.Open(filename)
	if err != nil {
		return nil
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	lineNum := 0
	startLine := targetLine - contextSize/2
	endLine := targetLine + contextSize/2

	for scanner.Scan() {
		lineNum++
		if lineNum >= startLine && lineNum <= endLine {
			lines = append(lines, scanner.Text())
		}
		if lineNum > endLine {
			break
		}
	}

	return lines
}

// New creates a RoutegenError from a registered error code.
func New(code string) *RoutegenError {
	template, ok := registry[code]
	if !ok {
		return &RoutegenError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &RoutegenError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
	}
}

// FromError wraps a standard error in a RoutegenError.
func FromError(err error, code string) *RoutegenError {
	if err == nil {
		return nil
	}
	if re, ok := err.(*RoutegenError); ok {
		return re
	}
	return New(code).Wrap(err)
}

// IsFatal reports whether err carries a fatal RoutegenError anywhere in its chain.
func IsFatal(err error) bool {
	for err != nil {
		if re, ok := err.(*RoutegenError); ok && re.Fatal() {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
