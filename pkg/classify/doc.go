// Package classify decides whether a source file is a route module.
//
// A file is a route module when, among its top-level statements, it has
//
//   - an exported function or variable named action,
//   - an exported function or variable named loader, or
//   - a default export in a file that looks like a UI component.
//
// "Looks like a component" is a Heuristic over Signals computed from the
// whole file text. DefaultHeuristic accepts a file when
//
//	(LibraryImport && (Markup || ComponentName)) ||
//	(DefaultExportFunction && Markup) ||
//	(FrameworkImport && (DefaultExportFunction || ComponentName))
//
// Exports are found with a tree-sitter parse using the TypeScript grammar
// for .ts files and the TSX grammar for .tsx, .js and .jsx files. Matching is
// by name only: an exported constant named loader counts even if it is not a
// function.
//
// # Usage
//
//	c := classify.New()
//	if c.IsRouteModule(ctx, "app/routes/home.tsx") {
//	    // ...
//	}
//
// Classification never returns an error. Unreadable or unparsable files are
// logged through the context logger and reported as not a route module.
package classify
