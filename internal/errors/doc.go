// Package errors provides structured, coded errors for routegen.
//
// Every failure the tool can hit maps to one registered code:
//   - E001 classification: a candidate file could not be read or parsed
//   - E002 walk: a directory under the route root could not be listed
//   - E003 generation: the generation pass failed as a whole
//   - E004 watch spawn: a regeneration subprocess exited non-zero
//   - E005 watch subscribe: the file watcher could not be registered
//   - E020/E021 config: the resolved configuration is malformed
//   - E030 manifest: package.json could not be updated
//
// Only the config category is fatal. Everything else is logged by the caller
// and the run continues with reduced results.
//
// # Usage
//
//	err := errors.New(errors.CodeConfigInvalid).
//	    WithDetail(`"routeDir" must be a string`).
//	    WithLocation(".routegenrc.json", 2, 15).
//	    WithSuggestion("Quote the value in .routegenrc.json")
//
//	fmt.Fprint(os.Stderr, err.Format())
package errors
