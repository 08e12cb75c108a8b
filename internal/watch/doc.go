// Package watch keeps the route registry fresh while files change.
//
// A Watcher subscribes to filesystem events under the route directory,
// collapses bursts with a single quiet-period timer, and then re-runs
// generation by spawning the tool as a subprocess through whichever package
// runner the project uses. The generator is never called in-process.
//
// Only added, dirAdded, changed, removed and dirRemoved events count. Every
// counted event cancels the pending timer and starts a new one, so N events
// inside one quiet period produce exactly one spawn.
//
// The launcher is resolved again on every firing, in priority order:
//
//	bun x rrv7-routegen generate ...     when "bun --version" succeeds
//	yarn run generate:routes             when yarn.lock exists
//	pnpm exec rrv7-routegen generate ... when pnpm-lock.yaml exists
//	npx rrv7-routegen generate ...       otherwise
//
// Subprocesses inherit standard I/O and are not awaited by the loop. A new
// one may start before the previous one exits; the registry file is simply
// rewritten by whichever finishes last. A non-zero exit is logged and the
// loop keeps going.
package watch
