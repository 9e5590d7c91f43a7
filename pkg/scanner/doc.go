// Package scanner walks a directory tree and reports entries whose name
// matches a registered rule.
//
// # Rules
//
// A rule binds an entry kind (file or directory) and a name matcher to a
// handler. Rules are evaluated in registration order and the first rule
// whose handler does not ask to continue wins:
//
//	s := scanner.New().
//		Dir("node_modules", report).
//		File(".pnpm-debug.log", report)
//
// Patterns are parsed by ParsePattern:
//
//   - `*` matches any name
//   - a string without regular expression metacharacters matches the full
//     name exactly
//   - anything else is a regular expression anchored to the full name
//
// # Traversal
//
// Each directory is processed as one level. Its entries are ordered files
// first, then directories, and drained from a remaining queue. Directories
// are queued for descent before rules run against them. A handler returns
// an Outcome:
//
//   - Prune (the zero value) stops rule evaluation and, for a directory,
//     removes it from the descent queue
//   - Continue lets the next matching rule run against the same entry
//   - Descend stops rule evaluation and keeps the directory queued
//
// An Outcome may also replace the level's remaining queue or descent queue
// wholesale with WithRemaining and WithNext. The handler only ever sees
// copies of the queues; the override is folded back by the walker.
//
// Once a level is drained, every queued directory is scanned concurrently
// and the level completes when all of them complete.
//
// # Errors
//
// A directory that cannot be listed is reported (logged and passed to the
// error handler set with WithErrorHandler) and only that level is
// abandoned. A handler error aborts its level and is returned from Scan
// once every other branch has finished.
package scanner
