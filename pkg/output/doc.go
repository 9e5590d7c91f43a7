// Package output prints what a scan found.
//
// A Sink receives matches and listing problems from concurrent scan
// branches. In text mode it streams one absolute path per line as matches
// arrive, styled with lipgloss when the writer is a terminal. In json and
// yaml mode it collects everything and writes one document, sorted by
// path, when closed.
//
// Problems (directories that could not be listed) are written to the
// error writer as "<code> <path>" in text mode and included in the
// document otherwise.
package output
