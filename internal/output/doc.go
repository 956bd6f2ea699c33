// Package output formats processed show-diff blocks for display or machine
// consumption.
//
// Five formats are supported:
//   - html    : the rendered diff fragment (default)
//   - page    : a standalone HTML document with the stylesheet inlined
//   - json    : range, pathspecs and parsed files as structured JSON
//   - text    : human-readable terminal summary
//   - markdown: a changed-files table with collapsible per-file diffs
//
// Use [GetWriter] to obtain a [Writer] for a given format string, then call
// [Writer.Write] with an [io.Writer] and a [*diffblock.Result]. [WriteResult]
// handles destination selection.
package output
