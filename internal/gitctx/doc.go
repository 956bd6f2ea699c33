// Package gitctx runs git diffs for show-diff blocks.
//
// A [Repo] shells out to the git binary in a repository directory with a
// per-command timeout and the caller's context. [Repo.Diff] takes a revision
// range and a set of pathspecs (typically exclusion pathspecs compiled by the
// revrange package) and returns the unified diff text, truncated at file
// section boundaries when it exceeds the configured byte budget.
//
// Failures of the git binary are reported as [*ToolError], which carries the
// arguments and git's stderr so the message can be shown in place of a diff.
package gitctx
