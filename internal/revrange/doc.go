// Package revrange compiles a show-diff block configuration into the two
// arguments a git diff needs: a revision range and a set of exclusion
// pathspecs.
//
// A block body is YAML:
//
//	dates:
//	  from: 2023-01-01
//	  to: 2023-01-05
//	exclude:
//	  - .obsidian
//	  - templates
//
// [Parse] validates the body into a [DiffConfig] whose revision selection is
// either [ByCommits], [ByDates], or nil for the default yesterday-to-today
// range. A [Compiler] then produces the range expression and the exclusion
// pathspecs. "Today" is read from the compiler's [Clock] on every call.
package revrange
