// Package render turns parsed diffs into HTML.
//
// The markup follows the diff2html line-by-line layout (d2h-* classes), so
// stylesheets written for diff2html apply. File headers and the optional file
// list are decorated with named icon templates; [Options.Templates] replaces
// any of the defaults by name. Line content is syntax highlighted with chroma
// using the lexer matching each file name, emitting class-based spans styled
// by [StyleSheet].
package render
