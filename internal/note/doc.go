// Package note renders Markdown notes to HTML, replacing every show-diff
// fenced block with the diff it describes.
//
// The goldmark [Extension] swaps matching fenced code blocks for [DiffBlock]
// nodes during parsing and renders them through a [BlockSource]. All other
// fenced blocks are syntax highlighted with chroma classes, so one stylesheet
// from render.StyleSheet covers both.
package note
