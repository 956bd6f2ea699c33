// Showdiff renders git diffs into Markdown notes.
//
// A note embeds a show-diff fenced block whose YAML body selects a revision
// range by commits or by dates; showdiff replaces the block with an HTML diff
// of the repository holding the note.
//
// Usage:
//
//	showdiff render daily.md --out daily.html   # render a note
//	showdiff block < block.yaml                 # render one block body
//	showdiff args < block.yaml                  # print the compiled range
//	showdiff daily --append daily.md            # add a yesterday-to-today block
//	showdiff watch daily.md --out daily.html    # re-render on change
//	showdiff hook install --note daily.md --out daily.html
package main
