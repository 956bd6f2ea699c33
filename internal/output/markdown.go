package output

import (
	"io"
	"strings"

	"github.com/dshills/showdiff/internal/diffblock"
	"github.com/dshills/showdiff/internal/diffparse"
)

// MarkdownWriter outputs a changed-files table with collapsible diffs.
type MarkdownWriter struct{}

func (m *MarkdownWriter) Write(w io.Writer, result *diffblock.Result) error {
	ew := &errWriter{w: w}

	ew.printf("## Changes %s\n\n", "`"+result.Range+"`")
	if result.Empty() {
		ew.println("No changes")
		return ew.err
	}

	ew.println("| Status | File | + | - |")
	ew.println("|--------|------|---|---|")
	for _, f := range result.Files {
		ew.printf("| %s | `%s` | %d | %d |\n", f.Status, f.DisplayName(), f.Additions, f.Deletions)
	}
	ew.printf("| | **Total** | **%d** | **%d** |\n\n", result.Additions, result.Deletions)

	for _, f := range result.Files {
		ew.printf("<details>\n<summary>%s %s</summary>\n\n", mdStatusIcon(f.Status), f.DisplayName())
		switch {
		case f.Redacted:
			ew.println("File content redacted.")
		case f.Binary:
			ew.println("Binary file not shown.")
		default:
			fence := fenceFor(f)
			ew.println(fence + "diff")
			writeHunks(ew, f)
			ew.println(fence)
		}
		ew.println("\n</details>\n")
	}
	return ew.err
}

func writeHunks(ew *errWriter, f diffparse.File) {
	for _, h := range f.Hunks {
		ew.println(h.Header)
		for _, l := range h.Lines {
			ew.println(linePrefix(l.Type) + l.Content)
		}
	}
}

func linePrefix(t diffparse.LineType) string {
	switch t {
	case diffparse.LineAdded:
		return "+"
	case diffparse.LineDeleted:
		return "-"
	default:
		return " "
	}
}

func mdStatusIcon(s diffparse.Status) string {
	switch s {
	case diffparse.StatusAdded:
		return ":green_circle:"
	case diffparse.StatusDeleted:
		return ":red_circle:"
	case diffparse.StatusRenamed:
		return ":blue_circle:"
	default:
		return ":yellow_circle:"
	}
}

// fenceFor returns a backtick fence longer than any run inside the file's
// lines, so diff content cannot close the block.
func fenceFor(f diffparse.File) string {
	longest := 0
	for _, h := range f.Hunks {
		for _, l := range h.Lines {
			run := 0
			for _, r := range l.Content {
				if r == '`' {
					run++
					if run > longest {
						longest = run
					}
				} else {
					run = 0
				}
			}
		}
	}
	if longest < 3 {
		return "```"
	}
	return strings.Repeat("`", longest+1)
}
