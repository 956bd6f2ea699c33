package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/dshills/showdiff/internal/diffblock"
	"github.com/dshills/showdiff/internal/diffparse"
)

// TextWriter outputs a human-readable summary.
type TextWriter struct{}

func (t *TextWriter) Write(w io.Writer, result *diffblock.Result) error {
	ew := &errWriter{w: w}

	ew.printf("show-diff %s\n", result.Range)
	ew.printf("Repository: %s\n", result.Repo)
	if result.Exclude != "" {
		ew.printf("Exclude: %s\n", result.Exclude)
	}
	ew.println(strings.Repeat("─", 60))

	if result.Empty() {
		ew.println("No changes")
		return ew.err
	}

	ew.printf("Files: %d changed (+%d -%d)\n", len(result.Files), result.Additions, result.Deletions)
	ew.println(strings.Repeat("─", 60))

	width := 0
	for _, f := range result.Files {
		if n := len(f.DisplayName()); n > width {
			width = n
		}
	}
	for _, f := range result.Files {
		ew.printf("  %s %-*s  +%d -%d", statusIcon(f.Status), width, f.DisplayName(), f.Additions, f.Deletions)
		switch {
		case f.Redacted:
			ew.printf("  (redacted)")
		case f.Binary:
			ew.printf("  (binary)")
		}
		ew.println("")
	}

	if result.Truncated {
		ew.println("\nDiff truncated at the configured size limit.")
	}
	return ew.err
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}

func statusIcon(s diffparse.Status) string {
	switch s {
	case diffparse.StatusAdded:
		return "[A]"
	case diffparse.StatusDeleted:
		return "[D]"
	case diffparse.StatusRenamed:
		return "[R]"
	case diffparse.StatusChanged:
		return "[M]"
	default:
		return "[?]"
	}
}
