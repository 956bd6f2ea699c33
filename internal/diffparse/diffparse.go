// Package diffparse reads unified diff text as produced by git diff into
// files, hunks and numbered lines.
package diffparse

import (
	"strconv"
	"strings"
)

// Status is the kind of change made to a file.
type Status string

const (
	StatusChanged Status = "changed"
	StatusAdded   Status = "added"
	StatusDeleted Status = "deleted"
	StatusRenamed Status = "renamed"
)

// LineType classifies a line inside a hunk.
type LineType string

const (
	LineContext LineType = "context"
	LineAdded   LineType = "insert"
	LineDeleted LineType = "delete"
)

// File is the diff of one path.
type File struct {
	OldPath   string `json:"oldPath"`
	NewPath   string `json:"newPath"`
	Status    Status `json:"status"`
	Binary    bool   `json:"binary,omitempty"`
	Redacted  bool   `json:"redacted,omitempty"`
	Additions int    `json:"additions"`
	Deletions int    `json:"deletions"`
	Hunks     []Hunk `json:"hunks,omitempty"`
}

// Hunk is one @@ block.
type Hunk struct {
	Header   string `json:"header"`
	OldStart int    `json:"oldStart"`
	NewStart int    `json:"newStart"`
	Lines    []Line `json:"lines"`
}

// Line is one diff line without its +/- prefix. Old or New is zero when the
// line does not exist on that side.
type Line struct {
	Type      LineType `json:"type"`
	Content   string   `json:"content"`
	Old       int      `json:"old,omitempty"`
	New       int      `json:"new,omitempty"`
	NoNewline bool     `json:"noNewline,omitempty"`
}

// Name is the path shown for the file: the new path unless it was deleted.
func (f File) Name() string {
	if f.Status == StatusDeleted || f.NewPath == "" {
		return f.OldPath
	}
	return f.NewPath
}

// DisplayName renders renames as "old → new".
func (f File) DisplayName() string {
	if f.Status == StatusRenamed && f.OldPath != f.NewPath {
		return f.OldPath + " → " + f.NewPath
	}
	return f.Name()
}

// Parse reads raw diff text. Text before the first "diff --git" header is
// ignored.
func Parse(raw string) []File {
	var files []File
	var file *File
	var hunk *Hunk
	oldLine, newLine := 0, 0

	flushHunk := func() {
		if file != nil && hunk != nil {
			file.Hunks = append(file.Hunks, *hunk)
		}
		hunk = nil
	}
	flushFile := func() {
		flushHunk()
		if file != nil {
			files = append(files, *file)
		}
		file = nil
	}

	lines := strings.Split(strings.TrimSuffix(raw, "\n"), "\n")
	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "diff --git "):
			flushFile()
			oldPath, newPath := parseGitHeader(line)
			file = &File{OldPath: oldPath, NewPath: newPath, Status: StatusChanged}
		case file == nil:
			continue
		case hunk == nil && parseExtendedHeader(file, line):
		case strings.HasPrefix(line, "@@"):
			flushHunk()
			h := parseHunkHeader(line)
			hunk = &h
			oldLine, newLine = h.OldStart, h.NewStart
		case hunk == nil:
			continue
		case strings.HasPrefix(line, `\`):
			if n := len(hunk.Lines); n > 0 {
				hunk.Lines[n-1].NoNewline = true
			}
		case strings.HasPrefix(line, "+"):
			hunk.Lines = append(hunk.Lines, Line{Type: LineAdded, Content: line[1:], New: newLine})
			newLine++
			file.Additions++
		case strings.HasPrefix(line, "-"):
			hunk.Lines = append(hunk.Lines, Line{Type: LineDeleted, Content: line[1:], Old: oldLine})
			oldLine++
			file.Deletions++
		default:
			content := line
			if content != "" {
				content = content[1:]
			}
			hunk.Lines = append(hunk.Lines, Line{Type: LineContext, Content: content, Old: oldLine, New: newLine})
			oldLine++
			newLine++
		}
	}
	flushFile()
	return files
}

// parseExtendedHeader applies a git extended header line to f and reports
// whether line was one.
func parseExtendedHeader(f *File, line string) bool {
	switch {
	case strings.HasPrefix(line, "new file mode"):
		f.Status = StatusAdded
	case strings.HasPrefix(line, "deleted file mode"):
		f.Status = StatusDeleted
	case strings.HasPrefix(line, "rename from "):
		f.Status = StatusRenamed
		f.OldPath = strings.TrimPrefix(line, "rename from ")
	case strings.HasPrefix(line, "rename to "):
		f.Status = StatusRenamed
		f.NewPath = strings.TrimPrefix(line, "rename to ")
	case strings.HasPrefix(line, "Binary files "), line == "GIT binary patch":
		f.Binary = true
	case strings.HasPrefix(line, "--- "):
		if p := trimSide(line[4:], "a/"); p != "" {
			f.OldPath = p
		}
	case strings.HasPrefix(line, "+++ "):
		if p := trimSide(line[4:], "b/"); p != "" {
			f.NewPath = p
		}
	case strings.HasPrefix(line, "index "),
		strings.HasPrefix(line, "old mode"),
		strings.HasPrefix(line, "new mode"),
		strings.HasPrefix(line, "similarity index"),
		strings.HasPrefix(line, "dissimilarity index"),
		strings.HasPrefix(line, "copy from "),
		strings.HasPrefix(line, "copy to "):
	default:
		return false
	}
	return true
}

func trimSide(p, prefix string) string {
	p = strings.TrimSuffix(p, "\t")
	if p == "/dev/null" {
		return ""
	}
	return strings.TrimPrefix(p, prefix)
}

// parseGitHeader splits "diff --git a/x b/y". Paths containing " b/" are
// ambiguous here; the ---/+++ and rename headers correct them.
func parseGitHeader(line string) (string, string) {
	rest := strings.TrimPrefix(line, "diff --git ")
	idx := strings.LastIndex(rest, " b/")
	if idx < 0 {
		return rest, rest
	}
	return strings.TrimPrefix(rest[:idx], "a/"), rest[idx+len(" b/"):]
}

// parseHunkHeader reads "@@ -a,b +c,d @@ section".
func parseHunkHeader(line string) Hunk {
	h := Hunk{Header: line}
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return h
	}
	h.OldStart = rangeStart(fields[1], "-")
	h.NewStart = rangeStart(fields[2], "+")
	return h
}

func rangeStart(field, sign string) int {
	field = strings.TrimPrefix(field, sign)
	if i := strings.IndexByte(field, ','); i >= 0 {
		field = field[:i]
	}
	n, err := strconv.Atoi(field)
	if err != nil {
		return 0
	}
	return n
}

// Stats sums additions and deletions over files.
func Stats(files []File) (additions, deletions int) {
	for _, f := range files {
		additions += f.Additions
		deletions += f.Deletions
	}
	return additions, deletions
}
