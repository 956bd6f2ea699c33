package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/dshills/showdiff/internal/diffblock"
	"github.com/dshills/showdiff/internal/diffparse"
)

func TestPageWriter(t *testing.T) {
	var buf bytes.Buffer
	w := &PageWriter{Style: "github"}
	if err := w.Write(&buf, sampleResult()); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "<!DOCTYPE html>") {
		t.Error("missing doctype")
	}
	if !strings.Contains(out, `<div class="d2h-wrapper"></div>`) {
		t.Error("fragment not embedded unescaped")
	}
	if !strings.Contains(out, "<title>HEAD@{2024-02-29}..HEAD@{2024-03-01}</title>") {
		t.Error("title should default to the range")
	}
}

func TestJSONWriter(t *testing.T) {
	var buf bytes.Buffer
	w := &JSONWriter{Version: "1.0"}
	if err := w.Write(&buf, sampleResult()); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	var parsed map[string]any
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if parsed["tool"] != "showdiff" || parsed["version"] != "1.0" {
		t.Errorf("tool/version = %v/%v", parsed["tool"], parsed["version"])
	}
	if parsed["range"] != "HEAD@{2024-02-29}..HEAD@{2024-03-01}" {
		t.Errorf("range = %v", parsed["range"])
	}
	files, ok := parsed["files"].([]any)
	if !ok || len(files) != 3 {
		t.Fatalf("files = %v", parsed["files"])
	}
	if _, ok := parsed["HTML"]; ok {
		t.Error("HTML should not be serialized")
	}
}

func TestTextWriter(t *testing.T) {
	var buf bytes.Buffer
	if err := (&TextWriter{}).Write(&buf, sampleResult()); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"show-diff HEAD@{2024-02-29}..HEAD@{2024-03-01}",
		"Repository: /vault",
		"Exclude: :(exclude).obsidian",
		"Files: 3 changed (+2 -1)",
		"[M] daily.md",
		"[R] a.md → b.md",
		"(redacted)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestTextWriter_NoChanges(t *testing.T) {
	var buf bytes.Buffer
	res := &diffblock.Result{Range: "a..b", Repo: "/r", HTML: diffblock.NoChangesHTML}
	if err := (&TextWriter{}).Write(&buf, res); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if !strings.Contains(buf.String(), "No changes") {
		t.Errorf("output = %q", buf.String())
	}
	if strings.Contains(buf.String(), "Files:") {
		t.Error("empty result should not list files")
	}
}

func TestMarkdownWriter(t *testing.T) {
	var buf bytes.Buffer
	if err := (&MarkdownWriter{}).Write(&buf, sampleResult()); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"| changed | `daily.md` | 1 | 1 |",
		"| | **Total** | **2** | **1** |",
		"<summary>:blue_circle: a.md → b.md</summary>",
		"```diff\n@@ -1 +1 @@\n-old\n+new\n```",
		"File content redacted.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFenceFor(t *testing.T) {
	f := diffparse.File{Hunks: []diffparse.Hunk{{Lines: []diffparse.Line{
		{Type: diffparse.LineContext, Content: "````go"},
	}}}}
	if got := fenceFor(f); got != "`````" {
		t.Errorf("fenceFor = %q, want five backticks", got)
	}
	if got := fenceFor(diffparse.File{}); got != "```" {
		t.Errorf("fenceFor(empty) = %q", got)
	}
}
