package diffparse

import "testing"

const sampleDiff = `diff --git a/notes/today.md b/notes/today.md
index 3b18e51..a9c1f0e 100644
--- a/notes/today.md
+++ b/notes/today.md
@@ -1,3 +1,4 @@ # Today
 first
-second
+second, edited
+third
 last
\ No newline at end of file
diff --git a/new.md b/new.md
new file mode 100644
index 0000000..e69de29
--- /dev/null
+++ b/new.md
@@ -0,0 +1,2 @@
+hello
+world
diff --git a/old.md b/old.md
deleted file mode 100644
index e69de29..0000000
--- a/old.md
+++ /dev/null
@@ -1 +0,0 @@
-bye
diff --git a/drafts/a.md b/archive/a.md
similarity index 90%
rename from drafts/a.md
rename to archive/a.md
index 1111111..2222222 100644
--- a/drafts/a.md
+++ b/archive/a.md
@@ -2 +2 @@
-x
+y
diff --git a/img.png b/img.png
index 1111111..2222222 100644
Binary files a/img.png and b/img.png differ
`

func TestParse_Statuses(t *testing.T) {
	files := Parse(sampleDiff)
	if len(files) != 5 {
		t.Fatalf("got %d files, want 5", len(files))
	}
	tests := []struct {
		status Status
		name   string
	}{
		{StatusChanged, "notes/today.md"},
		{StatusAdded, "new.md"},
		{StatusDeleted, "old.md"},
		{StatusRenamed, "archive/a.md"},
		{StatusChanged, "img.png"},
	}
	for i, tt := range tests {
		if files[i].Status != tt.status {
			t.Errorf("files[%d].Status = %q, want %q", i, files[i].Status, tt.status)
		}
		if files[i].Name() != tt.name {
			t.Errorf("files[%d].Name() = %q, want %q", i, files[i].Name(), tt.name)
		}
	}
	if !files[4].Binary {
		t.Error("img.png should be binary")
	}
	if files[3].OldPath != "drafts/a.md" {
		t.Errorf("rename OldPath = %q", files[3].OldPath)
	}
	if got := files[3].DisplayName(); got != "drafts/a.md → archive/a.md" {
		t.Errorf("DisplayName = %q", got)
	}
	if files[2].NewPath != "old.md" {
		// the /dev/null side does not clobber the header path
		t.Errorf("deleted NewPath = %q", files[2].NewPath)
	}
}

func TestParse_LineNumbers(t *testing.T) {
	f := Parse(sampleDiff)[0]
	if len(f.Hunks) != 1 {
		t.Fatalf("got %d hunks, want 1", len(f.Hunks))
	}
	h := f.Hunks[0]
	if h.OldStart != 1 || h.NewStart != 1 {
		t.Errorf("hunk starts = %d,%d", h.OldStart, h.NewStart)
	}
	want := []Line{
		{Type: LineContext, Content: "first", Old: 1, New: 1},
		{Type: LineDeleted, Content: "second", Old: 2},
		{Type: LineAdded, Content: "second, edited", New: 2},
		{Type: LineAdded, Content: "third", New: 3},
		{Type: LineContext, Content: "last", Old: 3, New: 4, NoNewline: true},
	}
	if len(h.Lines) != len(want) {
		t.Fatalf("got %d lines, want %d", len(h.Lines), len(want))
	}
	for i := range want {
		if h.Lines[i] != want[i] {
			t.Errorf("line %d = %+v, want %+v", i, h.Lines[i], want[i])
		}
	}
	if f.Additions != 2 || f.Deletions != 1 {
		t.Errorf("stats = +%d -%d", f.Additions, f.Deletions)
	}
}

func TestParse_HunkDashLinesAreContent(t *testing.T) {
	diff := "diff --git a/a.md b/a.md\n--- a/a.md\n+++ b/a.md\n@@ -1,2 +1,1 @@\n--- rule\n-+++ plus\n"
	files := Parse(diff)
	if len(files) != 1 {
		t.Fatalf("got %d files", len(files))
	}
	lines := files[0].Hunks[0].Lines
	if len(lines) != 2 || lines[0].Content != "-- rule" || lines[1].Content != "+++ plus" {
		t.Errorf("lines = %+v", lines)
	}
}

func TestParse_Empty(t *testing.T) {
	if files := Parse(""); len(files) != 0 {
		t.Errorf("Parse(\"\") = %v", files)
	}
	if files := Parse("warning: something\n"); len(files) != 0 {
		t.Errorf("preamble should be ignored, got %v", files)
	}
}

func TestStats(t *testing.T) {
	add, del := Stats(Parse(sampleDiff))
	if add != 5 || del != 3 {
		t.Errorf("Stats = +%d -%d, want +5 -3", add, del)
	}
}
