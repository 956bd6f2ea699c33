package gitctx

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// DiffOptions controls how diffs are gathered.
type DiffOptions struct {
	ContextLines int
	MaxDiffBytes int
}

// DiffResult holds the collected diff and metadata.
type DiffResult struct {
	Diff      string   `json:"-"`
	Files     []string `json:"files"`
	Range     string   `json:"range"`
	Pathspecs []string `json:"pathspecs,omitempty"`
	Truncated bool     `json:"truncated,omitempty"`
}

// RepoMeta contains git repository metadata.
type RepoMeta struct {
	Root   string `json:"root"`
	Head   string `json:"head,omitempty"`
	Branch string `json:"branch,omitempty"`
}

// Differ produces diffs for a revision range.
type Differ interface {
	Diff(ctx context.Context, revRange string, pathspecs []string, opts DiffOptions) (DiffResult, error)
}

// Repo is a git working tree on disk.
type Repo struct {
	path   string
	runner Runner
}

// NewRepo returns a Repo rooted at path. A zero timeout uses DefaultTimeout.
func NewRepo(path string, timeout time.Duration) *Repo {
	return &Repo{path: path, runner: Runner{Timeout: timeout}}
}

// Path returns the directory git runs in.
func (r *Repo) Path() string { return r.path }

// Run executes an arbitrary git subcommand in the repository.
func (r *Repo) Run(ctx context.Context, args ...string) (string, error) {
	return r.runner.Git(ctx, r.path, args...)
}

// Meta collects repository metadata from git.
func (r *Repo) Meta(ctx context.Context) (RepoMeta, error) {
	root, err := r.Run(ctx, "rev-parse", "--show-toplevel")
	if err != nil {
		return RepoMeta{}, fmt.Errorf("not a git repository: %w", err)
	}
	head, err := r.Run(ctx, "rev-parse", "HEAD")
	if err != nil {
		head = "" // new repo with no commits
	}
	branch, err := r.Run(ctx, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		branch = ""
	}
	return RepoMeta{
		Root:   strings.TrimSpace(root),
		Head:   strings.TrimSpace(head),
		Branch: strings.TrimSpace(branch),
	}, nil
}

// GitDir returns the absolute path of the repository's .git directory.
func (r *Repo) GitDir(ctx context.Context) (string, error) {
	out, err := r.Run(ctx, "rev-parse", "--absolute-git-dir")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// Diff returns the diff for revRange restricted by pathspecs.
func (r *Repo) Diff(ctx context.Context, revRange string, pathspecs []string, opts DiffOptions) (DiffResult, error) {
	diff, err := r.Run(ctx, buildDiffArgs(revRange, pathspecs, opts)...)
	if err != nil {
		return DiffResult{}, err
	}
	return buildResult(diff, revRange, pathspecs, opts), nil
}

// Toplevel returns the root of the working tree containing dir.
func Toplevel(ctx context.Context, dir string, timeout time.Duration) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	out, err := Runner{Timeout: timeout}.Git(ctx, abs, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func buildDiffArgs(revRange string, pathspecs []string, opts DiffOptions) []string {
	args := []string{"diff", "--no-color", "--no-ext-diff", "--find-renames"}
	if opts.ContextLines > 0 {
		args = append(args, fmt.Sprintf("-U%d", opts.ContextLines))
	}
	if revRange != "" {
		args = append(args, revRange)
	}
	args = append(args, "--")
	args = append(args, pathspecs...)
	return args
}

func buildResult(diff, revRange string, pathspecs []string, opts DiffOptions) DiffResult {
	truncated := false
	if opts.MaxDiffBytes > 0 && len(diff) > opts.MaxDiffBytes {
		diff = truncateSections(diff, opts.MaxDiffBytes)
		truncated = true
	}
	return DiffResult{
		Diff:      diff,
		Files:     extractFiles(diff),
		Range:     revRange,
		Pathspecs: pathspecs,
		Truncated: truncated,
	}
}

// truncateSections keeps whole file sections while they fit in limit. The
// first section is always kept so a single large file still renders.
func truncateSections(diff string, limit int) string {
	var b strings.Builder
	for i, section := range splitDiffSections(diff) {
		if i > 0 && b.Len()+len(section) > limit {
			break
		}
		b.WriteString(section)
	}
	return b.String()
}

func extractFiles(diff string) []string {
	var files []string
	seen := make(map[string]bool)
	for _, line := range strings.Split(diff, "\n") {
		if !strings.HasPrefix(line, "diff --git ") {
			continue
		}
		f := pathFromHeader(line)
		if f != "" && !seen[f] {
			seen[f] = true
			files = append(files, f)
		}
	}
	return files
}

// pathFromHeader reads the b/ side of a "diff --git a/x b/x" line.
func pathFromHeader(line string) string {
	idx := strings.LastIndex(line, " b/")
	if idx < 0 {
		return ""
	}
	return line[idx+len(" b/"):]
}

func splitDiffSections(diff string) []string {
	var sections []string
	lines := strings.SplitAfter(diff, "\n")
	var current strings.Builder
	for _, line := range lines {
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "diff --git") && current.Len() > 0 {
			sections = append(sections, current.String())
			current.Reset()
		}
		current.WriteString(line)
	}
	if current.Len() > 0 {
		sections = append(sections, current.String())
	}
	return sections
}
