package redact

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/dshills/showdiff/internal/diffparse"
)

const placeholder = "[REDACTED]"

var secretPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(api[_-]?key|apikey|api[_-]?secret)\s*[:=]\s*["']?([A-Za-z0-9/+=_-]{20,})["']?`),
	regexp.MustCompile(`AKIA[0-9A-Z]{16}`),
	regexp.MustCompile(`(?i)(aws[_-]?secret[_-]?access[_-]?key)\s*[:=]\s*["']?([A-Za-z0-9/+=]{40})["']?`),
	regexp.MustCompile(`(?i)(secret|token|password|passwd|credential)\s*[:=]\s*["']([^"']{8,})["']`),
	regexp.MustCompile(`(?i)Bearer\s+[A-Za-z0-9._-]{20,}`),
	regexp.MustCompile(`eyJ[A-Za-z0-9_-]{10,}\.eyJ[A-Za-z0-9_-]{10,}\.[A-Za-z0-9_-]{10,}`),
	regexp.MustCompile(`-----BEGIN\s+([A-Z]+\s+)?PRIVATE KEY-----`),
	regexp.MustCompile(`gh[pousr]_[A-Za-z0-9_]{36,}`),
	regexp.MustCompile(`xox[bporas]-[A-Za-z0-9-]{10,}`),
	regexp.MustCompile(`sk-ant-[A-Za-z0-9_-]{20,}`),
	regexp.MustCompile(`sk-[A-Za-z0-9]{20,}`),
	regexp.MustCompile(`(?i)(key|secret|token)\s*[:=]\s*["']?[0-9a-f]{32,}["']?`),
}

// Policy selects what to scrub.
type Policy struct {
	Secrets bool
	Paths   []string
}

// Enabled reports whether the policy changes anything.
func (p Policy) Enabled() bool {
	return p.Secrets || len(p.Paths) > 0
}

// Secrets replaces detected secrets in text with [REDACTED].
func Secrets(text string) string {
	result := text
	for _, pat := range secretPatterns {
		result = pat.ReplaceAllString(result, placeholder)
	}
	return result
}

// ShouldRedactPath reports whether path matches any of patterns. A leading
// "**/" also matches the base name at any depth.
func ShouldRedactPath(path string, patterns []string) bool {
	for _, pattern := range patterns {
		if matched, err := filepath.Match(pattern, path); err == nil && matched {
			return true
		}
		clean := strings.TrimPrefix(pattern, "**/")
		if clean == pattern {
			continue
		}
		if matched, err := filepath.Match(clean, filepath.Base(path)); err == nil && matched {
			return true
		}
		if matched, err := filepath.Match(clean, path); err == nil && matched {
			return true
		}
	}
	return false
}

// Files applies p to files and returns the scrubbed copies along with the
// number of files or lines that changed.
func Files(files []diffparse.File, p Policy) ([]diffparse.File, int) {
	if !p.Enabled() {
		return files, 0
	}
	out := make([]diffparse.File, len(files))
	changed := 0
	for i, f := range files {
		if ShouldRedactPath(f.Name(), p.Paths) || ShouldRedactPath(f.OldPath, p.Paths) {
			f.Hunks = nil
			f.Redacted = true
			out[i] = f
			changed++
			continue
		}
		if p.Secrets {
			hunks := make([]diffparse.Hunk, len(f.Hunks))
			for j, h := range f.Hunks {
				lines := make([]diffparse.Line, len(h.Lines))
				for k, l := range h.Lines {
					if scrubbed := Secrets(l.Content); scrubbed != l.Content {
						l.Content = scrubbed
						changed++
					}
					lines[k] = l
				}
				h.Lines = lines
				hunks[j] = h
			}
			f.Hunks = hunks
		}
		out[i] = f
	}
	return out, changed
}
