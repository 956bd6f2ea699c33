package revrange

import (
	"fmt"
	"strings"
)

// DefaultExclude is the vault's own settings folder. It is left out of every
// diff unless a block names its own exclusions.
const DefaultExclude = ".obsidian"

// Compiler turns a DiffConfig into git diff arguments. The zero value uses
// the system clock and DefaultExclude.
type Compiler struct {
	Clock          Clock
	DefaultExclude string
}

func (c Compiler) clock() Clock {
	if c.Clock == nil {
		return SystemClock
	}
	return c.Clock
}

func (c Compiler) defaultExclude() string {
	if c.DefaultExclude == "" {
		return DefaultExclude
	}
	return c.DefaultExclude
}

// RevisionRange returns the revision range expression for cfg. A nil cfg, or
// one without a selection, yields HEAD@{yesterday}..HEAD@{today}.
func (c Compiler) RevisionRange(cfg *DiffConfig) (string, error) {
	if cfg == nil || cfg.Selection == nil {
		return c.defaultDateRange(), nil
	}

	switch sel := cfg.Selection.(type) {
	case ByCommits:
		if sel.From == "" {
			return "", missingField("commits.from")
		}
		if sel.To == "" {
			return "", missingField("commits.to")
		}
		return commitRange(sel.From, sel.To), nil
	case ByDates:
		if sel.From == "" {
			return "", missingField("dates.from")
		}
		to := sel.To
		if to == "" {
			to = today(c.clock())
		}
		return dateRange(sel.From, to), nil
	default:
		return "", &ConfigError{Reason: fmt.Sprintf("unsupported revision selection %T", sel)}
	}
}

// ExcludedPaths returns the exclusion pathspecs for cfg joined by spaces.
func (c Compiler) ExcludedPaths(cfg *DiffConfig) string {
	return strings.Join(c.Pathspecs(cfg), " ")
}

// Pathspecs returns one exclusion pathspec per excluded path, in the order
// the block lists them. Paths are passed through without glob escaping.
func (c Compiler) Pathspecs(cfg *DiffConfig) []string {
	paths := []string{c.defaultExclude()}
	if cfg != nil && cfg.Exclude != nil {
		paths = cfg.Exclude
	}
	specs := make([]string, 0, len(paths))
	for _, p := range paths {
		specs = append(specs, excludePath(p))
	}
	return specs
}

func (c Compiler) defaultDateRange() string {
	clock := c.clock()
	return dateRange(yesterday(clock), today(clock))
}

// RevisionRange compiles cfg against the system clock.
func RevisionRange(cfg *DiffConfig) (string, error) {
	return Compiler{}.RevisionRange(cfg)
}

// ExcludedPaths compiles the exclusion expression for cfg with the default
// exclusion.
func ExcludedPaths(cfg *DiffConfig) string {
	return Compiler{}.ExcludedPaths(cfg)
}

func dateRange(from, to string) string {
	return fmt.Sprintf("HEAD@{%s}..HEAD@{%s}", from, to)
}

func commitRange(from, to string) string {
	return from + ".." + to
}

func excludePath(p string) string {
	return ":(exclude)" + p
}
