package revrange

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Selection picks the revisions to compare. The only implementations are
// ByCommits and ByDates.
type Selection interface {
	isSelection()
}

// ByCommits compares two explicit commits.
type ByCommits struct {
	From string
	To   string
}

// ByDates compares the reflog positions of HEAD at two dates. An empty To
// means today.
type ByDates struct {
	From string
	To   string
}

func (ByCommits) isSelection() {}
func (ByDates) isSelection()   {}

// DiffConfig is a validated show-diff block.
type DiffConfig struct {
	// Selection is nil when the block names neither commits nor dates.
	Selection Selection
	// Exclude is nil when the block has no exclude key; a non-nil empty
	// slice excludes nothing.
	Exclude []string
	// Path overrides the repository root supplied by the caller.
	Path string
}

type rawBounds struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

type rawConfig struct {
	Commits *rawBounds `yaml:"commits"`
	Dates   *rawBounds `yaml:"dates"`
	Exclude yaml.Node  `yaml:"exclude"`
	Path    string     `yaml:"path"`
}

// Parse validates a block body. An empty body is a valid configuration that
// selects every default.
func Parse(source string) (*DiffConfig, error) {
	if strings.TrimSpace(source) == "" {
		return &DiffConfig{}, nil
	}

	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(source), &doc); err != nil {
		return nil, &ConfigError{Reason: fmt.Sprintf("invalid YAML: %v", err)}
	}
	if len(doc.Content) == 0 {
		return &DiffConfig{}, nil
	}
	root := doc.Content[0]
	if root.Kind == yaml.ScalarNode && root.Tag == "!!null" {
		return &DiffConfig{}, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, &ConfigError{Reason: "expected a mapping of keys to values"}
	}

	var raw rawConfig
	dec := yaml.NewDecoder(bytes.NewReader([]byte(source)))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, &ConfigError{Reason: fmt.Sprintf("invalid configuration: %v", err)}
	}

	cfg := &DiffConfig{Path: raw.Path}

	switch {
	case raw.Commits != nil:
		if raw.Commits.From == "" {
			return nil, missingField("commits.from")
		}
		if raw.Commits.To == "" {
			return nil, missingField("commits.to")
		}
		cfg.Selection = ByCommits{From: raw.Commits.From, To: raw.Commits.To}
	case raw.Dates != nil:
		if raw.Dates.From == "" {
			return nil, missingField("dates.from")
		}
		cfg.Selection = ByDates{From: raw.Dates.From, To: raw.Dates.To}
	}

	exclude, err := decodeExclude(&raw.Exclude)
	if err != nil {
		return nil, err
	}
	cfg.Exclude = exclude
	return cfg, nil
}

// decodeExclude accepts a string or a sequence of strings. A missing or null
// value returns nil so the default applies.
func decodeExclude(n *yaml.Node) ([]string, error) {
	switch n.Kind {
	case 0:
		return nil, nil
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return nil, nil
		}
		if n.Value == "" {
			return []string{}, nil
		}
		return []string{n.Value}, nil
	case yaml.SequenceNode:
		paths := make([]string, 0, len(n.Content))
		for i, item := range n.Content {
			if item.Kind != yaml.ScalarNode || item.Tag == "!!null" {
				return nil, &ConfigError{
					Field:  fmt.Sprintf("exclude[%d]", i),
					Reason: "expected a path string",
				}
			}
			if item.Value == "" {
				return nil, &ConfigError{
					Field:  fmt.Sprintf("exclude[%d]", i),
					Reason: "empty path",
				}
			}
			paths = append(paths, item.Value)
		}
		return paths, nil
	default:
		return nil, &ConfigError{Field: "exclude", Reason: "expected a path or a list of paths"}
	}
}
