package revrange

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// BlockLanguage is the fenced code block info string that marks a diff block.
const BlockLanguage = "show-diff"

type dailyBlock struct {
	Dates struct {
		From string `yaml:"from"`
		To   string `yaml:"to"`
	} `yaml:"dates"`
}

// DailyBlock returns a ready-to-insert fenced block that diffs yesterday
// against today.
func DailyBlock(c Clock) (string, error) {
	if c == nil {
		c = SystemClock
	}
	var body dailyBlock
	body.Dates.From = yesterday(c)
	body.Dates.To = today(c)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(body); err != nil {
		return "", fmt.Errorf("encoding daily block: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("encoding daily block: %w", err)
	}
	return "```" + BlockLanguage + "\n" + strings.TrimRight(buf.String(), "\n") + "\n```", nil
}
