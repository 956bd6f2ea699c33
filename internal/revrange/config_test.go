package revrange

import (
	"errors"
	"testing"
)

func TestParse_Empty(t *testing.T) {
	for _, src := range []string{"", "   \n", "# just a comment\n", "~"} {
		cfg, err := Parse(src)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", src, err)
		}
		if cfg.Selection != nil || cfg.Exclude != nil || cfg.Path != "" {
			t.Errorf("Parse(%q) = %+v, want zero config", src, cfg)
		}
	}
}

func TestParse_Commits(t *testing.T) {
	cfg, err := Parse("commits:\n  from: a1b2c3\n  to: HEAD\n")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	sel, ok := cfg.Selection.(ByCommits)
	if !ok {
		t.Fatalf("Selection = %T, want ByCommits", cfg.Selection)
	}
	if sel.From != "a1b2c3" || sel.To != "HEAD" {
		t.Errorf("Selection = %+v", sel)
	}
}

func TestParse_NumericCommitStaysString(t *testing.T) {
	cfg, err := Parse("commits:\n  from: 1234567\n  to: 7654321\n")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if sel := cfg.Selection.(ByCommits); sel.From != "1234567" || sel.To != "7654321" {
		t.Errorf("Selection = %+v", sel)
	}
}

func TestParse_DatesKeepLiteralText(t *testing.T) {
	cfg, err := Parse("dates:\n  from: 2023-01-01\n")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	sel, ok := cfg.Selection.(ByDates)
	if !ok {
		t.Fatalf("Selection = %T, want ByDates", cfg.Selection)
	}
	if sel.From != "2023-01-01" || sel.To != "" {
		t.Errorf("Selection = %+v", sel)
	}
}

func TestParse_CommitsWinOverDates(t *testing.T) {
	cfg, err := Parse("dates:\n  from: 2023-01-01\ncommits:\n  from: a\n  to: b\n")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if _, ok := cfg.Selection.(ByCommits); !ok {
		t.Fatalf("Selection = %T, want ByCommits", cfg.Selection)
	}
	got, err := testCompiler().RevisionRange(cfg)
	if err != nil || got != "a..b" {
		t.Errorf("RevisionRange = %q, %v", got, err)
	}
}

func TestParse_MissingRequired(t *testing.T) {
	tests := []struct {
		src   string
		field string
	}{
		{"commits:\n  from: \"\"\n  to: b\n", "commits.from"},
		{"commits:\n  to: b\n", "commits.from"},
		{"commits:\n  from: a\n", "commits.to"},
		{"dates:\n  to: 2023-01-05\n", "dates.from"},
		{"dates: {}\n", "dates.from"},
	}
	for _, tt := range tests {
		_, err := Parse(tt.src)
		var cfgErr *ConfigError
		if !errors.As(err, &cfgErr) {
			t.Fatalf("Parse(%q) error = %v, want ConfigError", tt.src, err)
		}
		if cfgErr.Field != tt.field {
			t.Errorf("Parse(%q) field = %q, want %q", tt.src, cfgErr.Field, tt.field)
		}
	}
}

func TestParse_Exclude(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{"absent", "dates:\n  from: x\n", nil},
		{"null", "exclude: ~\n", nil},
		{"string", "exclude: .trash\n", []string{".trash"}},
		{"list", "exclude:\n  - a\n  - b\n", []string{"a", "b"}},
		{"empty string", "exclude: \"\"\n", []string{}},
		{"empty list", "exclude: []\n", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse(tt.src)
			if err != nil {
				t.Fatalf("Parse error: %v", err)
			}
			if (cfg.Exclude == nil) != (tt.want == nil) {
				t.Fatalf("Exclude = %#v, want %#v", cfg.Exclude, tt.want)
			}
			if len(cfg.Exclude) != len(tt.want) {
				t.Fatalf("Exclude = %v, want %v", cfg.Exclude, tt.want)
			}
			for i := range tt.want {
				if cfg.Exclude[i] != tt.want[i] {
					t.Errorf("Exclude[%d] = %q, want %q", i, cfg.Exclude[i], tt.want[i])
				}
			}
		})
	}
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"not a mapping", "- a\n- b\n"},
		{"scalar document", "hello\n"},
		{"unknown key", "since: yesterday\n"},
		{"exclude mapping", "exclude:\n  a: b\n"},
		{"exclude nested list", "exclude:\n  - [a]\n"},
		{"exclude empty entry", "exclude:\n  - a\n  - \"\"\n"},
		{"commits not a mapping", "commits: a..b\n"},
		{"broken yaml", "dates: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.src)
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Errorf("Parse(%q) error = %v, want ConfigError", tt.src, err)
			}
		})
	}
}

func TestParse_Path(t *testing.T) {
	cfg, err := Parse("path: ../other\n")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if cfg.Path != "../other" {
		t.Errorf("Path = %q", cfg.Path)
	}
}
