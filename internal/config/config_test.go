package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// isolate points the config directory at a temp dir and blanks every
// SHOWDIFF_ variable for the duration of the test.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	for _, env := range envBindings {
		t.Setenv(env, "")
	}
	t.Setenv("SHOWDIFF_REDACT_PATHS", "")
	return dir
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.DefaultExclude != ".obsidian" {
		t.Errorf("Default defaultExclude = %q, want %q", cfg.DefaultExclude, ".obsidian")
	}
	if cfg.Format != "html" {
		t.Errorf("Default format = %q, want %q", cfg.Format, "html")
	}
	if cfg.ContextLines != 3 {
		t.Errorf("Default contextLines = %d, want 3", cfg.ContextLines)
	}
	if cfg.DrawFileList {
		t.Error("Default drawFileList should be false")
	}
	if !cfg.Highlight {
		t.Error("Default highlight should be true")
	}
	if !cfg.Privacy.RedactSecrets {
		t.Error("Default redactSecrets should be true")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"markdown format", func(c *Config) { c.Format = "markdown" }, ""},
		{"page format", func(c *Config) { c.Format = "page" }, ""},
		{"bad format", func(c *Config) { c.Format = "pdf" }, "format must be one of"},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, "logLevel must be one of"},
		{"negative context", func(c *Config) { c.ContextLines = -1 }, "contextLines"},
		{"negative max bytes", func(c *Config) { c.MaxDiffBytes = -1 }, "maxDiffBytes"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestSetField(t *testing.T) {
	tests := []struct {
		key     string
		value   string
		check   func(Config) bool
		wantErr bool
	}{
		{KeyVault, "/notes", func(c Config) bool { return c.Vault == "/notes" }, false},
		{KeyFormat, "json", func(c Config) bool { return c.Format == "json" }, false},
		{KeyContextLines, "7", func(c Config) bool { return c.ContextLines == 7 }, false},
		{KeyContextLines, "abc", nil, true},
		{KeyDrawFileList, "true", func(c Config) bool { return c.DrawFileList }, false},
		{KeyHighlight, "nope", nil, true},
		{KeyCacheEnabled, "false", func(c Config) bool { return !c.Cache.Enabled }, false},
		{KeyCacheTTLSeconds, "60", func(c Config) bool { return c.Cache.TTLSeconds == 60 }, false},
		{KeyRedactPaths, "a/*, ,b/**", func(c Config) bool {
			return len(c.Privacy.RedactPaths) == 2 && c.Privacy.RedactPaths[1] == "b/**"
		}, false},
		{"unknown", "x", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			cfg := Default()
			err := SetField(&cfg, tt.key, tt.value)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.check(cfg) {
				t.Errorf("SetField(%q, %q) did not apply", tt.key, tt.value)
			}
		})
	}
}

func TestConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-test")
	dir, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir error: %v", err)
	}
	if dir != filepath.Join("/tmp/xdg-test", "showdiff") {
		t.Errorf("ConfigDir = %q, want %q", dir, "/tmp/xdg-test/showdiff")
	}
}

func TestLoadFile_Missing(t *testing.T) {
	isolate(t)
	cfg, err := LoadFile()
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	if cfg.Format != Default().Format {
		t.Errorf("missing file should yield defaults, got format %q", cfg.Format)
	}
}

func TestSaveAndLoadFile(t *testing.T) {
	isolate(t)

	cfg := Default()
	cfg.Vault = "/home/me/notes"
	cfg.Format = "page"
	cfg.ContextLines = 1
	if err := Save(cfg); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	path, _ := ConfigPath()
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not created: %v", err)
	}

	loaded, err := LoadFile()
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	if loaded.Vault != "/home/me/notes" || loaded.Format != "page" || loaded.ContextLines != 1 {
		t.Errorf("round trip mismatch: %+v", loaded)
	}
}

func TestLoadFile_PartialKeepsDefaults(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "showdiff", "config.yaml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("style: monokai\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile()
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	if cfg.Style != "monokai" {
		t.Errorf("Style = %q, want monokai", cfg.Style)
	}
	if cfg.DefaultExclude != ".obsidian" {
		t.Errorf("DefaultExclude = %q, want default", cfg.DefaultExclude)
	}
}

func TestLoad_Precedence(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "showdiff", "config.yaml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	file := "vault: /from/file\nformat: page\ncontextLines: 9\ncache:\n  ttlSeconds: 30\n"
	if err := os.WriteFile(path, []byte(file), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("SHOWDIFF_FORMAT", "json")
	t.Setenv("SHOWDIFF_CONTEXT_LINES", "5")
	t.Setenv("SHOWDIFF_REDACT_PATHS", "secrets/**,*.key")

	cfg, err := Load(map[string]string{KeyContextLines: "2", KeyStyle: ""})
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Vault != "/from/file" {
		t.Errorf("Vault = %q, want file value", cfg.Vault)
	}
	if cfg.Format != "json" {
		t.Errorf("Format = %q, want env value", cfg.Format)
	}
	if cfg.ContextLines != 2 {
		t.Errorf("ContextLines = %d, want override value", cfg.ContextLines)
	}
	if cfg.Cache.TTLSeconds != 30 {
		t.Errorf("Cache.TTLSeconds = %d, want 30", cfg.Cache.TTLSeconds)
	}
	if !cfg.Cache.Enabled {
		t.Error("Cache.Enabled should keep its default")
	}
	if cfg.Style != "github" {
		t.Errorf("empty override should be ignored, Style = %q", cfg.Style)
	}
	if len(cfg.Privacy.RedactPaths) != 2 || cfg.Privacy.RedactPaths[0] != "secrets/**" {
		t.Errorf("RedactPaths = %v", cfg.Privacy.RedactPaths)
	}
}

func TestLoad_BadOverride(t *testing.T) {
	isolate(t)
	if _, err := Load(map[string]string{"bogus": "1"}); err == nil {
		t.Fatal("expected error for unknown override key")
	}
}

func TestGetField_EveryKey(t *testing.T) {
	cfg := Default()
	cfg.Vault = "/notes"
	cfg.Cache.Dir = "/tmp/showdiff"
	cfg.Privacy.RedactPaths = []string{"**/.env", "secrets/*"}

	for _, key := range Keys() {
		t.Run(key, func(t *testing.T) {
			value, err := GetField(cfg, key)
			if err != nil {
				t.Fatalf("GetField(%q) error: %v", key, err)
			}
			if EnvVar(key) == "" {
				t.Errorf("EnvVar(%q) is empty", key)
			}
			copied := Default()
			if err := SetField(&copied, key, value); err != nil {
				t.Fatalf("SetField(%q, %q) error: %v", key, value, err)
			}
			if got, _ := GetField(copied, key); got != value {
				t.Errorf("after SetField, %s = %q, want %q", key, got, value)
			}
		})
	}
}

func TestGetField_UnknownKey(t *testing.T) {
	if _, err := GetField(Default(), "nope"); err == nil {
		t.Error("expected error for unknown key")
	}
}
