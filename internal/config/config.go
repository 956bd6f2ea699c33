package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config represents the showdiff configuration.
type Config struct {
	Vault             string        `yaml:"vault,omitempty" mapstructure:"vault" json:"vault,omitempty"`
	DefaultExclude    string        `yaml:"defaultExclude" mapstructure:"defaultExclude" json:"defaultExclude"`
	ContextLines      int           `yaml:"contextLines" mapstructure:"contextLines" json:"contextLines"`
	MaxDiffBytes      int           `yaml:"maxDiffBytes" mapstructure:"maxDiffBytes" json:"maxDiffBytes"`
	GitTimeoutSeconds int           `yaml:"gitTimeoutSeconds" mapstructure:"gitTimeoutSeconds" json:"gitTimeoutSeconds"`
	Format            string        `yaml:"format" mapstructure:"format" json:"format"`
	DrawFileList      bool          `yaml:"drawFileList" mapstructure:"drawFileList" json:"drawFileList"`
	Highlight         bool          `yaml:"highlight" mapstructure:"highlight" json:"highlight"`
	Style             string        `yaml:"style" mapstructure:"style" json:"style"`
	LogLevel          string        `yaml:"logLevel" mapstructure:"logLevel" json:"logLevel"`
	Cache             CacheConfig   `yaml:"cache" mapstructure:"cache" json:"cache"`
	Privacy           PrivacyConfig `yaml:"privacy" mapstructure:"privacy" json:"privacy"`

	// Templates replaces renderer icon templates by name. File only.
	Templates map[string]string `yaml:"templates,omitempty" mapstructure:"templates" json:"templates,omitempty"`
}

// CacheConfig controls caching of rendered blocks.
type CacheConfig struct {
	Enabled    bool   `yaml:"enabled" mapstructure:"enabled" json:"enabled"`
	Dir        string `yaml:"dir,omitempty" mapstructure:"dir" json:"dir,omitempty"`
	TTLSeconds int    `yaml:"ttlSeconds" mapstructure:"ttlSeconds" json:"ttlSeconds"`
}

// PrivacyConfig controls redaction of rendered diffs.
type PrivacyConfig struct {
	RedactSecrets bool     `yaml:"redactSecrets" mapstructure:"redactSecrets" json:"redactSecrets"`
	RedactPaths   []string `yaml:"redactPaths,omitempty" mapstructure:"redactPaths" json:"redactPaths,omitempty"`
}

// Formats accepted for block output.
var Formats = []string{"html", "page", "json", "text", "markdown"}

var logLevels = []string{"debug", "info", "warn", "error"}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		DefaultExclude:    ".obsidian",
		ContextLines:      3,
		MaxDiffBytes:      2 << 20,
		GitTimeoutSeconds: 120,
		Format:            "html",
		DrawFileList:      false,
		Highlight:         true,
		Style:             "github",
		LogLevel:          "info",
		Cache: CacheConfig{
			Enabled:    true,
			TTLSeconds: 7 * 24 * 3600,
		},
		Privacy: PrivacyConfig{
			RedactSecrets: true,
			RedactPaths:   []string{"**/.env"},
		},
	}
}

// GitTimeout returns the per-invocation git timeout.
func (c Config) GitTimeout() time.Duration {
	return time.Duration(c.GitTimeoutSeconds) * time.Second
}

// Validate checks enumerated and numeric settings.
func (c Config) Validate() error {
	var errs []error
	if !contains(Formats, c.Format) {
		errs = append(errs, fmt.Errorf("format must be one of %s, got %q", strings.Join(Formats, ", "), c.Format))
	}
	if !contains(logLevels, c.LogLevel) {
		errs = append(errs, fmt.Errorf("logLevel must be one of %s, got %q", strings.Join(logLevels, ", "), c.LogLevel))
	}
	if c.ContextLines < 0 {
		errs = append(errs, fmt.Errorf("contextLines must not be negative"))
	}
	if c.MaxDiffBytes < 0 {
		errs = append(errs, fmt.Errorf("maxDiffBytes must not be negative"))
	}
	return errors.Join(errs...)
}

// ConfigDir returns the platform-appropriate config directory for showdiff.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "showdiff"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "showdiff"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "showdiff"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "showdiff"), nil
	default:
		return filepath.Join(home, ".config", "showdiff"), nil
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// LoadFile returns the defaults overlaid with the config file. A missing file
// yields the defaults.
func LoadFile() (Config, error) {
	cfg := Default()
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Save writes the config to the config file.
func Save(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load builds the effective config by merging: defaults <- file <- env <- overrides.
// The overrides map comes from CLI flags (only non-zero values should be set).
func Load(overrides map[string]string) (Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	// .env never overrides variables already set in the environment
	_ = godotenv.Load()
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return Config{}, fmt.Errorf("binding %s: %w", env, err)
		}
	}
	if paths := os.Getenv(redactPathsEnv); paths != "" {
		v.Set(KeyRedactPaths, splitList(paths))
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := mergeOverrides(&cfg, overrides); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault(KeyVault, d.Vault)
	v.SetDefault(KeyDefaultExclude, d.DefaultExclude)
	v.SetDefault(KeyContextLines, d.ContextLines)
	v.SetDefault(KeyMaxDiffBytes, d.MaxDiffBytes)
	v.SetDefault(KeyGitTimeoutSeconds, d.GitTimeoutSeconds)
	v.SetDefault(KeyFormat, d.Format)
	v.SetDefault(KeyDrawFileList, d.DrawFileList)
	v.SetDefault(KeyHighlight, d.Highlight)
	v.SetDefault(KeyStyle, d.Style)
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyCacheEnabled, d.Cache.Enabled)
	v.SetDefault(KeyCacheDir, d.Cache.Dir)
	v.SetDefault(KeyCacheTTLSeconds, d.Cache.TTLSeconds)
	v.SetDefault(KeyRedactSecrets, d.Privacy.RedactSecrets)
	v.SetDefault(KeyRedactPaths, d.Privacy.RedactPaths)
}

func mergeOverrides(cfg *Config, overrides map[string]string) error {
	for key, value := range overrides {
		if value == "" {
			continue
		}
		if err := SetField(cfg, key, value); err != nil {
			return err
		}
	}
	return nil
}

// SetField sets a single config field by key name. Returns error if key is unknown.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case KeyVault:
		cfg.Vault = value
	case KeyDefaultExclude:
		cfg.DefaultExclude = value
	case KeyFormat:
		cfg.Format = value
	case KeyStyle:
		cfg.Style = value
	case KeyLogLevel:
		cfg.LogLevel = value
	case KeyCacheDir:
		cfg.Cache.Dir = value
	case KeyRedactPaths:
		cfg.Privacy.RedactPaths = splitList(value)
	case KeyContextLines:
		return setInt(&cfg.ContextLines, key, value)
	case KeyMaxDiffBytes:
		return setInt(&cfg.MaxDiffBytes, key, value)
	case KeyGitTimeoutSeconds:
		return setInt(&cfg.GitTimeoutSeconds, key, value)
	case KeyCacheTTLSeconds:
		return setInt(&cfg.Cache.TTLSeconds, key, value)
	case KeyDrawFileList:
		return setBool(&cfg.DrawFileList, key, value)
	case KeyHighlight:
		return setBool(&cfg.Highlight, key, value)
	case KeyCacheEnabled:
		return setBool(&cfg.Cache.Enabled, key, value)
	case KeyRedactSecrets:
		return setBool(&cfg.Privacy.RedactSecrets, key, value)
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}

// GetField returns the value of key in cfg, formatted as SetField accepts it.
func GetField(cfg Config, key string) (string, error) {
	switch key {
	case KeyVault:
		return cfg.Vault, nil
	case KeyDefaultExclude:
		return cfg.DefaultExclude, nil
	case KeyFormat:
		return cfg.Format, nil
	case KeyStyle:
		return cfg.Style, nil
	case KeyLogLevel:
		return cfg.LogLevel, nil
	case KeyCacheDir:
		return cfg.Cache.Dir, nil
	case KeyRedactPaths:
		return strings.Join(cfg.Privacy.RedactPaths, ","), nil
	case KeyContextLines:
		return strconv.Itoa(cfg.ContextLines), nil
	case KeyMaxDiffBytes:
		return strconv.Itoa(cfg.MaxDiffBytes), nil
	case KeyGitTimeoutSeconds:
		return strconv.Itoa(cfg.GitTimeoutSeconds), nil
	case KeyCacheTTLSeconds:
		return strconv.Itoa(cfg.Cache.TTLSeconds), nil
	case KeyDrawFileList:
		return strconv.FormatBool(cfg.DrawFileList), nil
	case KeyHighlight:
		return strconv.FormatBool(cfg.Highlight), nil
	case KeyCacheEnabled:
		return strconv.FormatBool(cfg.Cache.Enabled), nil
	case KeyRedactSecrets:
		return strconv.FormatBool(cfg.Privacy.RedactSecrets), nil
	default:
		return "", fmt.Errorf("unknown config key: %s", key)
	}
}

func setInt(dst *int, key, value string) error {
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("%s must be an integer: %w", key, err)
	}
	*dst = n
	return nil
}

func setBool(dst *bool, key, value string) error {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("%s must be true or false: %w", key, err)
	}
	*dst = b
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
