package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dshills/showdiff/internal/cache"
	"github.com/dshills/showdiff/internal/config"
	"github.com/dshills/showdiff/internal/diffblock"
	"github.com/dshills/showdiff/internal/gitctx"
	"github.com/dshills/showdiff/internal/logging"
	"github.com/dshills/showdiff/internal/redact"
	"github.com/dshills/showdiff/internal/render"
	"github.com/dshills/showdiff/internal/revrange"
)

// Shared flags
var (
	flagVault        string
	flagVerbose      bool
	flagNoCache      bool
	flagFile         string
	flagFormat       string
	flagOut          string
	flagFragment     bool
	flagContextLines int
	flagMaxDiffBytes int
	flagFileList     bool
	flagNoHighlight  bool
	flagStyle        string
	flagNoRedact     bool
)

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagVault != "" {
		m[config.KeyVault] = flagVault
	}
	if flagFormat != "" {
		m[config.KeyFormat] = flagFormat
	}
	if flagStyle != "" {
		m[config.KeyStyle] = flagStyle
	}
	if flagContextLines > 0 {
		m[config.KeyContextLines] = strconv.Itoa(flagContextLines)
	}
	if flagMaxDiffBytes > 0 {
		m[config.KeyMaxDiffBytes] = strconv.Itoa(flagMaxDiffBytes)
	}
	if flagFileList {
		m[config.KeyDrawFileList] = "true"
	}
	if flagNoHighlight {
		m[config.KeyHighlight] = "false"
	}
	if flagNoCache {
		m[config.KeyCacheEnabled] = "false"
	}
	if flagNoRedact {
		m[config.KeyRedactSecrets] = "false"
	}
	if flagVerbose {
		m[config.KeyLogLevel] = "debug"
	}
	return m
}

// loadSettings returns the effective config and a logger for it.
func loadSettings() (config.Config, logging.Logger, error) {
	cfg, err := config.Load(buildOverrides())
	if err != nil {
		return config.Config{}, logging.Logger{}, &usageError{err}
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, logging.Logger{}, &usageError{err}
	}
	log, err := logging.NewForLevel(cfg.LogLevel, os.Stderr)
	if err != nil {
		return config.Config{}, logging.Logger{}, &usageError{err}
	}
	return cfg, log, nil
}

// vaultRoot returns the configured vault, or the top level of the repository
// containing dir. When dir is not in a repository it is returned unchanged
// and git reports the problem later.
func vaultRoot(ctx context.Context, cfg config.Config, dir string, log logging.Logger) string {
	if cfg.Vault != "" {
		if abs, err := filepath.Abs(cfg.Vault); err == nil {
			return abs
		}
		return cfg.Vault
	}
	top, err := gitctx.Toplevel(ctx, dir, cfg.GitTimeout())
	if err != nil {
		log.Debug("no repository above note", "dir", dir, "error", err.Error())
		return dir
	}
	return top
}

func buildProcessor(cfg config.Config, root string, log logging.Logger) (*diffblock.Processor, error) {
	c, err := cache.New(cfg.Cache.Enabled, cfg.Cache.Dir, cfg.Cache.TTLSeconds)
	if err != nil {
		return nil, fmt.Errorf("opening cache: %w", err)
	}
	policy := redact.Policy{Secrets: cfg.Privacy.RedactSecrets, Paths: cfg.Privacy.RedactPaths}
	if !policy.Secrets {
		log.Info("secret redaction is disabled")
	}
	return &diffblock.Processor{
		Root:     root,
		Timeout:  cfg.GitTimeout(),
		Compiler: revrange.Compiler{DefaultExclude: cfg.DefaultExclude},
		Renderer: render.New(render.Options{
			DrawFileList: cfg.DrawFileList,
			Templates:    cfg.Templates,
			Highlight:    cfg.Highlight,
		}),
		Cache:  c,
		Redact: policy,
		Options: gitctx.DiffOptions{
			ContextLines: cfg.ContextLines,
			MaxDiffBytes: cfg.MaxDiffBytes,
		},
		Log: log.WithName("block"),
	}, nil
}

// readSource reads path, or stdin when path is empty or "-".
func readSource(path string) (string, error) {
	var data []byte
	var err error
	if path == "" || path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", &usageError{fmt.Errorf("reading block: %w", err)}
	}
	return stripFence(string(data)), nil
}

// stripFence accepts either a bare block body or a complete fenced block.
func stripFence(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return s
	}
	lines := strings.Split(trimmed, "\n")
	if len(lines) < 2 || strings.TrimSpace(lines[len(lines)-1]) != "```" {
		return s
	}
	return strings.Join(lines[1:len(lines)-1], "\n") + "\n"
}

func splitComma(s string) []string {
	parts := strings.Split(s, ",")
	var result []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
