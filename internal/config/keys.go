package config

import "sort"

// Setting keys, as used in the config file and by "config set".
const (
	KeyVault             = "vault"
	KeyDefaultExclude    = "defaultExclude"
	KeyContextLines      = "contextLines"
	KeyMaxDiffBytes      = "maxDiffBytes"
	KeyGitTimeoutSeconds = "gitTimeoutSeconds"
	KeyFormat            = "format"
	KeyDrawFileList      = "drawFileList"
	KeyHighlight         = "highlight"
	KeyStyle             = "style"
	KeyLogLevel          = "logLevel"
	KeyCacheEnabled      = "cache.enabled"
	KeyCacheDir          = "cache.dir"
	KeyCacheTTLSeconds   = "cache.ttlSeconds"
	KeyRedactSecrets     = "privacy.redactSecrets"
	KeyRedactPaths       = "privacy.redactPaths"
)

// envBindings maps setting keys to environment variable names.
var envBindings = map[string]string{
	KeyVault:             "SHOWDIFF_VAULT",
	KeyDefaultExclude:    "SHOWDIFF_DEFAULT_EXCLUDE",
	KeyContextLines:      "SHOWDIFF_CONTEXT_LINES",
	KeyMaxDiffBytes:      "SHOWDIFF_MAX_DIFF_BYTES",
	KeyGitTimeoutSeconds: "SHOWDIFF_GIT_TIMEOUT_SECONDS",
	KeyFormat:            "SHOWDIFF_FORMAT",
	KeyDrawFileList:      "SHOWDIFF_DRAW_FILE_LIST",
	KeyHighlight:         "SHOWDIFF_HIGHLIGHT",
	KeyStyle:             "SHOWDIFF_STYLE",
	KeyLogLevel:          "SHOWDIFF_LOG_LEVEL",
	KeyCacheEnabled:      "SHOWDIFF_CACHE_ENABLED",
	KeyCacheDir:          "SHOWDIFF_CACHE_DIR",
	KeyCacheTTLSeconds:   "SHOWDIFF_CACHE_TTL_SECONDS",
	KeyRedactSecrets:     "SHOWDIFF_REDACT_SECRETS",
}

// redactPathsEnv holds a comma-separated list, so it is read by hand.
const redactPathsEnv = "SHOWDIFF_REDACT_PATHS"

// Keys returns every settable key, sorted.
func Keys() []string {
	keys := make([]string, 0, len(envBindings)+1)
	for k := range envBindings {
		keys = append(keys, k)
	}
	keys = append(keys, KeyRedactPaths)
	sort.Strings(keys)
	return keys
}

// EnvVar returns the environment variable that overrides key, or "".
func EnvVar(key string) string {
	if key == KeyRedactPaths {
		return redactPathsEnv
	}
	return envBindings[key]
}
