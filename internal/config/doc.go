// Package config loads and merges showdiff settings from multiple sources.
//
// Precedence (highest to lowest):
//  1. CLI flags
//  2. Environment variables (SHOWDIFF_VAULT, SHOWDIFF_CONTEXT_LINES, ...),
//     including those set by a .env file in the working directory
//  3. Config file ($XDG_CONFIG_HOME/showdiff/config.yaml)
//  4. Built-in defaults
//
// Use [Load] to obtain a merged [Config], [Save] to write the config file,
// and [SetField] to update a single key.
package config
