// Package cache stores rendered show-diff HTML on disk.
//
// Entries are keyed by a SHA-256 hash of the diff text and the render
// settings that affect markup, so a cached fragment is only reused for the
// exact same diff rendered the same way. Each entry records its creation time;
// entries older than the TTL are treated as misses and removed on read.
//
// The default directory is $XDG_CACHE_HOME/showdiff (or the OS-appropriate
// equivalent).
package cache
