// Package redact scrubs secrets from parsed diffs before they are rendered
// into a note.
//
// Line content is scanned with regex heuristics for common credential shapes
// (API keys, bearer tokens, JWTs, private key headers, provider tokens).
// Files whose paths match a configured glob lose their hunks entirely and
// are rendered with a redaction notice.
package redact
