// Package config holds the tool's configuration: a couple of global
// flags that would be too painful to thread through every call, the
// user-level credentials file, and per-directory project preferences.
package config

// Quiet causes the tool to avoid printing progress messages on stderr.
// It is set by the --quiet global command-line option.
var Quiet bool
