// Package cli wires together the Cobra command tree for the showdiff binary.
//
// It defines the root command and all subcommands (render, block, args,
// daily, watch, hook, config, cache, version), binds flags, reads
// configuration, runs the block processor, and returns deterministic exit
// codes: configuration errors in a block exit 3, git failures exit 4.
package cli
