// SPDX-License-Identifier: EPL-2.0

// Package cli holds the plumbing shared by the wm-embed and wm-check
// commands: YAML configuration, slog setup, input decoding, atomic output
// writes and result rendering.
//
// # Configuration
//
// An optional YAML file sets the same values as the flags:
//
//	id: wf
//	repeat: 1000
//	verbose: false
//
// Flags given on the command line win over the file, and the file wins over
// the defaults.
package cli
