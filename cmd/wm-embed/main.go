// SPDX-License-Identifier: EPL-2.0

// Package main provides the wm-embed tool.
//
// Usage:
//
//	wm-embed --input take.wav --output tagged.wav [--id wf] [--config audmark.yaml]
//
// The identifier is hidden in the least significant bit of every sample of
// the first channel. Output is always 16-bit PCM WAV.
package main

import (
	"os"

	"github.com/ik5/audmark/cmd/wm-embed/commands"
	"github.com/ik5/audmark/internal/cli"
)

func main() {
	if err := commands.Execute(); err != nil {
		cli.PrintError(os.Stderr, "%v", err)
		os.Exit(1)
	}
}
