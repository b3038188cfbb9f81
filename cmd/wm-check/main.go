// SPDX-License-Identifier: EPL-2.0

// Package main provides the wm-check tool.
//
// Usage:
//
//	wm-check --input tagged.wav [--id wf] [--repeat 1000] [--config audmark.yaml]
//
// A missing watermark is a normal outcome and exits 0. Only decoding and
// codec failures exit 1.
package main

import (
	"os"

	"github.com/ik5/audmark/cmd/wm-check/commands"
	"github.com/ik5/audmark/internal/cli"
)

func main() {
	if err := commands.Execute(); err != nil {
		cli.PrintError(os.Stderr, "%v", err)
		os.Exit(1)
	}
}
