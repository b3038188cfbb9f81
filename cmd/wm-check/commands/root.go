// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ik5/audmark"
	"github.com/ik5/audmark/internal/cli"
	"github.com/ik5/audmark/watermark"
)

type options struct {
	cfgFile    string
	input      string
	outputJSON bool
	format     string
}

// NewRootCmd builds the wm-check command.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "wm-check",
		Short: "Check audio for a text watermark",
		Long: `wm-check recovers the watermark from the first channel by majority vote
over up to --repeat copies and reports whether it starts with --id.

A missing watermark is reported and exits 0. Unreadable input, or audio too
short to hold the identifier even once, exits 1.

Examples:
  # Check for the default identifier
  wm-check -i tagged.wav

  # Machine readable result
  wm-check -i tagged.wav --id studio-7 --json
`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "input audio file")
	cmd.Flags().String("id", cli.DefaultID, "expected watermark identifier")
	cmd.Flags().Int("repeat", watermark.DefaultVoteRepeat, "maximum number of copies to vote over")
	cmd.Flags().StringVar(&opts.cfgFile, "config", "", "YAML config file")
	cmd.Flags().BoolVar(&opts.outputJSON, "json", false, "output as JSON (for piping)")
	cmd.Flags().StringVar(&opts.format, "format", string(cli.FormatText), "output format (text, json, yaml)")
	cmd.Flags().BoolP("verbose", "v", false, "verbose output")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

// Execute runs the wm-check command.
func Execute() error {
	return NewRootCmd().Execute()
}

func run(cmd *cobra.Command, opts *options) error {
	cfg, err := cli.LoadConfig(opts.cfgFile)
	if err != nil {
		return err
	}
	if err := cfg.ApplyFlags(cmd.Flags()); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	format, err := cli.ResolveFormat(opts.format, opts.outputJSON)
	if err != nil {
		return err
	}

	logger := cli.SetupLogger(cmd.ErrOrStderr(), cfg.Verbose).With("component", "check")

	logger.Info("reading audio", "input", opts.input)
	src, err := cli.OpenInput(audmark.NewRegistry(), opts.input)
	if err != nil {
		return err
	}
	defer src.Close()
	logger.Info("audio format", "sample_rate", src.SampleRate(), "channels", src.Channels())

	bits := len(watermark.EncodeText(cfg.ID))
	logger.Info("expected watermark", "id", cfg.ID, "bits", bits)

	res, err := audmark.Check(src, cfg.ID, cfg.Repeat)
	if errors.Is(err, watermark.ErrInsufficientAudioLength) {
		return fmt.Errorf("audio too short to hold %q: %w", cfg.ID, err)
	}
	if err != nil {
		return err
	}
	logger.Info("recovered text", "text", res.Recovered, "votes", res.Votes)
	if res.Votes < cfg.Repeat {
		logger.Debug("vote count clamped to audio length", "requested", cfg.Repeat, "votes", res.Votes)
	}

	return cli.Output(cmd.OutOrStdout(), cli.Report{
		Command:   "check",
		Input:     opts.input,
		ID:        cfg.ID,
		Bits:      bits,
		Recovered: res.Recovered,
		Votes:     res.Votes,
		Matched:   res.Matched,
	}, format)
}
