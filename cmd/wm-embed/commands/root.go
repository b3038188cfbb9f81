// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ik5/audmark"
	"github.com/ik5/audmark/formats/wav"
	"github.com/ik5/audmark/internal/cli"
	"github.com/ik5/audmark/watermark"
)

type options struct {
	cfgFile    string
	input      string
	output     string
	outputJSON bool
	format     string
}

// NewRootCmd builds the wm-embed command.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "wm-embed",
		Short: "Embed a text watermark into audio",
		Long: `wm-embed hides a short text identifier in the least significant bit of
every sample of the first channel. Other channels are copied unchanged.

Input may be WAV, AIFF, MP3 or Ogg Vorbis. Output is always 16-bit PCM WAV at
the input sample rate and channel count, written only after embedding
succeeded.

Examples:
  # Tag with the default identifier
  wm-embed -i take.wav -o tagged.wav

  # Tag with a custom identifier, settings from a file
  wm-embed -i take.mp3 -o tagged.wav --id studio-7 --config audmark.yaml
`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "input audio file")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output WAV file")
	cmd.Flags().String("id", cli.DefaultID, "watermark identifier")
	cmd.Flags().StringVar(&opts.cfgFile, "config", "", "YAML config file")
	cmd.Flags().BoolVar(&opts.outputJSON, "json", false, "output as JSON (for piping)")
	cmd.Flags().StringVar(&opts.format, "format", string(cli.FormatText), "output format (text, json, yaml)")
	cmd.Flags().BoolP("verbose", "v", false, "verbose output")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

// Execute runs the wm-embed command.
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

	logger := cli.SetupLogger(cmd.ErrOrStderr(), cfg.Verbose).With("component", "embed")

	logger.Info("reading audio", "input", opts.input)
	src, err := cli.OpenInput(audmark.NewRegistry(), opts.input)
	if err != nil {
		return err
	}
	defer src.Close()
	logger.Info("audio format", "sample_rate", src.SampleRate(), "channels", src.Channels())

	bits := watermark.EncodeText(cfg.ID)
	logger.Info("watermark", "id", cfg.ID, "bits", len(bits))
	logger.Debug("watermark bits", "bits", bits.String())

	tagged, err := audmark.Tag(src, cfg.ID)
	if err != nil {
		if errors.Is(err, watermark.ErrInvalidInput) {
			return fmt.Errorf("nothing to tag in %s: %w", opts.input, err)
		}
		return err
	}
	repeat := watermark.Repeat(tagged.Frames(), len(bits))
	logger.Debug("embedded", "frames", tagged.Frames(), "repeat", repeat)
	if tagged.Frames() < len(bits) {
		logger.Warn("audio shorter than one watermark, it cannot be recovered",
			"frames", tagged.Frames(), "bits", len(bits))
	}

	err = cli.WriteFileAtomic(opts.output, func(w io.Writer) error {
		return wav.WritePCM16(w, tagged)
	})
	if err != nil {
		return err
	}
	logger.Info("write complete", "output", opts.output)

	return cli.Output(cmd.OutOrStdout(), cli.Report{
		Command: "embed",
		Input:   opts.input,
		Output:  opts.output,
		ID:      cfg.ID,
		Bits:    len(bits),
		Votes:   repeat,
	}, format)
}
