// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/goccy/go-yaml"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	// FormatText prints a styled verdict line
	FormatText OutputFormat = "text"
	// FormatJSON outputs as JSON
	FormatJSON OutputFormat = "json"
	// FormatYAML outputs as YAML
	FormatYAML OutputFormat = "yaml"
)

// Report is the machine readable outcome of a command.
type Report struct {
	Command   string `json:"command" yaml:"command"`
	Input     string `json:"input" yaml:"input"`
	Output    string `json:"output,omitempty" yaml:"output,omitempty"`
	ID        string `json:"id" yaml:"id"`
	Bits      int    `json:"bits" yaml:"bits"`
	Recovered string `json:"recovered,omitempty" yaml:"recovered,omitempty"`
	Votes     int    `json:"votes,omitempty" yaml:"votes,omitempty"`
	Matched   bool   `json:"matched" yaml:"matched"`
}

var (
	passStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff9f"))
	failStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff5f5f"))
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6e7681"))
)

// Output writes r to w in the given format.
func Output(w io.Writer, r Report, format OutputFormat) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		data, err := yaml.Marshal(r)
		if err != nil {
			return fmt.Errorf("failed to format output: %w", err)
		}
		_, err = w.Write(data)
		return err
	case FormatText, "":
		return outputText(w, r)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func outputText(w io.Writer, r Report) error {
	var line string
	switch {
	case r.Command == "embed":
		line = passStyle.Render("✓ watermark written") + " " + dimStyle.Render(r.Output)
	case r.Matched:
		line = passStyle.Render("✓ watermark found") + " " + dimStyle.Render(fmt.Sprintf("%q", r.Recovered))
	default:
		line = failStyle.Render("✗ watermark not found") + " " + dimStyle.Render(fmt.Sprintf("recovered %q", r.Recovered))
	}

	_, err := fmt.Fprintln(w, line)
	return err
}

// PrintError prints an error message to w
func PrintError(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, failStyle.Render("Error:"), fmt.Sprintf(format, args...))
}

// ResolveFormat validates a --format value. asJSON forces JSON, matching
// the --json shorthand.
func ResolveFormat(format string, asJSON bool) (OutputFormat, error) {
	if asJSON {
		return FormatJSON, nil
	}
	switch f := OutputFormat(format); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", format)
	}
}
