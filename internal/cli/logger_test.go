// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestSetupLogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	logger := SetupLogger(&buf, false)
	logger.Debug("hidden")
	slog.Info("reading audio", "component", "embed", "input", "a.wav")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug line logged without verbose: %q", out)
	}
	if !strings.Contains(out, "component=embed") || !strings.Contains(out, "input=a.wav") {
		t.Errorf("default logger output = %q, want component and input attrs", out)
	}

	buf.Reset()
	SetupLogger(&buf, true).Debug("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("debug line missing with verbose: %q", buf.String())
	}
}
