// SPDX-License-Identifier: EPL-2.0

package watermark

import (
	"errors"
	"testing"
)

func TestVerify_EmbeddedIdentifierMatches(t *testing.T) {
	t.Parallel()

	channel := noise(48000, 42)
	embedded, err := Embed(channel, EncodeText("wf"))
	if err != nil {
		t.Fatalf("Embed() error = %v", err)
	}

	res, err := Verify(embedded, "wf", DefaultVoteRepeat)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if !res.Matched {
		t.Errorf("Verify() Matched = false, recovered %q", res.Recovered)
	}
	if res.Recovered != "wf" {
		t.Errorf("Verify() Recovered = %q, want %q", res.Recovered, "wf")
	}
	if res.Votes != DefaultVoteRepeat {
		t.Errorf("Verify() Votes = %d, want %d", res.Votes, DefaultVoteRepeat)
	}
}

func TestVerify_UnmarkedNoiseDoesNotMatch(t *testing.T) {
	t.Parallel()

	// Statistical: a random channel decodes to "wf" with probability ~2^-16.
	for seed := range uint64(8) {
		res, err := Verify(noise(16000, 1000+seed), "wf", DefaultVoteRepeat)
		if err != nil {
			t.Fatalf("Verify() error = %v", err)
		}
		if res.Matched {
			t.Errorf("seed %d: unmarked noise matched, recovered %q", seed, res.Recovered)
		}
	}
}

func TestVerify_DifferentIdentifier(t *testing.T) {
	t.Parallel()

	embedded, err := Embed(noise(48000, 5), EncodeText("wf"))
	if err != nil {
		t.Fatalf("Embed() error = %v", err)
	}

	tests := []struct {
		name     string
		expected string
		want     bool
	}{
		{name: "other ascii", expected: "xy", want: false},
		{name: "case differs", expected: "WF", want: false},
		{name: "longer identifier", expected: "wfx", want: false},
		// 8-bit blocks alternate between 'w' and 'f'; the positions where
		// they differ tie, ties vote 1, and 'w' has 1s there.
		{name: "first byte of tag", expected: "w", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res, err := Verify(embedded, tt.expected, DefaultVoteRepeat)
			if err != nil {
				t.Fatalf("Verify() error = %v", err)
			}
			if res.Matched != tt.want {
				t.Errorf("Verify(%q) Matched = %v, want %v (recovered %q)",
					tt.expected, res.Matched, tt.want, res.Recovered)
			}
		})
	}
}

func TestVerify_ClampsToAvailableAudio(t *testing.T) {
	t.Parallel()

	embedded, err := Embed(noise(40, 9), EncodeText("wf"))
	if err != nil {
		t.Fatalf("Embed() error = %v", err)
	}

	res, err := Verify(embedded, "wf", DefaultVoteRepeat)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if !res.Matched || res.Votes != 2 {
		t.Errorf("Verify() = %+v, want match with 2 votes", res)
	}
}

func TestVerify_Errors(t *testing.T) {
	t.Parallel()

	if _, err := Verify(make([]int16, 15), "wf", DefaultVoteRepeat); !errors.Is(err, ErrInsufficientAudioLength) {
		t.Errorf("Verify() short channel error = %v, want ErrInsufficientAudioLength", err)
	}
	if _, err := Verify(make([]int16, 100), "", DefaultVoteRepeat); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Verify() empty identifier error = %v, want ErrInvalidInput", err)
	}
	if _, err := Verify(make([]int16, 100), "wf", 0); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Verify() zero repeat error = %v, want ErrInvalidInput", err)
	}
}

func TestVerify_PrefixMatch(t *testing.T) {
	t.Parallel()

	// An all-zero LSB channel decodes to NUL bytes, which never start with
	// a printable identifier but do start with "\x00".
	channel := make([]int16, 64)
	res, err := Verify(channel, "\x00\x00", 4)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if !res.Matched {
		t.Errorf("Verify() Matched = false, recovered %q", res.Recovered)
	}

	res, err = Verify(channel, "ab", 4)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if res.Matched {
		t.Errorf("Verify() matched %q against an all-zero channel", "ab")
	}
}
