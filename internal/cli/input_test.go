// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/ik5/audmark/audio"
	"github.com/ik5/audmark/formats/wav"
)

func wavRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	return reg
}

func writeWAV(t *testing.T, name string, samples []int16) string {
	t.Helper()

	var buf bytes.Buffer
	if err := wav.WriteWAV16(&buf, 8000, 2, samples); err != nil {
		t.Fatalf("WriteWAV16 error: %v", err)
	}
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, buf.Bytes(), 0600); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}
	return path
}

func TestOpenInput(t *testing.T) {
	samples := []int16{1, -1, 2, -2, 3, -3}

	for _, name := range []string{"take.wav", "take.WAV", "take", "take.bin"} {
		t.Run(name, func(t *testing.T) {
			src, err := OpenInput(wavRegistry(), writeWAV(t, name, samples))
			if err != nil {
				t.Fatalf("OpenInput error: %v", err)
			}
			defer src.Close()

			pcm, err := audio.ReadPCM16(src, 0)
			if err != nil {
				t.Fatalf("ReadPCM16 error: %v", err)
			}
			if pcm.Channels != 2 || !slices.Equal(pcm.Samples, samples) {
				t.Errorf("decoded %d ch %v, want 2 ch %v", pcm.Channels, pcm.Samples, samples)
			}
		})
	}
}

func TestOpenInput_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := OpenInput(wavRegistry(), filepath.Join(dir, "missing.wav")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("OpenInput(missing) error = %v, want os.ErrNotExist", err)
	}

	junk := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(junk, []byte("not audio"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := OpenInput(wavRegistry(), junk); !errors.Is(err, audio.ErrUnknownFormat) {
		t.Errorf("OpenInput(text) error = %v, want ErrUnknownFormat", err)
	}

	bad := filepath.Join(dir, "broken.wav")
	if err := os.WriteFile(bad, []byte("RIFF but not really"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := OpenInput(wavRegistry(), bad); !errors.Is(err, wav.ErrNotWavFile) {
		t.Errorf("OpenInput(broken) error = %v, want ErrNotWavFile", err)
	}
}

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.wav")

	if err := WriteFileAtomic(path, func(w io.Writer) error {
		_, err := w.Write([]byte("tagged"))
		return err
	}); err != nil {
		t.Fatalf("WriteFileAtomic error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "tagged" {
		t.Fatalf("ReadFile = %q, %v; want %q", data, err, "tagged")
	}

	boom := errors.New("boom")
	err = WriteFileAtomic(path, func(w io.Writer) error {
		_, _ = w.Write([]byte("partial"))
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("WriteFileAtomic error = %v, want %v", err, boom)
	}
	if data, _ := os.ReadFile(path); string(data) != "tagged" {
		t.Errorf("failed write replaced output with %q", data)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want only out.wav", len(entries))
	}
}
