// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"errors"
	"io"
	"slices"
	"testing"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/audmark/audio"
)

// mockAiffReader simulates the aiff.Decoder for testing
type mockAiffReader struct {
	samples []int
	offset  int
	err     error
}

func (m *mockAiffReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	n := copy(buf.Data, m.samples[m.offset:])
	m.offset += n

	if m.offset >= len(m.samples) {
		return n, io.EOF
	}
	return n, nil
}

func newMockSource(channels int, samples []int, err error) *source {
	return &source{
		dec:        &mockAiffReader{samples: samples, err: err},
		sampleRate: 44100,
		channels:   channels,
	}
}

func TestDecoder_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{name: "text", data: []byte("This is not AIFF data")},
		{name: "empty", data: nil},
		{name: "riff", data: []byte("RIFF\x24\x00\x00\x00WAVEfmt ")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decoder{}.Decode(bytes.NewReader(tt.data))
			if !errors.Is(err, ErrNotAiffFile) {
				t.Errorf("Decode() error = %v, want ErrNotAiffFile", err)
			}
		})
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	src := newMockSource(2, []int{0, 16384, -16384, -32768, 32767, 1}, nil)
	if src.SampleRate() != 44100 || src.Channels() != 2 {
		t.Errorf("format = %d Hz/%d ch, want 44100 Hz/2 ch", src.SampleRate(), src.Channels())
	}

	pcm, err := audio.ReadPCM16(src, 4)
	if err != nil {
		t.Fatalf("ReadPCM16() error = %v", err)
	}
	if want := []int16{0, 16384, -16384, -32768, 32767, 1}; !slices.Equal(pcm.Samples, want) {
		t.Errorf("samples = %v, want %v", pcm.Samples, want)
	}
	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestSource_ReadSamples_EmptyBuffer(t *testing.T) {
	t.Parallel()

	src := newMockSource(1, []int{1, 2, 3}, nil)
	if n, err := src.ReadSamples(nil); n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = %d, %v; want 0, nil", n, err)
	}
}

func TestSource_ReadSamples_EOF(t *testing.T) {
	t.Parallel()

	src := newMockSource(1, nil, nil)
	buf := make([]float32, 8)
	if n, err := src.ReadSamples(buf); n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() = %d, %v; want 0, io.EOF", n, err)
	}
}

func TestSource_ReadSamples_Error(t *testing.T) {
	t.Parallel()

	src := newMockSource(1, []int{1}, io.ErrUnexpectedEOF)
	buf := make([]float32, 8)
	if _, err := src.ReadSamples(buf); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadSamples() error = %v, want io.ErrUnexpectedEOF", err)
	}
}
