// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"errors"
	"io"
	"math"
	"math/rand/v2"

	"github.com/ik5/audmark/utils"
)

// ErrMockRead is returned by sources built with NewFailingSource.
var ErrMockRead = errors.New("mock read failure")

// MockSource is a test helper that generates audio data for testing.
// It implements the audio.Source interface (without importing it to avoid cycles).
type MockSource struct {
	sampleRate int
	channels   int
	frames     int // Total frames to generate
	generated  int // Frames generated so far
	failAfter  int // Frames after which ReadSamples fails; negative disables
	closed     bool
	waveform   func(frame int, channel int) float32
}

// NewMockSource creates a new mock audio source.
// frames is the number of samples per channel to generate.
// waveform generates sample values given frame index and channel.
func NewMockSource(sampleRate, channels, frames int, waveform func(frame int, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
		failAfter:  -1,
		waveform:   waveform,
	}
}

// NewPCMSource replays interleaved 16-bit samples as normalized floats, the
// way a 16-bit WAV decoder would.
func NewPCMSource(sampleRate, channels int, samples []int16) *MockSource {
	return NewMockSource(sampleRate, channels, len(samples)/channels, func(frame int, channel int) float32 {
		return utils.Int16ToFloat32(samples[frame*channels+channel])
	})
}

// NewNoiseSource generates reproducible 16-bit white noise for the given seed.
func NewNoiseSource(sampleRate, channels, frames int, seed uint64) *MockSource {
	return NewPCMSource(sampleRate, channels, Noise(frames*channels, seed))
}

// NewSineSource creates a mock source that generates a sine wave.
func NewSineSource(sampleRate, channels, frames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(frame int, channel int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewFailingSource returns a source that fails with ErrMockRead after
// producing the given number of silent frames.
func NewFailingSource(sampleRate, channels, after int) *MockSource {
	m := NewMockSource(sampleRate, channels, after+1, func(int, int) float32 { return 0 })
	m.failAfter = after
	return m
}

// Noise returns n reproducible random int16 samples.
func Noise(n int, seed uint64) []int16 {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	out := make([]int16, n)
	for i := range out {
		out[i] = int16(rng.IntN(math.MaxUint16+1) + math.MinInt16)
	}
	return out
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) Close() error    { m.closed = true; return nil }

// Closed reports whether Close was called.
func (m *MockSource) Closed() bool { return m.closed }

// Reset resets the generated frame counter to allow re-reading
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.failAfter >= 0 && m.generated >= m.failAfter {
		return 0, ErrMockRead
	}
	if m.generated >= m.frames {
		return 0, io.EOF
	}

	framesToWrite := min(len(dst)/m.channels, m.frames-m.generated)
	if m.failAfter >= 0 {
		framesToWrite = min(framesToWrite, m.failAfter-m.generated)
	}

	for frame := range framesToWrite {
		idx := m.generated + frame
		for ch := range m.channels {
			dst[frame*m.channels+ch] = m.waveform(idx, ch)
		}
	}

	m.generated += framesToWrite
	samplesWritten := framesToWrite * m.channels

	if m.generated >= m.frames {
		return samplesWritten, io.EOF
	}

	return samplesWritten, nil
}
