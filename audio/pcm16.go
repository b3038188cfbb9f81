// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/audmark/utils"
)

// DefaultBufSize is the number of float32 values ReadPCM16 requests per read
// when no size is given.
const DefaultBufSize = 4096

// maxEmptyReads bounds consecutive (0, nil) reads before giving up.
const maxEmptyReads = 100

// PCM16 holds a whole stream as interleaved 16-bit samples.
type PCM16 struct {
	SampleRate int
	Channels   int
	// Samples are interleaved frame by frame: ch0, ch1, ..., ch0, ch1, ...
	Samples []int16
}

// Frames returns the number of complete frames (samples per channel).
func (p *PCM16) Frames() int {
	if p.Channels <= 0 {
		return 0
	}
	return len(p.Samples) / p.Channels
}

// Channel returns a de-interleaved copy of channel c.
func (p *PCM16) Channel(c int) ([]int16, error) {
	if c < 0 || c >= p.Channels {
		return nil, fmt.Errorf("%w: %d of %d", ErrChannelOutOfRange, c, p.Channels)
	}

	if p.Channels == 1 {
		out := make([]int16, len(p.Samples))
		copy(out, p.Samples)
		return out, nil
	}

	frames := p.Frames()
	out := make([]int16, frames)
	for f := range frames {
		out[f] = p.Samples[f*p.Channels+c]
	}
	return out, nil
}

// WithChannel returns a copy of p in which channel c is replaced by data.
// All other channels are copied unchanged; p itself is not modified.
func (p *PCM16) WithChannel(c int, data []int16) (*PCM16, error) {
	if c < 0 || c >= p.Channels {
		return nil, fmt.Errorf("%w: %d of %d", ErrChannelOutOfRange, c, p.Channels)
	}
	frames := p.Frames()
	if len(data) != frames {
		return nil, fmt.Errorf("%w: got %d samples for %d frames", ErrInvalidDstSize, len(data), frames)
	}

	out := &PCM16{
		SampleRate: p.SampleRate,
		Channels:   p.Channels,
		Samples:    make([]int16, len(p.Samples)),
	}
	copy(out.Samples, p.Samples)
	for f, s := range data {
		out.Samples[f*p.Channels+c] = s
	}
	return out, nil
}

// ReadPCM16 drains src and collects every sample as 16-bit PCM.
//
// Each float sample x is converted with utils.Float32ToInt16, so sources
// that were decoded from 16-bit PCM come back bit-exact. bufSize is rounded
// down to a whole number of frames; zero selects DefaultBufSize.
//
// src is not closed.
func ReadPCM16(src Source, bufSize int) (*PCM16, error) {
	channels := src.Channels()
	if channels <= 0 {
		return nil, ErrNoChannels
	}
	if bufSize == 0 {
		bufSize = DefaultBufSize
	}
	bufSize -= bufSize % channels
	if bufSize <= 0 {
		return nil, fmt.Errorf("%w: buffer of %d for %d channels", ErrInvalidDstSize, bufSize, channels)
	}

	pcm := &PCM16{
		SampleRate: src.SampleRate(),
		Channels:   channels,
		// Assume ~2 seconds initially, append grows as needed
		Samples: make([]int16, 0, max(src.SampleRate(), 0)*channels*2),
	}

	buf := make([]float32, bufSize)
	empty := 0
	for {
		n, err := src.ReadSamples(buf)
		for i := range n {
			pcm.Samples = append(pcm.Samples, utils.Float32ToInt16(buf[i]))
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading samples: %w", err)
		}
		if n > 0 {
			empty = 0
			continue
		}
		empty++
		if empty >= maxEmptyReads {
			return nil, io.ErrNoProgress
		}
	}

	// Drop a trailing partial frame.
	pcm.Samples = pcm.Samples[:pcm.Frames()*channels]

	return pcm, nil
}
