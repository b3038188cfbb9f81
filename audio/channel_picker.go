// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// ChannelPicker is a mono Source that yields a single channel of an
// interleaved multi-channel Source. Reads that end mid-frame are carried
// over to the next call.
type ChannelPicker struct {
	src     Source
	channel int
	tmp     []float32
	pending int // samples of an incomplete frame kept at the start of tmp
}

// NewChannelPicker returns a Source carrying only channel c of src.
func NewChannelPicker(src Source, c int) (*ChannelPicker, error) {
	if c < 0 || c >= src.Channels() {
		return nil, fmt.Errorf("%w: %d of %d", ErrChannelOutOfRange, c, src.Channels())
	}

	return &ChannelPicker{
		src:     src,
		channel: c,
		tmp:     make([]float32, DefaultBufSize),
	}, nil
}

func (p *ChannelPicker) SampleRate() int { return p.src.SampleRate() }
func (p *ChannelPicker) Channels() int   { return 1 }
func (p *ChannelPicker) Close() error {
	err := p.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (p *ChannelPicker) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	channels := p.src.Channels()
	if channels == 1 {
		// Pass-through: read mono directly
		return p.src.ReadSamples(dst)
	}

	samplesNeeded := len(dst) * channels

	// Grow tmp buffer if needed (but don't shrink to avoid thrashing)
	if cap(p.tmp) < samplesNeeded {
		tmp := make([]float32, max(samplesNeeded, 8192))
		copy(tmp, p.tmp[:p.pending])
		p.tmp = tmp
	}
	p.tmp = p.tmp[:samplesNeeded]

	n, err := p.src.ReadSamples(p.tmp[p.pending:])
	total := p.pending + n
	frames := total / channels
	if frames == 0 {
		p.pending = total
		return 0, err
	}

	if channels == 2 {
		// Stereo (most common)
		for f := range frames {
			dst[f] = p.tmp[f<<1+p.channel]
		}
	} else {
		for f := range frames {
			dst[f] = p.tmp[f*channels+p.channel]
		}
	}

	// Keep a trailing partial frame for the next read.
	p.pending = copy(p.tmp, p.tmp[frames*channels:total])

	return frames, err
}
