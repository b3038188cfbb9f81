// SPDX-License-Identifier: EPL-2.0

package audmark

import (
	"fmt"

	"github.com/ik5/audmark/audio"
	"github.com/ik5/audmark/formats/aiff"
	"github.com/ik5/audmark/formats/mp3"
	"github.com/ik5/audmark/formats/vorbis"
	"github.com/ik5/audmark/formats/wav"
	"github.com/ik5/audmark/watermark"
)

// WatermarkChannel is the only channel that carries the watermark. All other
// channels pass through untouched.
const WatermarkChannel = 0

// NewRegistry returns a registry with every supported input format keyed by
// its file extension.
func NewRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	return reg
}

// Tag drains src and returns its audio as 16-bit PCM with id embedded in the
// LSBs of WatermarkChannel.
//
// The result keeps the sample rate and channel count of src. On error nothing
// is returned, so callers never see partially tagged audio.
//
// src is not closed.
func Tag(src audio.Source, id string) (*audio.PCM16, error) {
	bits := watermark.EncodeText(id)
	if len(bits) == 0 {
		return nil, fmt.Errorf("%w: empty identifier", watermark.ErrInvalidInput)
	}

	pcm, err := audio.ReadPCM16(src, audio.DefaultBufSize)
	if err != nil {
		return nil, fmt.Errorf("decoding audio: %w", err)
	}

	channel, err := pcm.Channel(WatermarkChannel)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	marked, err := watermark.Embed(channel, bits)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	out, err := pcm.WithChannel(WatermarkChannel, marked)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return out, nil
}

// Check reads WatermarkChannel of src and verifies that it carries id,
// voting over at most voteRepeat repetitions.
//
// A mismatch is reported through Result.Matched, not as an error. Audio
// shorter than the bit length of id fails with
// watermark.ErrInsufficientAudioLength.
//
// src is not closed.
func Check(src audio.Source, id string, voteRepeat int) (watermark.Result, error) {
	if id == "" {
		return watermark.Result{}, fmt.Errorf("%w: empty identifier", watermark.ErrInvalidInput)
	}

	mono, err := audio.NewChannelPicker(src, WatermarkChannel)
	if err != nil {
		return watermark.Result{}, fmt.Errorf("%w", err)
	}

	pcm, err := audio.ReadPCM16(mono, audio.DefaultBufSize)
	if err != nil {
		return watermark.Result{}, fmt.Errorf("decoding audio: %w", err)
	}

	res, err := watermark.Verify(pcm.Samples, id, voteRepeat)
	if err != nil {
		return watermark.Result{}, fmt.Errorf("%w", err)
	}
	return res, nil
}
