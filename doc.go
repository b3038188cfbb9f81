// SPDX-License-Identifier: EPL-2.0

// Package audmark tags audio with a short text identifier hidden in the
// least significant bits of its samples, and checks audio for that tag.
//
// The identifier is encoded as UTF-8, expanded to bits MSB first, and tiled
// over every sample of the first channel. Recovery takes a majority vote
// across the repetitions, so a tag survives heavy LSB noise and truncation,
// but not lossy re-encoding or resampling.
//
// # Supported Formats
//
// Input, picked by file extension through NewRegistry:
//   - WAV (PCM 16-bit) via formats/wav
//   - AIFF (PCM 16-bit) via formats/aiff
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//
// Tagged output is always 16-bit PCM WAV, written with wav.WritePCM16.
//
// # Tagging
//
//	src, _ := wav.Decoder{}.Decode(in)
//	pcm, err := audmark.Tag(src, "wf")
//	if err != nil {
//	    return err
//	}
//	err = wav.WritePCM16(out, pcm)
//
// # Checking
//
//	res, err := audmark.Check(src, "wf", watermark.DefaultVoteRepeat)
//	switch {
//	case errors.Is(err, watermark.ErrInsufficientAudioLength):
//	    // too short to hold the tag even once
//	case err != nil:
//	    return err
//	case res.Matched:
//	    // tagged
//	}
//
// The bit-level codec lives in the watermark package and works on plain
// []int16 channels without any I/O.
package audmark
