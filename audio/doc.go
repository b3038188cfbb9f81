// SPDX-License-Identifier: EPL-2.0

// Package audio provides the audio plumbing around the watermark codec.
//
// It contains:
//   - Source, the decoded audio stream every format produces
//   - Registry, mapping format keys and file extensions to decoders
//   - PCM16, an interleaved 16-bit buffer with per-channel access
//   - ChannelPicker, a mono view of one channel of a Source
//
// # Source Interface
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// Samples are interleaved float32 values in [-1, 1]. Decoders of 16-bit
// material emit s/32768 for each sample s, and ReadPCM16 inverts that
// exactly, so the least significant bit of every sample survives the trip
// through a Source. Nothing in this package resamples or mixes channels;
// either would destroy an LSB watermark.
//
// # Reading PCM
//
//	pcm, err := audio.ReadPCM16(src, audio.DefaultBufSize)
//	left, err := pcm.Channel(0)
//	...
//	tagged, err := pcm.WithChannel(0, marked)
//
// # Picking a Channel
//
// When only one channel is needed, ChannelPicker avoids buffering the others:
//
//	mono, err := audio.NewChannelPicker(src, 0)
//	pcm, err := audio.ReadPCM16(mono, 0)
//
// # Format Registry
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	dec, err := registry.ForPath("take.WAV")
//
// When the extension is missing, Sniff identifies WAV, AIFF, Ogg and MP3
// streams from their first SniffLen bytes, and ForHeader resolves the
// matching decoder.
package audio
