// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// Decoding uses github.com/go-audio/wav, so files with extra RIFF chunks
// (LIST, JUNK, fact, ...) before or after the format chunk are accepted.
// Only 16-bit integer PCM is supported, in any channel count and sample rate.
//
// # Decoding WAV Files
//
//	file, _ := os.Open("audio.wav")
//	source, err := wav.Decoder{}.Decode(file)
//	if err != nil {
//	    // ErrNotWavFile, ErrOnlyPCM16bitSupported, ...
//	}
//	pcm, err := audio.ReadPCM16(source, 0)
//
// Samples come out of the Source as float32 s/32768, which converts back to
// the exact same int16 through audio.ReadPCM16.
//
// # Writing WAV Files
//
// WriteWAV16 writes interleaved samples with a canonical 44-byte header:
//
//	out, _ := os.Create("tagged.wav")
//	err := wav.WriteWAV16(out, 44100, 2, samples)
//
// WritePCM16 does the same for an audio.PCM16. Data is written in 16 KiB
// blocks, so any io.Writer works and large files are not buffered twice.
package wav
