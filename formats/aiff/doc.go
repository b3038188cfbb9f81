// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF files. Only
// uncompressed 16-bit PCM is accepted: the watermark lives in the lowest bit
// of a 16-bit sample, so any other depth would have to be requantized first.
//
//	file, _ := os.Open("take.aiff")
//	src, err := aiff.Decoder{}.Decode(file)
//	if err != nil {
//	    // errors.Is(err, aiff.ErrOnlyPCM16bitSupported) for 24-bit masters
//	}
//
// AIFF stores samples big-endian; the decoder returns them interleaved as
// float32 values of s/32768, which audio.ReadPCM16 maps back to the exact
// int16 samples.
package aiff
