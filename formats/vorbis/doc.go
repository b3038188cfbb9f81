// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio decoding.
//
// This package uses github.com/jfreymuth/oggvorbis. Samples are returned
// interleaved in the stream's own channel layout:
//
//	[L0, R0, L1, R1, L2, R2, ...]
//
// Like MP3, Vorbis is lossy and only serves as an input format. Tagged output
// is always written as 16-bit PCM WAV.
package vorbis
