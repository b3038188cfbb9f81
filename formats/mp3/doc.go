// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio decoding.
//
// This package uses github.com/hajimehoshi/go-mp3. The decoder always
// produces two interleaved channels, mono streams included.
//
//	file, _ := os.Open("episode.mp3")
//	src, err := mp3.Decoder{}.Decode(file)
//	if err != nil {
//	    // errors.Is(err, mp3.ErrNotMp3File)
//	}
//	pcm, err := audio.ReadPCM16(src, 0)
//
// MP3 is lossy. A file tagged after decoding keeps its watermark only while
// it stays in PCM form; re-encoding to MP3 destroys it.
package mp3
