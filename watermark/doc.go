// SPDX-License-Identifier: EPL-2.0

// Package watermark embeds a short text identifier into 16-bit PCM samples
// and recovers it again.
//
// # Encoding
//
// The identifier is expanded into bits, most significant bit first, one
// byte of UTF-8 at a time:
//
//	bits := watermark.EncodeText("wf") // 16 bits
//
// # Embedding
//
// Embed overwrites the least significant bit of every sample with the bit
// sequence repeated end to end, so a channel of N samples carries
// ceil(N/len(bits)) copies:
//
//	tagged, err := watermark.Embed(samples, bits)
//
// # Verifying
//
// Verify reads the first DefaultVoteRepeat copies back, takes a majority
// vote per bit position and compares the decoded text with the expected
// identifier by prefix:
//
//	res, err := watermark.Verify(tagged, "wf", watermark.DefaultVoteRepeat)
//	if err != nil {
//	    // ErrInsufficientAudioLength, ErrInvalidInput
//	}
//	fmt.Println(res.Matched, res.Recovered)
//
// A mismatch is reported through Result.Matched and is not an error.
//
// Everything in this package works on in-memory slices. Nothing is shared
// between calls, so independent channels can be processed concurrently.
package watermark
