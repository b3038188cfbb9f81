// SPDX-License-Identifier: EPL-2.0

package watermark

import "fmt"

// DefaultVoteRepeat is the number of copies voted on when checking a
// watermark.
const DefaultVoteRepeat = 1000

// Votes returns the repeat count Extract actually uses for a channel of
// channelLen samples: repeat itself, or as many whole copies of nBits as fit
// when the channel is shorter than nBits*repeat.
func Votes(channelLen, nBits, repeat int) int {
	if nBits <= 0 || repeat <= 0 || channelLen <= 0 {
		return 0
	}
	// nBits*repeat may overflow
	if whole := channelLen / nBits; repeat > whole {
		return whole
	}
	return repeat
}

// Extract recovers an nBits long sequence from the least significant bits of
// channel by majority vote.
//
// The first nBits*repeat samples are read as repeat consecutive blocks of
// nBits bits. Bit j of the result is 1 when at least half of the blocks carry
// a 1 at position j. When the channel is shorter than nBits*repeat, repeat is
// reduced to the number of whole blocks available; when not even one block
// fits, ErrInsufficientAudioLength is returned.
func Extract(channel []int16, nBits, repeat int) (Bits, error) {
	if nBits < 1 {
		return nil, fmt.Errorf("%w: bit count %d", ErrInvalidInput, nBits)
	}
	if repeat < 1 {
		return nil, fmt.Errorf("%w: repeat count %d", ErrInvalidInput, repeat)
	}

	repeat = Votes(len(channel), nBits, repeat)
	if repeat == 0 {
		return nil, fmt.Errorf("%w: %d samples, need at least %d",
			ErrInsufficientAudioLength, len(channel), nBits)
	}

	ones := make([]int, nBits)
	for block := range repeat {
		base := block * nBits
		for j := range nBits {
			ones[j] += int(channel[base+j] & 1)
		}
	}

	bits := make(Bits, nBits)
	for j, count := range ones {
		// mean >= 0.5, ties go to 1
		if 2*count >= repeat {
			bits[j] = 1
		}
	}

	return bits, nil
}
