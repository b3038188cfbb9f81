// SPDX-License-Identifier: EPL-2.0

package watermark

import "fmt"

// Embed returns a copy of channel whose least significant bits carry bits,
// repeated cyclically until every sample holds one bit: sample i carries
// bits[i % len(bits)].
//
// Only bit 0 of each sample changes; the upper 15 bits and the sign are kept.
// channel itself is never modified. Empty channel or bits yield
// ErrInvalidInput and no output.
func Embed(channel []int16, bits Bits) ([]int16, error) {
	if len(bits) == 0 {
		return nil, fmt.Errorf("%w: empty bit sequence", ErrInvalidInput)
	}
	if len(channel) == 0 {
		return nil, fmt.Errorf("%w: empty sample channel", ErrInvalidInput)
	}

	out := make([]int16, len(channel))
	n := len(bits)
	j := 0
	for i, s := range channel {
		out[i] = (s &^ 1) | int16(bits[j]&1)
		j++
		if j == n {
			j = 0
		}
	}

	return out, nil
}

// Repeat reports how many (possibly partial) copies of an nBits long
// sequence Embed writes into a channel of the given length.
func Repeat(samples, nBits int) int {
	if samples <= 0 || nBits <= 0 {
		return 0
	}
	return (samples + nBits - 1) / nBits
}
