// SPDX-License-Identifier: EPL-2.0

package watermark

import "strings"

// Bits is an ordered sequence of single-bit values. Every element is 0 or 1.
type Bits []uint8

// EncodeText expands the UTF-8 encoding of text into bits, eight per byte,
// most significant bit first.
func EncodeText(text string) Bits {
	bits := make(Bits, 0, len(text)*8)
	for i := 0; i < len(text); i++ {
		b := text[i]
		for shift := 7; shift >= 0; shift-- {
			bits = append(bits, (b>>shift)&1)
		}
	}

	return bits
}

// DecodeBits packs bits back into bytes, most significant bit first, and
// returns them as text.
//
// Trailing bits that do not fill a whole byte are dropped. Byte sequences
// that are not valid UTF-8 are dropped as well, so the result is always a
// valid string even when the bits were corrupted.
func DecodeBits(bits Bits) string {
	n := len(bits) / 8
	out := make([]byte, n)
	for i := range n {
		var b byte
		for _, bit := range bits[i*8 : i*8+8] {
			b = (b << 1) | (bit & 1)
		}
		out[i] = b
	}

	return strings.ToValidUTF8(string(out), "")
}

// String renders bits as a string of '0' and '1'.
func (b Bits) String() string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, bit := range b {
		sb.WriteByte('0' + bit&1)
	}
	return sb.String()
}
