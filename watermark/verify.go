// SPDX-License-Identifier: EPL-2.0

package watermark

import (
	"fmt"
	"strings"
)

// Result is the outcome of Verify. A mismatch is a normal result, not an
// error.
type Result struct {
	// Matched is true when Recovered starts with the expected identifier.
	Matched bool
	// Recovered is the text decoded from the voted bits.
	Recovered string
	// Votes is the number of copies actually voted on.
	Votes int
}

// Verify recovers a watermark of the same bit length as expected from
// channel and reports whether the recovered text starts with expected.
// The comparison is byte exact and case sensitive.
func Verify(channel []int16, expected string, voteRepeat int) (Result, error) {
	want := EncodeText(expected)
	if len(want) == 0 {
		return Result{}, fmt.Errorf("%w: empty identifier", ErrInvalidInput)
	}

	bits, err := Extract(channel, len(want), voteRepeat)
	if err != nil {
		return Result{}, err
	}

	recovered := DecodeBits(bits)
	return Result{
		Matched:   strings.HasPrefix(recovered, expected),
		Recovered: recovered,
		Votes:     Votes(len(channel), len(want), voteRepeat),
	}, nil
}
