// SPDX-License-Identifier: EPL-2.0

package watermark

import "errors"

var (
	// ErrInvalidInput indicates an empty bit sequence, an empty sample
	// channel, or a non-positive bit count or repeat count.
	ErrInvalidInput = errors.New("invalid watermark input")

	// ErrInsufficientAudioLength indicates the channel is too short to hold
	// even one full copy of the expected bit sequence.
	ErrInsufficientAudioLength = errors.New("audio too short to contain the watermark bits even once")
)
