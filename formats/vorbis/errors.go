// SPDX-License-Identifier: EPL-2.0

package vorbis

import "errors"

var (
	ErrNotOggVorbisFile = errors.New("not a valid ogg vorbis stream")
	ErrNoChannels       = errors.New("ogg vorbis stream declares no channels")
)
