// SPDX-License-Identifier: EPL-2.0

package audio

import "bytes"

// SniffLen is the number of leading bytes Sniff needs to tell every known
// container apart.
const SniffLen = 12

// Sniff returns the format key matching the magic bytes at the start of
// header, or "" when none match.
func Sniff(header []byte) string {
	switch {
	case len(header) >= 12 && bytes.HasPrefix(header, []byte("RIFF")) && bytes.Equal(header[8:12], []byte("WAVE")):
		return "wav"
	case len(header) >= 12 && bytes.HasPrefix(header, []byte("FORM")) &&
		(bytes.Equal(header[8:12], []byte("AIFF")) || bytes.Equal(header[8:12], []byte("AIFC"))):
		return "aiff"
	case bytes.HasPrefix(header, []byte("OggS")):
		return "ogg"
	case bytes.HasPrefix(header, []byte("ID3")):
		return "mp3"
	case len(header) >= 2 && header[0] == 0xFF && header[1]&0xE0 == 0xE0:
		// MPEG audio frame sync
		return "mp3"
	}
	return ""
}

// ForHeader looks up the decoder for the format Sniff detects in header.
func (r *Registry) ForHeader(header []byte) (Decoder, error) {
	format := Sniff(header)
	if format == "" {
		return nil, ErrUnknownFormat
	}

	d, ok := r.Get(format)
	if !ok {
		return nil, ErrUnknownFormat
	}
	return d, nil
}
