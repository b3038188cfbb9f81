// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ik5/audmark/audio"
)

// inputSource closes the decoded stream and then the file under it.
type inputSource struct {
	audio.Source
	file *os.File
}

func (s *inputSource) Close() error {
	return errors.Join(s.Source.Close(), s.file.Close())
}

// OpenInput opens path and decodes it with the decoder registered for its
// extension. Files with an unknown or missing extension are identified by
// their leading bytes instead.
func OpenInput(reg *audio.Registry, path string) (audio.Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}

	dec, err := reg.ForPath(path)
	if err != nil {
		dec, err = sniff(reg, f)
	}
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	src, err := dec.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	return &inputSource{Source: src, file: f}, nil
}

func sniff(reg *audio.Registry, f *os.File) (audio.Decoder, error) {
	header := make([]byte, audio.SniffLen)
	n, err := io.ReadFull(f, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewinding input: %w", err)
	}

	return reg.ForHeader(header[:n])
}
