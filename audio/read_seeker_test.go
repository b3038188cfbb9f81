// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"testing/iotest"
)

func TestReadSeeker_Seekable(t *testing.T) {
	t.Parallel()

	r := bytes.NewReader([]byte("RIFF"))
	got, err := ReadSeeker(r)
	if err != nil {
		t.Fatalf("ReadSeeker() error = %v", err)
	}
	if got != io.ReadSeeker(r) {
		t.Error("ReadSeeker() wrapped a reader that can already seek")
	}
}

func TestReadSeeker_Buffers(t *testing.T) {
	t.Parallel()

	data := []byte("RIFF\x24\x00\x00\x00WAVE")
	rs, err := ReadSeeker(iotest.OneByteReader(bytes.NewReader(data)))
	if err != nil {
		t.Fatalf("ReadSeeker() error = %v", err)
	}

	if _, err := rs.Seek(8, io.SeekStart); err != nil {
		t.Fatalf("Seek() error = %v", err)
	}
	rest, err := io.ReadAll(rs)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if string(rest) != "WAVE" {
		t.Errorf("read after seek = %q, want %q", rest, "WAVE")
	}
}

func TestReadSeeker_Error(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	if _, err := ReadSeeker(iotest.ErrReader(boom)); !errors.Is(err, boom) {
		t.Errorf("ReadSeeker() error = %v, want %v", err, boom)
	}
}
