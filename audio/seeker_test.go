// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestReadSeeker_PassThrough(t *testing.T) {
	t.Parallel()

	in := bytes.NewReader([]byte("RIFF"))
	rs, err := ReadSeeker(in)
	if err != nil {
		t.Fatalf("ReadSeeker() error = %v", err)
	}
	if rs != io.ReadSeeker(in) {
		t.Error("ReadSeeker() wrapped a reader that could already seek")
	}
}

func TestReadSeeker_Buffers(t *testing.T) {
	t.Parallel()

	rs, err := ReadSeeker(io.MultiReader(strings.NewReader("FORM"), strings.NewReader("AIFF")))
	if err != nil {
		t.Fatalf("ReadSeeker() error = %v", err)
	}

	if _, err := rs.Seek(4, io.SeekStart); err != nil {
		t.Fatalf("Seek() error = %v", err)
	}
	rest, _ := io.ReadAll(rs)
	if string(rest) != "AIFF" {
		t.Errorf("after Seek(4) read %q, want %q", rest, "AIFF")
	}
}

func TestReadSeeker_ReadError(t *testing.T) {
	t.Parallel()

	if _, err := ReadSeeker(errReader{}); err == nil {
		t.Error("ReadSeeker() error = nil, want read failure")
	}
}
