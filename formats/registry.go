// SPDX-License-Identifier: EPL-2.0

package formats

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/r128scan/audio"
	"github.com/ik5/r128scan/formats/aiff"
	"github.com/ik5/r128scan/formats/flac"
	"github.com/ik5/r128scan/formats/mp3"
	"github.com/ik5/r128scan/formats/vorbis"
	"github.com/ik5/r128scan/formats/wav"
)

// NewRegistry returns a registry with every bundled decoder registered under
// the file extensions it handles.
func NewRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})
	reg.Register("flac", flac.Decoder{})
	return reg
}

// Opener opens audio files by path, picking the decoder from the extension.
type Opener struct {
	Registry *audio.Registry
}

// NewOpener returns an Opener backed by NewRegistry.
func NewOpener() Opener {
	return Opener{Registry: NewRegistry()}
}

// Open decodes the file at path. The returned Source owns the file and
// closes it on Close.
func (o Opener) Open(path string) (audio.Source, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	dec, ok := o.Registry.Get(ext)
	if !ok {
		return nil, fmt.Errorf("%w: %q", audio.ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	src, err := dec.Decode(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return &fileSource{Source: src, file: f}, nil
}

// fileSource ties a decoded stream to the file it reads from.
type fileSource struct {
	audio.Source
	file *os.File
}

func (s *fileSource) Close() error {
	srcErr := s.Source.Close()
	if err := s.file.Close(); err != nil {
		return fmt.Errorf("close file: %w", err)
	}
	return srcErr
}
