// Package audio turns files on disk into beep streams.
package audio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
	"github.com/samber/lo"
)

var (
	ErrIO     = errors.New("file not accessible")
	ErrDecode = errors.New("cannot decode audio")
)

// SupportedExtensions lists the file extensions the decoder understands, lower case.
var SupportedExtensions = []string{".mp3", ".wav", ".flac", ".ogg"}

type decodeFunc func(f *os.File) (beep.StreamSeekCloser, beep.Format, error)

var decoders = map[string]decodeFunc{
	".mp3": func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) {
		return mp3.Decode(f)
	},
	".wav": func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) {
		return wav.Decode(f)
	},
	".flac": func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) {
		return flac.Decode(f)
	},
	".ogg": func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) {
		return vorbis.Decode(f)
	},
}

// Supported reports whether path has a supported audio extension.
func Supported(path string) bool {
	return lo.Contains(SupportedExtensions, strings.ToLower(filepath.Ext(path)))
}

// Decoder opens audio files by extension. The zero value is ready to use.
type Decoder struct{}

// Open decodes path into a stream. The stream owns the file; closing the
// stream closes the file.
func (Decoder) Open(path string) (beep.StreamSeekCloser, beep.Format, error) {
	decode, ok := decoders[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return nil, beep.Format{}, fmt.Errorf("%w: %s: unsupported format", ErrDecode, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, fmt.Errorf("%w: %v", ErrIO, err)
	}

	streamer, format, err := decode(f)
	if err != nil {
		_ = f.Close()
		return nil, beep.Format{}, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}
	return streamer, format, nil
}

// Probe returns the play length of path. known is false when the decoder
// cannot tell the length.
func (d Decoder) Probe(path string) (length time.Duration, known bool, err error) {
	streamer, format, err := d.Open(path)
	if err != nil {
		return 0, false, err
	}
	defer closeQuietly(streamer)

	samples := streamer.Len()
	if samples <= 0 || format.SampleRate <= 0 {
		return 0, false, nil
	}
	return format.SampleRate.D(samples), true, nil
}

func closeQuietly(c io.Closer) {
	_ = c.Close()
}
