// Package input reads puzzle notes and move lists for the simulators.
package input

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

var ErrMalformed = errors.New("malformed input")

// Open returns a reader for path. "-" is stdin, and a .zst suffix is
// decompressed on the fly.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, ".zst") {
		return f, nil
	}
	dec, err := zstd.NewReader(f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return &zstdFile{f: f, dec: dec}, nil
}

type zstdFile struct {
	f   *os.File
	dec *zstd.Decoder
}

func (z *zstdFile) Read(p []byte) (int, error) { return z.dec.Read(p) }

func (z *zstdFile) Close() error {
	z.dec.Close()
	return z.f.Close()
}
