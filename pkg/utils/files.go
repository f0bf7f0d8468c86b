package utils

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/bodgit/sevenzip"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/ulikunitz/xz"
)

// LoadFile loads the given file and performs decompression if necessary,
// based on the file extension. Archives (.zip, .7z) yield their first
// regular file.
func LoadFile(filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	return Decompress(filepath.Ext(filename), data)
}

// Decompress decodes data according to the given file extension. Unknown
// extensions, and no extension, return data untouched.
func Decompress(ext string, data []byte) ([]byte, error) {
	var decoder io.Reader
	var err error

	switch strings.ToLower(ext) {
	case ".gz":
		decoder, err = gzip.NewReader(bytes.NewReader(data))
	case ".xz":
		decoder, err = xz.NewReader(bytes.NewReader(data))
	case ".lz4":
		decoder = lz4.NewReader(bytes.NewReader(data))
	case ".br":
		decoder = brotli.NewReader(bytes.NewReader(data))
	case ".zst":
		var d *zstd.Decoder
		d, err = zstd.NewReader(bytes.NewReader(data))
		if err == nil {
			defer d.Close()
			decoder = d
		}
	case ".zip":
		decoder, err = firstZipFile(data)
	case ".7z":
		decoder, err = first7zFile(data)
	default:
		return data, nil
	}

	if err != nil {
		return nil, fmt.Errorf("decompress %s: %w", ext, err)
	}
	if c, ok := decoder.(io.Closer); ok {
		defer c.Close()
	}

	out, err := io.ReadAll(decoder)
	if err != nil {
		return nil, fmt.Errorf("decompress %s: %w", ext, err)
	}

	return out, nil
}

func firstZipFile(data []byte) (io.Reader, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		return f.Open()
	}
	return nil, fmt.Errorf("zip archive is empty")
}

func first7zFile(data []byte) (io.Reader, error) {
	r, err := sevenzip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		return f.Open()
	}
	return nil, fmt.Errorf("7z archive is empty")
}
