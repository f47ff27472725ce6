package probe

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrUnsupported is returned for files whose extension has no decoder.
var ErrUnsupported = errors.New("unsupported image format")

var formats = map[string]format{
	"tga": {name: "tga", decode: tga.Decode, decodeConfig: tga.DecodeConfig},
	"png": {name: "png", decode: png.Decode, decodeConfig: png.DecodeConfig},
	"bmp": {name: "bmp", decode: bmp.Decode, decodeConfig: bmp.DecodeConfig},
	"tif": {name: "tiff", decode: tiff.Decode, decodeConfig: tiff.DecodeConfig},
}

// Supported reports whether files with extension ext (without the dot, any
// case) can be decoded.
func Supported(ext string) bool {
	_, ok := formats[strings.ToLower(ext)]
	return ok
}

// Extensions returns the supported extensions in sorted order.
func Extensions() []string {
	exts := make([]string, 0, len(formats))
	for ext := range formats {
		exts = append(exts, ext)
	}
	slices.Sort(exts)
	return exts
}

func lookup(path string) (format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	f, ok := formats[ext]
	if !ok {
		return format{}, fmt.Errorf("%w: %q", ErrUnsupported, path)
	}
	return f, nil
}

// Probe reads only the header of path and returns its format and size.
func Probe(path string) (Info, error) {
	f, err := lookup(path)
	if err != nil {
		return Info{}, err
	}
	fh, err := os.Open(path)
	if err != nil {
		return Info{}, err
	}
	defer fh.Close()

	cfg, err := f.decodeConfig(fh)
	if err != nil {
		return Info{}, fmt.Errorf("read %s header %q: %w", f.name, path, err)
	}
	return Info{Path: path, Format: f.name, Width: cfg.Width, Height: cfg.Height}, nil
}

// Open decodes the whole image at path.
func Open(path string) (image.Image, error) {
	f, err := lookup(path)
	if err != nil {
		return nil, err
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	img, err := f.decode(fh)
	if err != nil {
		return nil, fmt.Errorf("decode %s %q: %w", f.name, path, err)
	}
	return img, nil
}
