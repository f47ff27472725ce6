package probe

import (
	"image"
	"io"
)

// Info is the header-level description of an image file.
type Info struct {
	Path   string
	Format string
	Width  int
	Height int
}

// Size returns the image dimensions as a point.
func (i Info) Size() image.Point { return image.Pt(i.Width, i.Height) }

// SameSize reports whether a and b have identical dimensions.
func SameSize(a, b Info) bool { return a.Size() == b.Size() }

// format pairs a decoder with its header reader.
type format struct {
	name         string
	decode       func(io.Reader) (image.Image, error)
	decodeConfig func(io.Reader) (image.Config, error)
}
