package compositor

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Channel selects one component of an NRGBA pixel.
type Channel int

const (
	Red Channel = iota
	Green
	Blue
	Alpha
)

func (c Channel) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Alpha:
		return "alpha"
	}
	return "unknown"
}

// mul8 multiplies two 8-bit intensities as fractions of 255, rounding to
// nearest.
func mul8(a, b uint8) uint8 {
	return uint8((uint32(a)*uint32(b) + 127) / 255)
}

// SeparateChannel extracts channel ch of img as a grayscale image. The
// result always starts at the origin.
func SeparateChannel(img *image.NRGBA, ch Channel) *image.Gray {
	b := img.Bounds()
	out := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		src := img.Pix[img.PixOffset(b.Min.X, b.Min.Y+y):]
		dst := out.Pix[y*out.Stride:]
		for x := 0; x < b.Dx(); x++ {
			dst[x] = src[x*4+int(ch)]
		}
	}
	return out
}

// IsOpaque reports whether every pixel of img has full alpha.
func IsOpaque(img *image.NRGBA) bool {
	return img.Opaque()
}

// MultiplyGray sets dst = dst*src/255 wherever the two images overlap.
func MultiplyGray(dst, src *image.Gray) {
	r := dst.Bounds().Intersect(src.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			i := dst.PixOffset(x, y)
			dst.Pix[i] = mul8(dst.Pix[i], src.Pix[src.PixOffset(x, y)])
		}
	}
}

// MultiplyComposite multiplies the RGB of every dst pixel by the mask value
// at the same coordinate. Pixels outside the mask multiply by background.
// Alpha is left alone.
func MultiplyComposite(dst *image.NRGBA, mask *image.Gray, background color.Gray) {
	b := dst.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			m := background.Y
			if (image.Point{X: x, Y: y}).In(mask.Rect) {
				m = mask.Pix[mask.PixOffset(x, y)]
			}
			i := dst.PixOffset(x, y)
			dst.Pix[i+0] = mul8(dst.Pix[i+0], m)
			dst.Pix[i+1] = mul8(dst.Pix[i+1], m)
			dst.Pix[i+2] = mul8(dst.Pix[i+2], m)
		}
	}
}

// Sharpen returns an unsharp-masked copy of img with a Gaussian of the given
// sigma. A non-positive sigma returns an unmodified copy.
func Sharpen(img image.Image, sigma float64) *image.NRGBA {
	return imaging.Sharpen(img, sigma)
}
