package compositor

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"github.com/backmassage/texbake/internal/probe"
)

// Codec reads and writes images. Implementations must be safe for
// concurrent use.
type Codec interface {
	Decode(path string) (*image.NRGBA, error)
	Encode(img image.Image, path string) error
}

// ImagingCodec decodes any format known to the probe package and writes
// 32-bit RGBA PNG through imaging, opaque or not.
type ImagingCodec struct{}

// rgbaOut hides the opacity of an image from the PNG encoder, which would
// otherwise drop the alpha channel of opaque images.
type rgbaOut struct{ *image.NRGBA }

func (rgbaOut) Opaque() bool { return false }

var _ Codec = ImagingCodec{}

// Decode reads path and returns it as an origin-based NRGBA image.
func (ImagingCodec) Decode(path string) (*image.NRGBA, error) {
	img, err := probe.Open(path)
	if err != nil {
		return nil, err
	}
	return imaging.Clone(img), nil
}

// Encode writes img to path as PNG. The data goes to a hidden temporary
// file next to path first and is renamed into place, so path is either the
// old file or the complete new one.
func (ImagingCodec) Encode(img image.Image, path string) (err error) {
	tmp := filepath.Join(filepath.Dir(path), fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.NewString()))
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()

	nrgba, ok := img.(*image.NRGBA)
	if !ok {
		nrgba = imaging.Clone(img)
	}
	if err = imaging.Encode(f, rgbaOut{nrgba}, imaging.PNG); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
