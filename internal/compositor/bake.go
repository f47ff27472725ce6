package compositor

import (
	"image"
	"image/color"
)

// DefaultSharpenSigma is the Gaussian sigma applied to the albedo before
// baking.
const DefaultSharpenSigma = 1.0

// BakeOptions tunes Bake.
type BakeOptions struct {
	SharpenSigma float64
}

// Bake returns the albedo with the parameter's blue channel multiplied into
// its RGB:
//
//  1. background is opaque black
//  2. sharpen the albedo
//  3. split the albedo alpha and the parameter blue
//  4. when the albedo is not fully opaque, blue *= alpha
//  5. albedo RGB *= blue, with background outside the mask
//
// The inputs are not modified. Albedo and parameter must be the same size.
func Bake(albedo, parameter *image.NRGBA, opts BakeOptions) (*image.NRGBA, error) {
	if as, ps := albedo.Bounds().Size(), parameter.Bounds().Size(); as != ps {
		return nil, validationf(nil, "albedo is %dx%d but parameter is %dx%d", as.X, as.Y, ps.X, ps.Y)
	}

	background := color.Gray{Y: 0}

	out := Sharpen(albedo, opts.SharpenSigma)
	mask := SeparateChannel(parameter, Blue)
	if !IsOpaque(out) {
		MultiplyGray(mask, SeparateChannel(out, Alpha))
	}
	MultiplyComposite(out, mask, background)
	return out, nil
}
