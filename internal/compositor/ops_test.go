package compositor

import (
	"image"
	"image/color"
	"testing"
)

func uniform(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func near(a, b uint8, tol int) bool {
	d := int(a) - int(b)
	return d >= -tol && d <= tol
}

func TestMul8(t *testing.T) {
	cases := []struct{ a, b, want uint8 }{
		{0, 255, 0},
		{255, 255, 255},
		{200, 128, 100},
		{255, 128, 128},
		{128, 128, 64},
		{1, 1, 0},
	}
	for _, tc := range cases {
		if got := mul8(tc.a, tc.b); got != tc.want {
			t.Errorf("mul8(%d, %d) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestSeparateChannel(t *testing.T) {
	img := uniform(3, 2, color.NRGBA{R: 1, G: 2, B: 3, A: 4})
	for ch, want := range map[Channel]uint8{Red: 1, Green: 2, Blue: 3, Alpha: 4} {
		g := SeparateChannel(img, ch)
		if g.Bounds() != image.Rect(0, 0, 3, 2) {
			t.Fatalf("%v bounds = %v", ch, g.Bounds())
		}
		for _, v := range g.Pix {
			if v != want {
				t.Errorf("%v channel value %d, want %d", ch, v, want)
				break
			}
		}
	}
}

func TestSeparateChannel_OffsetBounds(t *testing.T) {
	img := image.NewNRGBA(image.Rect(5, 5, 7, 6))
	img.SetNRGBA(5, 5, color.NRGBA{B: 10, A: 255})
	img.SetNRGBA(6, 5, color.NRGBA{B: 20, A: 255})

	g := SeparateChannel(img, Blue)
	if g.Bounds() != image.Rect(0, 0, 2, 1) {
		t.Fatalf("bounds = %v, want origin-based 2x1", g.Bounds())
	}
	if g.GrayAt(0, 0).Y != 10 || g.GrayAt(1, 0).Y != 20 {
		t.Errorf("pixels = %v", g.Pix)
	}
}

func TestIsOpaque(t *testing.T) {
	img := uniform(2, 2, color.NRGBA{R: 9, A: 255})
	if !IsOpaque(img) {
		t.Error("fully opaque image reported translucent")
	}
	img.SetNRGBA(1, 1, color.NRGBA{R: 9, A: 254})
	if IsOpaque(img) {
		t.Error("image with one translucent pixel reported opaque")
	}
}

func TestMultiplyGray(t *testing.T) {
	dst := image.NewGray(image.Rect(0, 0, 2, 1))
	dst.Pix = []uint8{255, 200}
	src := image.NewGray(image.Rect(0, 0, 2, 1))
	src.Pix = []uint8{128, 0}

	MultiplyGray(dst, src)
	if dst.Pix[0] != 128 || dst.Pix[1] != 0 {
		t.Errorf("got %v, want [128 0]", dst.Pix)
	}
}

func TestMultiplyComposite(t *testing.T) {
	dst := uniform(3, 1, color.NRGBA{R: 200, G: 100, B: 50, A: 77})
	mask := image.NewGray(image.Rect(0, 0, 2, 1))
	mask.Pix = []uint8{255, 128}

	MultiplyComposite(dst, mask, color.Gray{Y: 0})

	want := []color.NRGBA{
		{R: 200, G: 100, B: 50, A: 77},
		{R: 100, G: 50, B: 25, A: 77},
		{R: 0, G: 0, B: 0, A: 77}, // outside the mask: background black
	}
	for x, w := range want {
		if got := dst.NRGBAAt(x, 0); got != w {
			t.Errorf("pixel %d = %v, want %v", x, got, w)
		}
	}
}

func TestSharpen_UniformIsUnchanged(t *testing.T) {
	c := color.NRGBA{R: 200, G: 100, B: 50, A: 255}
	out := Sharpen(uniform(8, 8, c), 1.0)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			got := out.NRGBAAt(x, y)
			if !near(got.R, c.R, 1) || !near(got.G, c.G, 1) || !near(got.B, c.B, 1) || got.A != c.A {
				t.Fatalf("pixel (%d,%d) = %v, want ~%v", x, y, got, c)
			}
		}
	}
}

func TestSharpen_ZeroSigmaCopies(t *testing.T) {
	src := uniform(2, 2, color.NRGBA{R: 1, A: 255})
	out := Sharpen(src, 0)
	out.SetNRGBA(0, 0, color.NRGBA{R: 99, A: 255})
	if src.NRGBAAt(0, 0).R != 1 {
		t.Error("Sharpen with sigma 0 must return a copy")
	}
}
