package segment

import (
	"image"
	"image/color"
)

// Luma returns the Rec. 601 luminance of an 8-bit RGB triple. It agrees with
// color.GrayModel.
func Luma(r, g, b uint8) uint8 {
	return luma16(uint32(r)*0x101, uint32(g)*0x101, uint32(b)*0x101)
}

// luma16 weighs 16-bit channels with the color.GrayModel coefficients.
func luma16(r, g, b uint32) uint8 {
	y := (19595*r + 38470*g + 7471*b + 1<<15) >> 24
	return uint8(y) // #nosec G115 -- weights sum to 1<<16, so y <= 255
}

// Grayscale converts src to a single-channel luminance image anchored at the
// origin. Luminance depends on the colour channels only: premultiplied
// colours are converted back to straight alpha and alpha is then dropped.
// A *image.Gray source is copied unchanged.
func Grayscale(src image.Image) *image.Gray {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	gray := image.NewGray(image.Rect(0, 0, w, h))

	if g, ok := src.(*image.Gray); ok {
		for y := range h {
			copy(gray.Pix[y*gray.Stride:y*gray.Stride+w], g.Pix[g.PixOffset(b.Min.X, b.Min.Y+y):])
		}
		return gray
	}

	for y := range h {
		row := gray.Pix[y*gray.Stride : y*gray.Stride+w]
		for x := range w {
			c := color.NRGBAModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			row[x] = Luma(c.R, c.G, c.B)
		}
	}
	return gray
}
