package segment

import "image"

// Pixel values of a binary image.
const (
	Background uint8 = 0
	Foreground uint8 = 255
)

// Binarize marks every pixel brighter than threshold as Foreground and every
// other pixel as Background.
func Binarize(gray *image.Gray, threshold uint8) *image.Gray {
	if gray == nil {
		panic("segment: Binarize called with nil image")
	}

	b := gray.Bounds()
	w := b.Dx()
	bin := image.NewGray(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		src := gray.Pix[gray.PixOffset(b.Min.X, y):]
		dst := bin.Pix[bin.PixOffset(b.Min.X, y):]
		for x := range w {
			if src[x] > threshold {
				dst[x] = Foreground
			} else {
				dst[x] = Background
			}
		}
	}
	return bin
}
