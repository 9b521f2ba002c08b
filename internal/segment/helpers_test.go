package segment

import (
	"image"
	"image/color"
)

// newCanvas returns a w×h RGBA image filled with bg.
func newCanvas(w, h int, bg color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, bg)
		}
	}
	return img
}

// fillRect paints r on img with c.
func fillRect(img *image.RGBA, r image.Rectangle, c color.Color) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.Set(x, y, c)
		}
	}
}

// binaryFromRows builds a binary image from rows of '#' (foreground) and '.'
// (background).
func binaryFromRows(rows ...string) *image.Gray {
	w := 0
	if len(rows) > 0 {
		w = len(rows[0])
	}
	img := image.NewGray(image.Rect(0, 0, w, len(rows)))
	for y, row := range rows {
		for x, ch := range row {
			if ch == '#' {
				img.SetGray(x, y, color.Gray{Y: Foreground})
			}
		}
	}
	return img
}

// distinctColours counts the pixels of each non-black colour in img.
func distinctColours(img *image.RGBA) map[color.RGBA]int {
	counts := make(map[color.RGBA]int)
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.RGBAAt(x, y)
			if c.R == 0 && c.G == 0 && c.B == 0 {
				continue
			}
			counts[c]++
		}
	}
	return counts
}
