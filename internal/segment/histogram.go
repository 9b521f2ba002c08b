// Package segment labels the connected foreground regions of an image.
//
// The pipeline reduces a source image to luminance, binarises it at the Otsu
// threshold, extracts horizontal runs of foreground pixels, merges vertically
// overlapping runs with a union-find forest and paints every resulting
// component in its own colour.
package segment

import "image"

// Histogram holds one pixel count per 8-bit intensity.
type Histogram [256]int

// NewHistogram tallies the intensities of a grayscale image.
// The counts always sum to the pixel area of the image.
func NewHistogram(gray *image.Gray) Histogram {
	var h Histogram
	if gray == nil {
		return h
	}

	b := gray.Bounds()
	w := b.Dx()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		off := gray.PixOffset(b.Min.X, y)
		for _, v := range gray.Pix[off : off+w] {
			h[v]++
		}
	}
	return h
}

// Total returns the number of pixels counted.
func (h Histogram) Total() int {
	total := 0
	for _, c := range h {
		total += c
	}
	return total
}
