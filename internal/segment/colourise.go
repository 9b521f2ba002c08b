package segment

import (
	"image"
	"image/color"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"
)

// Component describes one connected foreground region.
type Component struct {
	// ID numbers components in the scan order of their roots, from 0.
	ID int
	// Root is the forest index of the region's topmost, leftmost run.
	Root int
	// Runs is the number of runs in the region.
	Runs int
	// Area is the number of pixels in the region.
	Area int
	// Bounds is the smallest rectangle containing the region.
	Bounds image.Rectangle
	// Colour is the colour the region is painted with.
	Colour color.RGBA
}

// RandomColour draws a fully opaque colour with a uniform hue and saturation
// and value in [0.5, 1), so no region comes out dark or washed out. Hue,
// saturation and value are drawn from rng in that order.
func RandomColour(rng *rand.Rand) color.RGBA {
	h := rng.Float64()
	s := 0.5 + rng.Float64()*0.5
	v := 0.5 + rng.Float64()*0.5
	r, g, b := colorful.Hsv(h*360, s, v).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// Colourise paints every run of the forest in the colour of its component on
// an opaque black canvas of the given size.
//
// The first pass assigns a colour to each root when it is first reached in
// scan order; the second paints each run with its root's colour. Because the
// root is resolved per run, runs of different components may interleave in
// scan order without borrowing each other's colour.
func Colourise(width, height int, f *Forest, rng *rand.Rand) (*image.RGBA, []Component) {
	if f == nil || rng == nil {
		panic("segment: Colourise called with nil forest or random source")
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.Black, image.Point{}, draw.Src)

	byRoot := make(map[int]int)
	var components []Component
	for i := range f.Len() {
		root := f.Find(i)
		if _, ok := byRoot[root]; ok {
			continue
		}
		byRoot[root] = len(components)
		components = append(components, Component{
			ID:     len(components),
			Root:   root,
			Colour: RandomColour(rng),
		})
	}

	for i := range f.Len() {
		run := f.Run(i)
		c := &components[byRoot[f.Find(i)]]
		for x := run.XStart; x < run.XEnd; x++ {
			img.SetRGBA(x, run.Y, c.Colour)
		}
		c.Runs++
		c.Area += run.Len()
		c.Bounds = c.Bounds.Union(run.Rect())
	}

	return img, components
}
