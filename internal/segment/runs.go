package segment

import (
	"fmt"
	"image"
)

// Run is a maximal horizontal interval [XStart, XEnd) of foreground pixels on
// row Y.
type Run struct {
	XStart int
	XEnd   int
	Y      int

	// parent is the index of this run's parent in the owning forest; a root
	// points at itself.
	parent int
}

// Len returns the number of pixels covered by the run.
func (r Run) Len() int {
	return r.XEnd - r.XStart
}

// Overlaps reports whether the x-intervals of r and o share at least one
// column. Runs that merely touch do not overlap.
func (r Run) Overlaps(o Run) bool {
	return r.XStart < o.XEnd && o.XStart < r.XEnd
}

// Touches reports whether below lies on the row directly under r and overlaps
// it, which is the only adjacency that joins two runs into one region.
func (r Run) Touches(below Run) bool {
	return below.Y == r.Y+1 && r.Overlaps(below)
}

// Before reports whether r comes earlier than o in scan order: a smaller row,
// or the same row and a smaller start column.
func (r Run) Before(o Run) bool {
	if r.Y != o.Y {
		return r.Y < o.Y
	}
	return r.XStart < o.XStart
}

// Rect returns the pixel rectangle covered by the run.
func (r Run) Rect() image.Rectangle {
	return image.Rect(r.XStart, r.Y, r.XEnd, r.Y+1)
}

func (r Run) String() string {
	return fmt.Sprintf("run[%d,%d)@%d", r.XStart, r.XEnd, r.Y)
}

// ExtractRuns scans a binary image row by row, left to right, and returns
// every maximal run of Foreground pixels. The result is ordered by row and,
// within a row, by start column. Each run starts out as its own root.
func ExtractRuns(bin *image.Gray) []Run {
	if bin == nil {
		panic("segment: ExtractRuns called with nil image")
	}

	b := bin.Bounds()
	w := b.Dx()
	var runs []Run
	for y := range b.Dy() {
		row := bin.Pix[bin.PixOffset(b.Min.X, b.Min.Y+y):]
		x := 0
		for x < w {
			if row[x] != Foreground {
				x++
				continue
			}
			start := x
			for x < w && row[x] == Foreground {
				x++
			}
			runs = append(runs, Run{XStart: start, XEnd: x, Y: y, parent: len(runs)})
		}
	}
	return runs
}
