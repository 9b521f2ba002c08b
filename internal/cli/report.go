package cli

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/jmylchreest/runseg/internal/colour"
	"github.com/jmylchreest/runseg/internal/segment"
)

const swatchWidth = 4

// writeReport prints the summary of a segmented image followed by its top
// largest components. top <= 0 lists every component.
func writeReport(w io.Writer, name string, p *segment.Pipeline, top int, preview bool) error {
	s := p.Summary()
	bounds := p.Source().Bounds()

	if _, err := fmt.Fprintf(w, "%s: %dx%d, threshold %d, %d components, %d foreground pixels\n",
		name, bounds.Dx(), bounds.Dy(), p.Threshold(), s.Components, s.Foreground); err != nil {
		return err
	}
	if s.Components == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(w, "area: min %d, max %d, mean %.1f, stddev %.1f\n\n",
		s.MinArea, s.MaxArea, s.MeanArea, s.StdDevArea); err != nil {
		return err
	}

	_, err := io.WriteString(w, componentTable(w, p.Components(), top, preview).Render())
	return err
}

// componentTable lists components by descending area, ties in ID order.
func componentTable(w io.Writer, components []segment.Component, top int, preview bool) *Table {
	sorted := slices.Clone(components)
	slices.SortStableFunc(sorted, func(a, b segment.Component) int {
		return cmp.Compare(b.Area, a.Area)
	})
	if top > 0 && len(sorted) > top {
		sorted = sorted[:top]
	}

	swatches := preview && colour.SupportsANSIColours(w)
	headers := []string{"ID", "COLOUR", "AREA", "RUNS", "BOUNDS"}
	if swatches {
		headers = append(headers, "")
	}

	table := NewTable(headers)
	table.AlignRight(0)
	table.AlignRight(2)
	table.AlignRight(3)

	for _, c := range sorted {
		rgb := colour.ToRGB(c.Colour)
		row := []string{
			strconv.Itoa(c.ID),
			rgb.Hex(),
			strconv.Itoa(c.Area),
			strconv.Itoa(c.Runs),
			c.Bounds.String(),
		}
		if swatches {
			row = append(row, colour.ColourPreview(rgb, swatchWidth))
		}
		table.AddRow(row)
	}
	return table
}
