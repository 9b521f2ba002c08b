package cli

import (
	"fmt"
	"strconv"

	"github.com/jmylchreest/runseg/internal/colour"
	"github.com/jmylchreest/runseg/internal/image"
	"github.com/jmylchreest/runseg/internal/segment"
	"github.com/spf13/cobra"
)

var (
	// Threshold command flags
	thresholdHistogram bool
)

func newThresholdCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "threshold <image>",
		Short: "Print the Otsu threshold of an image",
		Long: `Print the Otsu threshold of an image and the share of its pixels that are
foreground, i.e. strictly brighter than the threshold.

Examples:
  # Print the threshold
  runseg threshold cells.png

  # Include every non-empty histogram bin
  runseg threshold --histogram cells.png`,
		Args: cobra.ExactArgs(1),
		RunE: runThreshold,
	}

	cmd.Flags().BoolVar(&thresholdHistogram, "histogram", false, "print the non-empty histogram bins")

	return cmd
}

// runThreshold executes the threshold command.
func runThreshold(cmd *cobra.Command, args []string) error {
	imagePath := args[0]

	if err := image.ValidateImagePath(imagePath); err != nil {
		return fmt.Errorf("invalid image path: %w", err)
	}

	src, err := image.NewFileLoader().Load(imagePath)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}

	p, err := segment.New(src, segment.WithLogger(newLogger(cmd)))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	hist := p.Histogram()
	t := p.Threshold()
	total := hist.Total()
	fg := foregroundCount(hist, t)

	level := strconv.Itoa(int(t))
	if colour.SupportsANSIColours(out) {
		level += " " + colour.ColourPreviewWithText(colour.RGB{R: t, G: t, B: t}, level, 5)
	}
	fmt.Fprintf(out, "threshold: %s\n", level)
	fmt.Fprintf(out, "foreground: %d/%d (%.2f%%)\n", fg, total, percent(fg, total))

	if !thresholdHistogram {
		return nil
	}

	table := NewTable([]string{"BIN", "COUNT", "SHARE", ""})
	table.AlignRight(0)
	table.AlignRight(1)
	table.AlignRight(2)
	for v, n := range hist {
		if n == 0 {
			continue
		}
		side := "background"
		if v > int(t) {
			side = "foreground"
		}
		table.AddRow([]string{
			strconv.Itoa(v),
			strconv.Itoa(n),
			fmt.Sprintf("%.2f%%", percent(n, total)),
			side,
		})
	}
	fmt.Fprintln(out)
	fmt.Fprint(out, table.Render())
	return nil
}

// foregroundCount returns the number of pixels brighter than threshold.
func foregroundCount(h segment.Histogram, threshold uint8) int {
	n := 0
	for _, c := range h[int(threshold)+1:] {
		n += c
	}
	return n
}

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(n) / float64(total)
}
