package segment

import (
	"image"
	"testing"
)

func TestExtractRuns(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want []Run
	}{
		{
			name: "empty image",
			rows: []string{"....", "...."},
			want: nil,
		},
		{
			name: "full rows",
			rows: []string{"###", "###"},
			want: []Run{{XStart: 0, XEnd: 3, Y: 0}, {XStart: 0, XEnd: 3, Y: 1}},
		},
		{
			name: "several runs per row",
			rows: []string{"#.##.#", ".###.."},
			want: []Run{
				{XStart: 0, XEnd: 1, Y: 0},
				{XStart: 2, XEnd: 4, Y: 0},
				{XStart: 5, XEnd: 6, Y: 0},
				{XStart: 1, XEnd: 4, Y: 1},
			},
		},
		{
			name: "run ends at right edge",
			rows: []string{"..##"},
			want: []Run{{XStart: 2, XEnd: 4, Y: 0}},
		},
		{
			name: "single pixels",
			rows: []string{"#", ".", "#"},
			want: []Run{{XStart: 0, XEnd: 1, Y: 0}, {XStart: 0, XEnd: 1, Y: 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractRuns(binaryFromRows(tt.rows...))
			if len(got) != len(tt.want) {
				t.Fatalf("ExtractRuns() returned %d runs, want %d: %v", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i].XStart != tt.want[i].XStart || got[i].XEnd != tt.want[i].XEnd || got[i].Y != tt.want[i].Y {
					t.Errorf("run %d = %v, want %v", i, got[i], tt.want[i])
				}
				if got[i].parent != i {
					t.Errorf("run %d parent = %d, want itself", i, got[i].parent)
				}
			}
		})
	}
}

func TestExtractRunsScanOrder(t *testing.T) {
	bin := binaryFromRows(
		"#.#.#.#.",
		".#.#.#.#",
		"##..##..",
		"..##..##",
	)

	runs := ExtractRuns(bin)

	for i := 1; i < len(runs); i++ {
		if !runs[i-1].Before(runs[i]) {
			t.Errorf("run %v precedes %v out of scan order", runs[i-1], runs[i])
		}
		if runs[i-1].Y == runs[i].Y && runs[i-1].XEnd > runs[i].XStart {
			t.Errorf("runs %v and %v overlap on one row", runs[i-1], runs[i])
		}
	}
}

func TestExtractRunsCoversForeground(t *testing.T) {
	bin := binaryFromRows(
		"##.###.#",
		"#######.",
		"........",
		".#.#.#.#",
	)

	covered := image.NewGray(bin.Bounds())
	for _, r := range ExtractRuns(bin) {
		for x := r.XStart; x < r.XEnd; x++ {
			covered.Pix[covered.PixOffset(x, r.Y)] = Foreground
		}
	}

	for i := range bin.Pix {
		if bin.Pix[i] != covered.Pix[i] {
			t.Fatalf("pixel %d: image %d, runs cover %d", i, bin.Pix[i], covered.Pix[i])
		}
	}
}

func TestExtractRunsZeroArea(t *testing.T) {
	if runs := ExtractRuns(image.NewGray(image.Rect(0, 0, 0, 3))); len(runs) != 0 {
		t.Errorf("expected no runs, got %v", runs)
	}
}

func TestRunGeometry(t *testing.T) {
	a := Run{XStart: 0, XEnd: 3, Y: 0}
	b := Run{XStart: 2, XEnd: 5, Y: 1}
	c := Run{XStart: 3, XEnd: 6, Y: 1}
	d := Run{XStart: 0, XEnd: 3, Y: 2}

	if a.Len() != 3 {
		t.Errorf("Len() = %d, want 3", a.Len())
	}
	if !a.Touches(b) {
		t.Error("a should touch b: adjacent rows, one shared column")
	}
	if a.Touches(c) {
		t.Error("a should not touch c: intervals only meet at an edge")
	}
	if a.Touches(d) {
		t.Error("a should not touch d: rows are two apart")
	}
	if b.Touches(a) {
		t.Error("Touches expects the second run on the row below")
	}
	if !a.Before(b) || b.Before(a) || !b.Before(c) {
		t.Error("Before does not follow scan order")
	}
	if a.Rect() != image.Rect(0, 0, 3, 1) {
		t.Errorf("Rect() = %v", a.Rect())
	}
}
