package cli

import (
	"strings"
)

// Table formats rows into left-aligned columns sized to their widest cell.
// ANSI escape sequences do not count towards a cell's width.
type Table struct {
	headers []string
	rows    [][]string
	padding int
	align   map[int]bool // right-aligned columns
}

// NewTable creates a new table with the given headers.
func NewTable(headers []string) *Table {
	return &Table{
		headers: headers,
		padding: 2,
		align:   make(map[int]bool),
	}
}

// AlignRight right-aligns the column at colIndex, for numbers.
func (t *Table) AlignRight(colIndex int) {
	t.align[colIndex] = true
}

// AddRow adds a row, padding or truncating it to the header count.
func (t *Table) AddRow(row []string) {
	cells := make([]string, len(t.headers))
	copy(cells, row)
	t.rows = append(t.rows, cells)
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Render formats and returns the table as a string.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = visibleLen(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			widths[i] = max(widths[i], visibleLen(cell))
		}
	}

	var sb strings.Builder
	gap := strings.Repeat(" ", t.padding)

	writeLine := func(cells []string) {
		parts := make([]string, len(cells))
		for i, c := range cells {
			parts[i] = t.pad(i, c, widths[i])
		}
		sb.WriteString(strings.TrimRight(strings.Join(parts, gap), " "))
		sb.WriteString("\n")
	}

	writeLine(t.headers)
	sep := make([]string, len(widths))
	for i, w := range widths {
		sep[i] = strings.Repeat("-", w)
	}
	writeLine(sep)
	for _, row := range t.rows {
		writeLine(row)
	}

	return sb.String()
}

func (t *Table) pad(col int, s string, width int) string {
	fill := width - visibleLen(s)
	if fill <= 0 {
		return s
	}
	if t.align[col] {
		return strings.Repeat(" ", fill) + s
	}
	return s + strings.Repeat(" ", fill)
}

// visibleLen returns the number of printed characters in s, skipping
// CSI escape sequences such as colour codes.
func visibleLen(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\033' && i+1 < len(s) && s[i+1] == '[' {
			i += 2
			for i < len(s) && (s[i] < 0x40 || s[i] > 0x7e) {
				i++
			}
			continue
		}
		// Count runes, not continuation bytes.
		if s[i]&0xc0 != 0x80 {
			n++
		}
	}
	return n
}
