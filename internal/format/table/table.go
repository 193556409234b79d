package table

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Column names one column and how its cells line up.
type Column struct {
	Title string
	Align Alignment
}

// Table collects rows under a header row.
type Table struct {
	cols []Column
	rows [][]string
}

// New starts a table with the given columns.
func New(cols ...Column) *Table {
	return &Table{cols: cols}
}

// Add appends a row. Missing cells render empty; extra cells are dropped.
func (t *Table) Add(cells ...string) {
	row := make([]string, len(t.cols))
	copy(row, cells)
	t.rows = append(t.rows, row)
}

// Len reports the number of rows added.
func (t *Table) Len() int { return len(t.rows) }

// Lines renders the header, a rule, and every row.
func (t *Table) Lines() []string {
	header := make([]string, len(t.cols))
	aligns := make([]Alignment, len(t.cols))
	for i, c := range t.cols {
		header[i] = c.Title
		aligns[i] = c.Align
	}
	all := append([][]string{header}, t.rows...)
	lines := Format(all, aligns)
	if len(lines) == 0 {
		return nil
	}
	rule := strings.Repeat("-", ansi.StringWidth(lines[0]))
	out := make([]string, 0, len(lines)+1)
	out = append(out, lines[0], rule)
	return append(out, lines[1:]...)
}

// Format returns the rows padded according to the widest entry in each
// column. Trailing padding on the last column is trimmed.
func Format(rows [][]string, alignments []Alignment) []string {
	if len(rows) == 0 {
		return nil
	}
	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for c, cell := range row {
			if w := ansi.StringWidth(cell); c < len(widths) && w > widths[c] {
				widths[c] = w
			}
		}
	}
	out := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for c, cell := range row {
			if c >= len(widths) {
				break
			}
			if c > 0 {
				b.WriteString("  ")
			}
			pad := widths[c] - ansi.StringWidth(cell)
			if c < len(alignments) && alignments[c] == AlignRight {
				b.WriteString(strings.Repeat(" ", pad))
				b.WriteString(cell)
			} else {
				b.WriteString(cell)
				b.WriteString(strings.Repeat(" ", pad))
			}
		}
		out[i] = strings.TrimRight(b.String(), " ")
	}
	return out
}
