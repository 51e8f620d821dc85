package report

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

type borderChars struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
	topTee, bottomTee, leftTee, rightTee       string
	cross                                      string
}

var borderSets = map[BorderStyle]borderChars{
	BorderRounded: {
		topLeft: "╭", topRight: "╮", bottomLeft: "╰", bottomRight: "╯",
		horizontal: "─", vertical: "│",
		topTee: "┬", bottomTee: "┴", leftTee: "├", rightTee: "┤",
		cross: "┼",
	},
	BorderASCII: {
		topLeft: "+", topRight: "+", bottomLeft: "+", bottomRight: "+",
		horizontal: "-", vertical: "|",
		topTee: "+", bottomTee: "+", leftTee: "+", rightTee: "+",
		cross: "+",
	},
}

// table is the resolved layout of one table write.
type table struct {
	header []string
	rows   [][]string
	widths []int
	aligns []Alignment
	styles []func(string) string
}

func writeTable[T any](w io.Writer, items []T) error {
	if len(items) == 0 {
		return nil
	}
	if err := requireRower(Table, items); err != nil {
		return err
	}
	first := any(items[0])

	t := table{rows: rows(items)}
	if h, ok := first.(Headed); ok {
		t.header = h.Header()
	}
	numCols := len(t.header)
	for _, row := range t.rows {
		numCols = max(numCols, len(row))
	}
	t.widths = make([]int, numCols)
	for _, row := range append([][]string{t.header}, t.rows...) {
		for i, cell := range row {
			t.widths[i] = max(t.widths[i], runewidth.StringWidth(cleanCell(cell)))
		}
	}
	if a, ok := first.(Aligned); ok {
		t.aligns = a.Alignments()
	}
	t.aligns = extend(t.aligns, numCols)
	if s, ok := first.(Styled); ok {
		t.styles = s.Styles()
	}
	t.styles = extend(t.styles, numCols)

	border := BorderRounded
	if b, ok := first.(Bordered); ok {
		border = b.Border()
	}
	bc, ok := borderSets[border]
	if !ok {
		return t.writePlain(w)
	}
	return t.writeBordered(w, bc)
}

func extend[E any](s []E, n int) []E {
	if len(s) >= n {
		return s[:n]
	}
	out := make([]E, n)
	copy(out, s)
	return out
}

// cleanCell keeps a cell on one line. Rendered output may carry control
// bytes, which are shown as '.'.
func cleanCell(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return '.'
		}
		return r
	}, s)
}

func (t *table) cells(row []string) []string {
	out := make([]string, len(t.widths))
	for i, width := range t.widths {
		cell := ""
		if i < len(row) {
			cell = cleanCell(row[i])
		}
		cell = alignCell(cell, width, t.aligns[i])
		if t.styles[i] != nil {
			cell = t.styles[i](cell)
		}
		out[i] = cell
	}
	return out
}

func (t *table) writePlain(w io.Writer) error {
	var sb strings.Builder
	line := func(cells []string) {
		sb.WriteString(strings.TrimRight(strings.Join(cells, "  "), " "))
		sb.WriteByte('\n')
	}
	if len(t.header) > 0 {
		line(t.cells(t.header))
		sep := make([]string, len(t.widths))
		for i, width := range t.widths {
			sep[i] = strings.Repeat("-", width)
		}
		line(sep)
	}
	for _, row := range t.rows {
		line(t.cells(row))
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func (t *table) writeBordered(w io.Writer, bc borderChars) error {
	var sb strings.Builder
	rule := func(left, mid, right string) {
		sb.WriteString(left)
		for i, width := range t.widths {
			sb.WriteString(strings.Repeat(bc.horizontal, width+2))
			if i < len(t.widths)-1 {
				sb.WriteString(mid)
			}
		}
		sb.WriteString(right)
		sb.WriteByte('\n')
	}
	line := func(cells []string) {
		sb.WriteString(bc.vertical)
		for _, cell := range cells {
			sb.WriteString(" ")
			sb.WriteString(cell)
			sb.WriteString(" ")
			sb.WriteString(bc.vertical)
		}
		sb.WriteByte('\n')
	}

	rule(bc.topLeft, bc.topTee, bc.topRight)
	if len(t.header) > 0 {
		line(t.cells(t.header))
		rule(bc.leftTee, bc.cross, bc.rightTee)
	}
	for _, row := range t.rows {
		line(t.cells(row))
	}
	rule(bc.bottomLeft, bc.bottomTee, bc.bottomRight)
	_, err := io.WriteString(w, sb.String())
	return err
}

func alignCell(s string, width int, align Alignment) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
	default:
		return s + strings.Repeat(" ", pad)
	}
}
