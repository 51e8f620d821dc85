package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

var markdownEscaper = strings.NewReplacer("|", `\|`, "\n", " ")

func writeMarkdown[T any](w io.Writer, items []T) error {
	if len(items) == 0 {
		return nil
	}
	if err := requireRower(Markdown, items); err != nil {
		return err
	}
	first := any(items[0])
	h, ok := first.(Headed)
	if !ok {
		return fmt.Errorf("%w: format %q requires Headed, not implemented by %T", ErrMissingInterface, Markdown, items[0])
	}

	header := escapeMarkdown(h.Header())
	body := rows(items)
	for i, row := range body {
		body[i] = escapeMarkdown(row)
	}

	// Minimum 3 leaves room for the alignment markers.
	widths := make([]int, len(header))
	for i := range widths {
		widths[i] = 3
	}
	for _, row := range append([][]string{header}, body...) {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], runewidth.StringWidth(cell))
			}
		}
	}

	var aligns []Alignment
	if a, ok := first.(Aligned); ok {
		aligns = a.Alignments()
	}
	aligns = extend(aligns, len(widths))

	var sb strings.Builder
	line := func(cells []string) {
		padded := make([]string, len(widths))
		for i, width := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			padded[i] = alignCell(cell, width, aligns[i])
		}
		sb.WriteString("| " + strings.Join(padded, " | ") + " |\n")
	}

	line(header)
	sep := make([]string, len(widths))
	for i, width := range widths {
		switch aligns[i] {
		case AlignRight:
			sep[i] = strings.Repeat("-", width-1) + ":"
		case AlignCenter:
			sep[i] = ":" + strings.Repeat("-", width-2) + ":"
		default:
			sep[i] = strings.Repeat("-", width)
		}
	}
	sb.WriteString("| " + strings.Join(sep, " | ") + " |\n")
	for _, row := range body {
		line(row)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func escapeMarkdown(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = markdownEscaper.Replace(cleanCell(c))
	}
	return out
}
