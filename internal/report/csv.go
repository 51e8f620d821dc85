package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

func writeCSV[T any](w io.Writer, items []T) error {
	if len(items) == 0 {
		return nil
	}
	if err := requireRower(CSV, items); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if h, ok := any(items[0]).(Headed); ok {
		if err := cw.Write(h.Header()); err != nil {
			return err
		}
	}
	return cw.WriteAll(rows(items))
}

// writeTSV escapes tabs and newlines inside cells so every row stays one line.
func writeTSV[T any](w io.Writer, items []T) error {
	if len(items) == 0 {
		return nil
	}
	if err := requireRower(TSV, items); err != nil {
		return err
	}
	if h, ok := any(items[0]).(Headed); ok {
		if err := writeTSVLine(w, h.Header()); err != nil {
			return err
		}
	}
	for _, row := range rows(items) {
		if err := writeTSVLine(w, row); err != nil {
			return err
		}
	}
	return nil
}

var tsvEscaper = strings.NewReplacer("\\", `\\`, "\t", `\t`, "\n", `\n`, "\r", `\r`)

func writeTSVLine(w io.Writer, cells []string) error {
	escaped := make([]string, len(cells))
	for i, c := range cells {
		escaped[i] = tsvEscaper.Replace(c)
	}
	_, err := fmt.Fprintln(w, strings.Join(escaped, "\t"))
	return err
}
