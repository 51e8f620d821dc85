// Package report writes formatting results in the output formats the CLI
// offers: json, jsonl, yaml, csv, tsv, table, markdown, plain and
// go-template=<tmpl>.
//
// JSON, JSONL, YAML, plain and go-template accept any item. The tabular
// formats require [Rower]; [Headed], [Aligned], [Bordered] and [Styled]
// refine them.
package report

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrMissingInterface  = errors.New("missing required interface")
	ErrInvalidTemplate   = errors.New("invalid template")
)

// Format is an output format name.
type Format string

const (
	JSON     Format = "json"
	JSONL    Format = "jsonl"
	YAML     Format = "yaml"
	CSV      Format = "csv"
	TSV      Format = "tsv"
	Table    Format = "table"
	Markdown Format = "markdown"
	Plain    Format = "plain"
)

const goTemplatePrefix = "go-template="

var formats = []Format{JSON, JSONL, YAML, CSV, TSV, Table, Markdown, Plain}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns the static format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// GoTemplate returns a Format that executes tmpl once per item.
func GoTemplate(tmpl string) Format {
	return Format(goTemplatePrefix + tmpl)
}

// ParseFormat parses a format name or a go-template=<tmpl> string.
func ParseFormat(s string) (Format, error) {
	if strings.HasPrefix(s, goTemplatePrefix) {
		return Format(s), nil
	}
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Rower provides the cells of one row. Required by csv, tsv, table and
// markdown.
type Rower interface {
	Row() []string
}

// Headed provides column headers. Required by markdown.
type Headed interface {
	Header() []string
}

// Aligned sets per-column alignment for table and markdown.
// Default: AlignLeft.
type Aligned interface {
	Alignments() []Alignment
}

// Bordered selects the table border. Default: BorderRounded.
type Bordered interface {
	Border() BorderStyle
}

// Styled provides per-column style functions for table cells. Each function
// wraps the padded cell text, so escape sequences never count toward widths.
// Nil entries leave a column unstyled.
type Styled interface {
	Styles() []func(string) string
}

// BorderStyle controls table border characters.
type BorderStyle int

const (
	BorderRounded BorderStyle = iota // ╭─╮╰╯│┬┴├┤┼
	BorderNone                       // space-separated columns
	BorderASCII                      // +-+|
)

// Alignment controls column text alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Write renders items in format f to w.
func Write[T any](w io.Writer, f Format, items ...T) error {
	switch f {
	case JSON:
		return writeJSON(w, items)
	case JSONL:
		return writeJSONL(w, items)
	case YAML:
		return writeYAML(w, items)
	case CSV:
		return writeCSV(w, items)
	case TSV:
		return writeTSV(w, items)
	case Table:
		return writeTable(w, items)
	case Markdown:
		return writeMarkdown(w, items)
	case Plain:
		return writePlain(w, items)
	default:
		if tmpl, ok := strings.CutPrefix(string(f), goTemplatePrefix); ok {
			return writeGoTemplate(w, tmpl, items)
		}
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Marshal renders items and returns the bytes.
func Marshal[T any](f Format, items ...T) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, items...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func requireRower[T any](f Format, items []T) error {
	if _, ok := any(items[0]).(Rower); !ok {
		return fmt.Errorf("%w: format %q requires Rower, not implemented by %T", ErrMissingInterface, f, items[0])
	}
	return nil
}

func rows[T any](items []T) [][]string {
	out := make([][]string, len(items))
	for i, item := range items {
		out[i] = any(item).(Rower).Row()
	}
	return out
}
