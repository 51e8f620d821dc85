package main

import (
	"fmt"
	"strconv"

	"github.com/bjaus/snfmt"
	"github.com/bjaus/snfmt/internal/report"
)

const defaultSize = 256

// result is one rendered template as the report formats see it.
type result struct {
	Name      string `json:"name,omitempty" yaml:"name,omitempty"`
	Template  string `json:"template" yaml:"template"`
	Output    string `json:"output" yaml:"output"`
	Length    int    `json:"length" yaml:"length"`
	Size      int    `json:"size" yaml:"size"`
	Truncated bool   `json:"truncated" yaml:"truncated"`
	Error     string `json:"error,omitempty" yaml:"error,omitempty"`

	err    error
	styles []func(string) string
}

func (r result) Header() []string {
	return []string{"Name", "Template", "Output", "Length", "Size", "Truncated", "Error"}
}

func (r result) Row() []string {
	return []string{
		r.Name,
		r.Template,
		r.Output,
		strconv.Itoa(r.Length),
		strconv.Itoa(r.Size),
		strconv.FormatBool(r.Truncated),
		r.Error,
	}
}

func (r result) Alignments() []report.Alignment {
	return []report.Alignment{
		report.AlignLeft, report.AlignLeft, report.AlignLeft,
		report.AlignRight, report.AlignRight, report.AlignCenter, report.AlignLeft,
	}
}

func (r result) Styles() []func(string) string { return r.styles }

func (r result) String() string { return r.Output }

// run renders template into a buffer of size bytes. A nil template renders
// the printer's null text.
func run(p *snfmt.Printer, template *string, args []any, size int) result {
	buf := make([]byte, size)
	var (
		n   int
		err error
	)
	r := result{Size: size}
	if template == nil {
		n, err = p.Bsnprintf(buf, nil, args...)
	} else {
		r.Template = *template
		n, err = p.Snprintf(buf, *template, args...)
	}
	r.Length = n
	if err != nil {
		r.err = err
		r.Error = err.Error()
		return r
	}
	r.Output = string(buf[:min(n, max(size-1, 0))])
	r.Truncated = n > len(r.Output)
	return r
}

func newPrinter(codepage string, longBits int) (*snfmt.Printer, error) {
	if longBits != 32 && longBits != 64 {
		return nil, fmt.Errorf("long bits must be 32 or 64, got %d", longBits)
	}
	codec, err := snfmt.LookupCodePage(codepage)
	if err != nil {
		return nil, err
	}
	return snfmt.New(snfmt.WithTranscoder(codec), snfmt.WithLongBits(longBits)), nil
}

// coerce converts a command-line word to the Go value operand op expects.
// Integers accept any base strconv recognizes; a single non-digit character
// stands for its byte value.
func coerce(op snfmt.Operand, s string) (any, error) {
	switch op {
	case snfmt.OperandString:
		return s, nil
	case snfmt.OperandFloat:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, err
		}
		return f, nil
	case snfmt.OperandPointer:
		u, err := strconv.ParseUint(s, 0, 64)
		if err != nil {
			return nil, err
		}
		return uintptr(u), nil
	case snfmt.OperandChar:
		if len(s) == 1 && (s[0] < '0' || s[0] > '9') {
			return s[0], nil
		}
	}
	if i, err := strconv.ParseInt(s, 0, 64); err == nil {
		return i, nil
	}
	u, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// coerceAll converts args in operand order. Words beyond the template's
// operands pass through as strings; missing ones are left to the renderer.
func coerceAll(ops []snfmt.Operand, args []any) ([]any, error) {
	out := make([]any, len(args))
	for i, v := range args {
		s, ok := v.(string)
		if !ok || i >= len(ops) {
			out[i] = v
			continue
		}
		c, err := coerce(ops[i], s)
		if err != nil {
			return nil, fmt.Errorf("%w: operand %d (%s): %w", snfmt.ErrArgumentType, i+1, ops[i], err)
		}
		out[i] = c
	}
	return out, nil
}
