package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bjaus/snfmt"
	"github.com/bjaus/snfmt/internal/report"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// batchCase is one entry of a batch file. A missing template renders the
// null template; a missing size means the default buffer size.
type batchCase struct {
	Name     string  `yaml:"name"`
	Template *string `yaml:"template"`
	Args     []any   `yaml:"args"`
	Size     *int    `yaml:"size"`
	Codepage string  `yaml:"codepage"`
	LongBits int     `yaml:"long_bits"`
}

func newBatchCmd(opts *options) *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Render every case in a YAML file",
		Long: `Batch reads a YAML list of cases and reports one row per case. Use -
to read from standard input.

Each case has a template, its args and optionally a name, a size, a
codepage and long_bits:

  - name: padded
    template: "%-6s|%3d"
    args: [ab, 7]
    size: 16

Example:
  snfmt batch cases.yaml
  snfmt batch cases.yaml -o markdown`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cases, err := readCases(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			opts.logger.Debug("batch loaded", "file", args[0], "cases", len(cases))

			w := cmd.OutOrStdout()
			styles := []func(string) string(nil)
			if opts.color(w) {
				styles = resultStyles()
			}
			results := make([]result, len(cases))
			failed := 0
			for i, c := range cases {
				results[i] = runCase(c)
				results[i].styles = styles
				if results[i].err != nil {
					failed++
					opts.logger.Warn("case failed", "case", results[i].Name, "error", results[i].err)
				}
			}

			f := opts.format
			if f == "" {
				f = report.Table
			}
			if err := report.Write(w, f, results...); err != nil {
				return fmt.Errorf("write results: %w", err)
			}
			if strict && failed > 0 {
				return fmt.Errorf("%d of %d cases failed", failed, len(cases))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "Exit with an error when any case fails")
	return cmd
}

func readCases(stdin io.Reader, path string) ([]batchCase, error) {
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	var cases []batchCase
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cases); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cases, nil
}

func runCase(c batchCase) result {
	name := c.Name
	fail := func(err error) result {
		r := result{Name: name, Length: -1, Error: err.Error(), err: err}
		if c.Template != nil {
			r.Template = *c.Template
		}
		return r
	}
	longBits := c.LongBits
	if longBits == 0 {
		longBits = 64
	}
	p, err := newPrinter(c.Codepage, longBits)
	if err != nil {
		return fail(err)
	}
	size := defaultSize
	if c.Size != nil {
		size = *c.Size
	}
	if size < 0 {
		return fail(fmt.Errorf("size must not be negative, got %d", size))
	}

	args := c.Args
	if c.Template != nil {
		ops, err := snfmt.Operands(*c.Template)
		if err != nil {
			return fail(err)
		}
		if args, err = coerceAll(ops, c.Args); err != nil {
			return fail(err)
		}
	}
	r := run(p, c.Template, args, size)
	r.Name = name
	return r
}
