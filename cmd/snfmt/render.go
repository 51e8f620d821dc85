package main

import (
	"fmt"

	"github.com/bjaus/snfmt"
	"github.com/bjaus/snfmt/internal/report"
	"github.com/spf13/cobra"
)

func newRenderCmd(opts *options) *cobra.Command {
	var (
		size     int
		codepage string
		longBits int
	)
	cmd := &cobra.Command{
		Use:   "render TEMPLATE [ARGS...]",
		Short: "Render one template into a bounded buffer",
		Long: `Render converts each ARG to the operand kind the template expects and
prints what a buffer of --size bytes would hold.

Example:
  snfmt render '%-8s|%05d' name 42
  snfmt render --size 8 '%s' 'longer than eight'
  snfmt render --codepage ibm1047 '%.3f' 3.14159 -o json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if size < 0 {
				return fmt.Errorf("size must not be negative, got %d", size)
			}
			p, err := newPrinter(codepage, longBits)
			if err != nil {
				return err
			}
			template := args[0]
			ops, err := snfmt.Operands(template)
			if err != nil {
				return err
			}
			words := make([]any, len(args)-1)
			for i, a := range args[1:] {
				words[i] = a
			}
			if len(words) > len(ops) {
				opts.logger.Warn("extra arguments ignored", "operands", len(ops), "args", len(words))
			}
			values, err := coerceAll(ops, words)
			if err != nil {
				return err
			}
			opts.logger.Debug("render", "template", template, "operands", ops, "size", size, "codepage", codepage)

			r := run(p, &template, values, size)
			if r.err != nil {
				return r.err
			}
			if r.Truncated {
				opts.logger.Warn("output truncated", "length", r.Length, "size", size)
			}

			w := cmd.OutOrStdout()
			if opts.format == "" {
				_, err := fmt.Fprintln(w, r.Output)
				return err
			}
			if opts.color(w) {
				r.styles = resultStyles()
			}
			return report.Write(w, opts.format, r)
		},
	}
	cmd.Flags().IntVarP(&size, "size", "s", defaultSize, "Buffer size in bytes, including the NUL")
	cmd.Flags().StringVar(&codepage, "codepage", "", "Host code page for floating-point conversions, e.g. ibm1047")
	cmd.Flags().IntVar(&longBits, "long-bits", 64, "Width of the l modifier: 32 or 64")
	return cmd
}
