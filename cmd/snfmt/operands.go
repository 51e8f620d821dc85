package main

import (
	"fmt"
	"strconv"

	"github.com/bjaus/snfmt"
	"github.com/bjaus/snfmt/internal/report"
	"github.com/spf13/cobra"
)

type operandRow struct {
	Index int    `json:"index" yaml:"index"`
	Kind  string `json:"kind" yaml:"kind"`
}

func (o operandRow) Header() []string { return []string{"#", "Kind"} }
func (o operandRow) Row() []string    { return []string{strconv.Itoa(o.Index), o.Kind} }
func (o operandRow) String() string   { return o.Kind }

func (o operandRow) Alignments() []report.Alignment {
	return []report.Alignment{report.AlignRight, report.AlignLeft}
}

func newOperandsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "operands TEMPLATE",
		Short: "List the operand kinds a template consumes",
		Long: `Operands parses TEMPLATE without rendering it and prints one operand
kind per line, in the order render expects its ARGS.

Example:
  snfmt operands '%*d %s %lld'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, err := snfmt.Operands(args[0])
			if err != nil {
				return err
			}
			rows := make([]operandRow, len(ops))
			for i, op := range ops {
				rows[i] = operandRow{Index: i + 1, Kind: op.String()}
			}
			f := opts.format
			if f == "" {
				f = report.Plain
			}
			if len(rows) == 0 {
				opts.logger.Info("template takes no operands")
			}
			if err := report.Write(cmd.OutOrStdout(), f, rows...); err != nil {
				return fmt.Errorf("write operands: %w", err)
			}
			return nil
		},
	}
}
