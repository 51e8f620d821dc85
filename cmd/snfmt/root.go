package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/bjaus/snfmt/internal/report"
	"github.com/spf13/cobra"
)

// options holds the global flags shared by every subcommand.
type options struct {
	verbose bool
	noColor bool
	output  string

	format report.Format
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{logger: slog.New(slog.DiscardHandler)}
	cmd := &cobra.Command{
		Use:   "snfmt",
		Short: "Render printf templates into bounded buffers",
		Long: `snfmt renders printf-style templates the way a truncating snprintf
would: output beyond the buffer size is counted but not stored, and the
stored text is always NUL-terminated.

Floating-point conversions go through a host formatter, optionally behind
a code page such as ibm1047.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := slog.LevelWarn
			if opts.verbose {
				level = slog.LevelDebug
			}
			opts.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			if opts.output == "" {
				return nil
			}
			f, err := report.ParseFormat(opts.output)
			if err != nil {
				return err
			}
			opts.format = f
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	cmd.PersistentFlags().StringVarP(&opts.output, "output", "o", "",
		"Output format: json, jsonl, yaml, csv, tsv, table, markdown, plain or go-template=<tmpl>")

	cmd.AddCommand(newRenderCmd(opts), newBatchCmd(opts), newOperandsCmd(opts))
	return cmd
}

// color reports whether styles should be applied to output written to w.
func (o *options) color(w io.Writer) bool {
	if o.noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && isTerminal(f.Fd())
}
