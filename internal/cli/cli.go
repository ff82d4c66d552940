// Package cli implements the figlayout command-line interface.
//
// Commands cover the library's surface: listing the style catalog,
// computing publication-compliant figure dimensions, and rendering or
// previewing a labeled demo figure. The CLI is built on cobra; all
// commands support --verbose (-v) for debug-level logging through
// charmbracelet/log, with the logger carried in the command context.
package cli

import (
	"context"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Execute runs the figlayout CLI and returns an error if any command
// fails.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "figlayout",
		Short:        "figlayout sizes and labels figures for publication",
		Long:         `figlayout computes figure dimensions that comply with per-publisher artwork rules (column widths, gutters, page limits) and places alphanumeric panel labels in the publisher's house style.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newStylesCmd())
	root.AddCommand(newFigsizeCmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newPreviewCmd())

	return root.ExecuteContext(context.Background())
}

// newLogger creates a logger writing to w at the given level, with
// timestamps formatted as "HH:MM:SS.ms".
func newLogger(w io.Writer, level charmlog.Level) *charmlog.Logger {
	return charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// ctxKey is the type for context keys used in this package.
type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *charmlog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, falling back to the
// package default so commands always have a valid logger.
func loggerFromContext(ctx context.Context) *charmlog.Logger {
	if l, ok := ctx.Value(loggerKey).(*charmlog.Logger); ok {
		return l
	}
	return charmlog.Default()
}
