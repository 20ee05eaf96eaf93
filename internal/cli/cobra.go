// Package cli implements the exifmeta command tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/simonhull/photometa/internal/logging"
)

// errFilesFailed marks a run in which some files could not be read. The
// per-file errors have already been printed.
var errFilesFailed = errors.New("some files could not be read")

// NewRootCmd creates the root Cobra command.
func NewRootCmd() *cobra.Command {
	var (
		logLevel  string
		logFormat string
	)

	rootCmd := &cobra.Command{
		Use:   "exifmeta",
		Short: "exifmeta reads camera metadata from photos",
		Long: `exifmeta extracts the EXIF metadata embedded in JPEG, TIFF, PNG and WebP
files: camera make and model, date taken, exposure settings, flash and GPS position.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format (text|json)")

	newLogger := func(cmd *cobra.Command) *slog.Logger {
		return logging.New(cmd.ErrOrStderr(), logLevel, logFormat)
	}

	rootCmd.AddCommand(newShowCmd(newLogger))
	rootCmd.AddCommand(newDumpCmd(newLogger))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the command tree with args and returns the process exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errFilesFailed) {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}
