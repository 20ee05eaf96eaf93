package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/simonhull/photometa"
)

// maxRawBytes caps how much of an uninterpreted value dump prints.
const maxRawBytes = 32

func newDumpCmd(newLogger func(*cobra.Command) *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "dump <file>",
		Short: "Print every decoded EXIF tag of a photo",
		Long: `Print the decoded EXIF directory of a file, namespace by namespace, with each
tag's id, name (when known) and value. Unknown tags are included.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := photometa.ReadDirectory(args[0], photometa.WithLogger(newLogger(cmd)))
			if err != nil {
				return err
			}
			dumpDirectory(cmd.OutOrStdout(), dir)
			return nil
		},
	}
}

func dumpDirectory(w io.Writer, dir *photometa.Directory) {
	for _, ns := range photometa.Namespaces {
		if dir.Len(ns) == 0 {
			continue
		}

		fmt.Fprintf(w, "[%s] %d entries\n", ns, dir.Len(ns))
		for tag, value := range dir.All(ns) {
			name := photometa.TagName(ns, tag)
			if name == "" {
				name = "-"
			}
			fmt.Fprintf(w, "  0x%04X  %-20s %s\n", uint16(tag), name, formatValue(value))
		}
	}
}

func formatValue(v photometa.Value) string {
	switch v := v.(type) {
	case photometa.ByteString:
		return fmt.Sprintf("%q", v.Trimmed())
	case photometa.Raw:
		if len(v.Data) > maxRawBytes {
			v.Data = v.Data[:maxRawBytes]
			return v.String() + " ..."
		}
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
