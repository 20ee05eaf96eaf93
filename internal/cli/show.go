package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/simonhull/photometa"
)

// fileReport is the JSON form of one extraction.
type fileReport struct {
	Path     string                    `json:"path"`
	Metadata *photometa.CameraMetadata `json:"metadata,omitempty"`
	Error    string                    `json:"error,omitempty"`
}

func newShowCmd(newLogger func(*cobra.Command) *slog.Logger) *cobra.Command {
	var (
		asJSON  bool
		workers int
	)

	cmd := &cobra.Command{
		Use:   "show <file>...",
		Short: "Show camera metadata for one or more photos",
		Long: `Extract camera make and model, date taken, shutter speed, aperture, ISO,
focal length, flash status and GPS coordinates from each file. Fields that are
not recorded in the file are shown as "Not Available".`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd)

			results, err := photometa.ExtractMany(cmd.Context(), args,
				photometa.WithLogger(logger),
				photometa.WithConcurrency(workers),
			)
			if err != nil {
				return err
			}

			failed := 0
			for _, r := range results {
				if r.Err != nil {
					failed++
					logger.Debug("extraction failed", "path", r.Path, "error", r.Err)
				}
			}

			if asJSON {
				reports := make([]fileReport, len(results))
				for i, r := range results {
					reports[i] = fileReport{Path: r.Path, Metadata: r.Metadata}
					if r.Err != nil {
						reports[i].Error = r.Err.Error()
					}
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(reports); err != nil {
					return fmt.Errorf("encode JSON: %w", err)
				}
			} else {
				for i, r := range results {
					if i > 0 {
						fmt.Fprintln(cmd.OutOrStdout())
					}
					if r.Err != nil {
						fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", r.Path, r.Err)
						continue
					}
					renderMetadata(cmd.OutOrStdout(), r.Metadata)
				}
			}

			if failed > 0 {
				return errFilesFailed
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print results as a JSON array")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "files to process in parallel (default: number of CPUs)")

	return cmd
}
