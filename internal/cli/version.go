package cli

import (
	"github.com/spf13/cobra"

	"github.com/simonhull/photometa"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			info := photometa.GetVersionInfo()
			cmd.Printf("exifmeta %s\n", info.Version)
			cmd.Printf("  commit:  %s\n", info.GitCommit)
			cmd.Printf("  built:   %s\n", info.BuildTime)
			cmd.Printf("  go:      %s\n", info.GoVersion)
		},
	}
}
