package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/drawlang/pkg/core/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		info := version.Get()
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "drawc v%s\n", info.Version)
		fmt.Fprintf(out, "  Grammar:    %s\n", info.Grammar)
		if info.Commit != "" {
			fmt.Fprintf(out, "  Git Commit: %s\n", info.Commit)
		}
		fmt.Fprintf(out, "  Go Version: %s\n", info.GoVersion)
		fmt.Fprintf(out, "  OS/Arch:    %s/%s\n", info.OS, info.Arch)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
