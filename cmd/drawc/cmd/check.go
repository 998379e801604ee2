package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/drawlang/internal/tui"
)

var checkCmd = &cobra.Command{
	Use:   "check PATH...",
	Short: "Check that token streams parse",
	Long: `Parses each token stream and reports success with node count and
depth, or the first syntax error. Directories are searched for token
stream files. Exits non-zero if any file fails.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	engine, err := newEngine()
	if err != nil {
		return err
	}

	paths, err := expandPaths(args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	color := useColor(false)
	results := engine.ParseFiles(cmd.Context(), paths)

	for _, r := range results {
		var line string
		if r.Err != nil {
			line = fmt.Sprintf("FAIL %s: %v", r.Path, r.Err)
			if color {
				line = tui.ErrorMessageStyle.Render(line)
			}
		} else {
			line = fmt.Sprintf("ok %s (%d nodes, depth %d)", r.Path, r.Result.Nodes, r.Result.Depth)
			if color {
				line = tui.RenderOK(line)
			}
		}
		fmt.Fprintln(out, line)
	}

	return failures(results)
}
