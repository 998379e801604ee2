package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/drawlang/foundation/core/log"
	"github.com/msto63/drawlang/foundation/drawlang"
	"github.com/msto63/drawlang/internal/tui/astviewer"
)

var viewCmd = &cobra.Command{
	Use:   "view FILE",
	Short: "Browse a syntax tree in the terminal",
	Long: `Opens an interactive viewer for the syntax tree of FILE.

Keys:
  ↑/↓ PgUp/PgDn   scroll
  g / G           top / bottom
  /               filter nodes (Enter keeps, Esc clears)
  r               parse the file again
  q / Ctrl+C      quit`,
	Args: cobra.ExactArgs(1),
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	// log lines would corrupt the alternate screen
	engine, err := drawlang.New(drawlang.Options{
		Logger:    mdwlog.Discard(),
		MaxTokens: appConfig.Parser.MaxTokens,
	})
	if err != nil {
		return err
	}

	model := astviewer.New(astviewer.Config{
		Path:   args[0],
		Engine: engine,
		Color:  useColor(false),
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	_, err = p.Run()
	return err
}
