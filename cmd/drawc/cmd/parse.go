package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	parseFormat  string
	parseNoColor bool
)

var parseCmd = &cobra.Command{
	Use:   "parse PATH...",
	Short: "Parse token streams and print their syntax trees",
	Long: `Parses each token stream and prints its syntax tree.

Formats:
  text   one-line rendering, e.g. Program(None): [Draw(None): [Identifier(x): []]]
  tree   indented tree
  json   {"type", "value", "children"} document
  yaml   same document as YAML

Directories are searched for .yaml, .yml, .json and .toml files. Files
are parsed concurrently; output keeps the order of the arguments.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "", "output format: text, tree, json or yaml (default from config)")
	parseCmd.Flags().BoolVar(&parseNoColor, "no-color", false, "disable styled tree output")
}

func runParse(cmd *cobra.Command, args []string) error {
	format := parseFormat
	if format == "" {
		format = appConfig.Output.Format
	}
	if err := validOutputFormat(format); err != nil {
		return err
	}

	engine, err := newEngine()
	if err != nil {
		return err
	}

	paths, err := expandPaths(args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	color := useColor(parseNoColor)
	results := engine.ParseFiles(cmd.Context(), paths)

	for i, r := range results {
		if r.Err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", r.Path, r.Err)
			continue
		}
		if len(results) > 1 {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "==> %s <==\n", r.Path)
		}
		if err := writeResult(out, r.Result, format, color); err != nil {
			return err
		}
	}

	return failures(results)
}
