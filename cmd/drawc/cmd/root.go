package cmd

import (
	"os"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/drawlang/foundation/core/error"
	mdwlog "github.com/msto63/drawlang/foundation/core/log"
	"github.com/msto63/drawlang/foundation/drawlang"
	"github.com/msto63/drawlang/pkg/core/config"
)

var (
	cfgFile   string
	verbose   bool
	logFormat string

	appConfig *config.Config
	logger    *mdwlog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "drawc",
	Short: "drawc - parser tools for the drawing language",
	Long: `drawc reads token streams of the drawing language and turns them
into syntax trees.

Token streams are YAML, JSON or TOML documents written by the lexer:

  tokens:
    - [Keyword, draw]
    - [SpecialSymbol, "("]
    - [Identifier, sun]
    - [SpecialSymbol, ")"]

Commands:
  parse    - print the syntax tree
  check    - validate streams and print a summary
  view     - browse a tree in the terminal
  watch    - re-parse a stream whenever it changes`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $DRAWLANG_CONFIG or ./configs/drawlang.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (debug logging)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: json, text or console")
}

// setup loads the configuration and builds the logger
func setup(cmd *cobra.Command, args []string) error {
	var err error
	if cfgFile != "" {
		appConfig, err = config.Load(cfgFile)
	} else {
		appConfig, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	level, err := mdwlog.ParseLevel(appConfig.General.LogLevel)
	if err != nil {
		return invalidFlag("log level", err)
	}
	if verbose && level > mdwlog.LevelDebug {
		level = mdwlog.LevelDebug
	}

	formatName := appConfig.General.LogFormat
	if logFormat != "" {
		formatName = logFormat
	}
	format, err := mdwlog.ParseFormat(formatName)
	if err != nil {
		return invalidFlag("log format", err)
	}

	logger = mdwlog.NewWithConfig(mdwlog.Config{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
		Name:   "drawc",
	})
	mdwlog.SetDefault(logger)

	logger.Debug("configuration loaded", mdwlog.Fields{
		"source":    configSource(),
		"maxTokens": appConfig.Parser.MaxTokens,
	})
	return nil
}

func newEngine() (*drawlang.Engine, error) {
	return drawlang.New(drawlang.Options{
		Logger:    logger,
		MaxTokens: appConfig.Parser.MaxTokens,
		Trace:     appConfig.Parser.Trace,
	})
}

func configSource() string {
	if appConfig.Source() == "" {
		return "defaults"
	}
	return appConfig.Source()
}

func invalidFlag(what string, err error) error {
	return mdwerror.Wrap(err, "invalid "+what).
		WithCode(mdwerror.CodeInvalidInput)
}

// useColor reports whether styled output goes to the terminal
func useColor(noColor bool) bool {
	if noColor || !appConfig.Output.Color {
		return false
	}
	_, set := os.LookupEnv("NO_COLOR")
	return !set
}
