package main

import (
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/reflow/internal/config"
	"github.com/vango-dev/reflow/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┬─┐┌─┐┌─┐┬  ┌─┐┬ ┬
  ├┬┘├┤ ├┤ │  │ ││││
  ┴└─└─┘└  ┴─┘└─┘└┴┘
`

func main() {
	rootCmd := newRootCmd()

	if err := rootCmd.Execute(); err != nil {
		style, _ := rootCmd.PersistentFlags().GetString("errors")
		reportError(os.Stderr, err, style)
		os.Exit(1)
	}
}

// reportError writes err in the given style: pretty, compact or json.
func reportError(w io.Writer, err error, style string) {
	var re *errors.Error
	if !stderrors.As(err, &re) {
		re = errors.Newf(errors.CategoryCLI, "%s", err.Error())
	}
	switch style {
	case "json":
		fmt.Fprintln(w, re.FormatJSON())
	case "compact":
		fmt.Fprintf(w, "\033[31mError:\033[0m %s\n", re.FormatCompact())
	default:
		fmt.Fprint(w, re.Format())
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		verbose    bool
		errStyle   string
	)

	rootCmd := &cobra.Command{
		Use:   "reflow",
		Short: "Tools for the reflow reactive renderer",
		Long: `reflow is a fine-grained reactive UI renderer for Go.

The CLI exercises the renderer against its in-memory host:

  • bench times keyed list reconciles
  • diff prints the edits between two lists
  • version prints build information`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to reflow.json (default: nearest in working directory)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log at debug level")
	rootCmd.PersistentFlags().StringVar(&errStyle, "errors", "pretty", "Error output: pretty, compact or json")

	load := func(w io.Writer) (*config.Config, *slog.Logger, error) {
		var (
			cfg *config.Config
			err error
		)
		if configPath != "" {
			cfg, err = config.LoadFile(configPath)
		} else {
			cfg, err = config.LoadFromWorkingDir()
		}
		if err != nil {
			return nil, nil, err
		}
		level := cfg.Level()
		if verbose {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
		return cfg, logger, nil
	}

	rootCmd.AddCommand(
		benchCmd(load),
		diffCmd(),
		versionCmd(),
	)
	return rootCmd
}

// loader reads the configuration and builds a logger writing to w.
type loader func(w io.Writer) (*config.Config, *slog.Logger, error)
