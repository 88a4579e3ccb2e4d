// Package main provides the CLI entrypoint for header-generator.
//
// header-generator reads declaration dumps produced by a front-end and:
//   - Classifies every declaration (repr, no_mangle, extern "C", docs)
//   - Lowers the exportable declarations into the header IR
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"header-generator/internal/config"
)

const (
	Version = "0.1.0"
	appName = "header-generator"
)

func main() {
	if err := newRootCmd(os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app carries state shared by all subcommands.
type app struct {
	logOut     io.Writer
	logger     *slog.Logger
	configPath string
	logLevel   string
	format     string
	noDocs     bool
	noOpaque   bool
}

func newRootCmd(logOut io.Writer) *cobra.Command {
	a := &app{logOut: logOut}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Classify and lower declarations for C header generation",
		Long: `header-generator reads YAML declaration dumps and reports how each
declaration would cross the C boundary: its repr, whether it is exported
with #[no_mangle] or extern "C", and its doc comments.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(a.logOut, a.logLevel)
			if err != nil {
				return err
			}
			a.logger = logger
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "Config file path (default: search for "+config.ProjectConfigFile+")")
	flags.StringVar(&a.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flags.StringVarP(&a.format, "format", "f", config.FormatText, "Output format (text, yaml, dump)")
	flags.BoolVar(&a.noDocs, "no-docs", false, "Omit doc comments from the output")
	flags.BoolVar(&a.noOpaque, "no-opaque", false, "Drop structs without repr(C) instead of emitting them as opaque")

	cmd.AddCommand(a.classifyCmd(), a.lowerCmd())
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
		},
	})

	return cmd
}

func newLogger(w io.Writer, logLevel string) (*slog.Logger, error) {
	var level slog.Level
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return nil, fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", logLevel)
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}

// loadConfig resolves settings, letting only explicitly set flags override the files.
func (a *app) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var overrides config.Settings
	flags := cmd.Flags()

	if flags.Changed("format") {
		overrides.Format = &a.format
	}
	if flags.Changed("no-docs") {
		docs := !a.noDocs
		overrides.Documentation = &docs
	}
	if flags.Changed("no-opaque") {
		opaque := !a.noOpaque
		overrides.IncludeOpaque = &opaque
	}

	return config.NewLoader(a.logger, "").Load(a.configPath, overrides)
}
