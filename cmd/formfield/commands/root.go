// Package commands implements the CLI commands for formfield.
package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	optionsFlag   string
	logLevelFlag  string
	logFormatFlag string
)

// errValidationFailed signals a non-zero exit after the failures were
// already printed.
var errValidationFailed = errors.New("validation failed")

// state populated by the root command before any subcommand runs.
var (
	cfg    Config
	logger = zerolog.Nop()
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&optionsFlag, "config", "c", "",
		"option file or directory (env FORMFIELD_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "",
		"log level: debug, info, warn, error (env FORMFIELD_LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVar(&logFormatFlag, "log-format", "",
		"log format: console, json (env FORMFIELD_LOG_FORMAT)")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("formfield version {{.Version}}\n")

	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

var rootCmd = &cobra.Command{
	Use:   "formfield",
	Short: "Validate, render and prompt accessible form fields",
	Long: `formfield loads field option files (JSON or YAML) and runs the
built-in text input and radios validation rules against them.

Fields can be validated one at a time, submitted together as a page,
rendered as GOV.UK style HTML, JSON or text, or filled in interactively.
Option files can be generated from OpenAPI component schemas.`,
	Example: `  # Validate a single value
  formfield validate hsl_age 17 --config ./options

  # Submit a page and print the error summary
  formfield check hsl_age=17 hsl_fullName= --config ./options

  # Render a field with its error
  formfield render hsl_age --value abc --validate`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return setup(cmd)
	},
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

func setup(cmd *cobra.Command) error {
	loaded, err := LoadConfig()
	if err != nil {
		return err
	}
	if optionsFlag != "" {
		loaded.Options = optionsFlag
	}
	if logLevelFlag != "" {
		loaded.LogLevel = logLevelFlag
	}
	if logFormatFlag != "" {
		loaded.LogFormat = logFormatFlag
	}
	if loaded.NoColor {
		color.NoColor = true
	}

	l, err := newLogger(loaded.LogLevel, loaded.LogFormat, cmd.ErrOrStderr(), loaded.NoColor)
	if err != nil {
		return err
	}
	cfg = loaded
	logger = l
	return nil
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errValidationFailed) {
		_, _ = color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

func printPass(w io.Writer, format string, args ...any) {
	_, _ = color.New(color.FgGreen).Fprintf(w, "✓ "+format+"\n", args...)
}

func printFail(w io.Writer, format string, args ...any) {
	_, _ = color.New(color.FgRed).Fprintf(w, "✗ "+format+"\n", args...)
}

func printLine(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format+"\n", args...)
}
