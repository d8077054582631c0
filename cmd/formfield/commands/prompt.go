package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formfield/pkg/field"
	"github.com/goliatone/go-formfield/pkg/orchestrator"
	"github.com/goliatone/go-formfield/pkg/renderers/tui"
)

var promptMaxAttempts int

func init() {
	promptCmd.Flags().IntVar(&promptMaxAttempts, "max-attempts", 0,
		"give up after this many invalid answers (0 for no limit)")
	rootCmd.AddCommand(promptCmd)
}

var promptCmd = &cobra.Command{
	Use:   "prompt <field-id>",
	Short: "Fill in a field interactively",
	Long: `Ask for a field's value in the terminal, re-asking with the error
message until the value passes validation. The accepted value is
printed on success.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		gen, err := newOrchestrator(cfg, logger)
		if err != nil {
			return err
		}
		prompter := tui.New(
			tui.WithPromptDriver(tui.NewSurveyDriver(cmd.ErrOrStderr())),
			tui.WithMaxAttempts(promptMaxAttempts),
			tui.WithLogger(logger),
		)
		return runPrompt(cmd.Context(), cmd.OutOrStdout(), gen, prompter, args[0])
	},
}

func runPrompt(ctx context.Context, w io.Writer, gen *orchestrator.Orchestrator, prompter *tui.Prompter, id string) error {
	control, err := gen.Control(ctx, id, "")
	if err != nil {
		return err
	}

	var value string
	switch c := control.(type) {
	case *field.TextInput:
		value, err = prompter.PromptText(ctx, c)
	case *field.Radios:
		value, err = prompter.PromptRadios(ctx, c)
	default:
		return fmt.Errorf("field %q cannot be prompted", id)
	}
	if errors.Is(err, tui.ErrAborted) {
		printFail(w, "%s: aborted", id)
		return errValidationFailed
	}
	if err != nil {
		return err
	}
	printLine(w, "%s", value)
	return nil
}
