package commands

import (
	"context"
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formfield/pkg/model"
	"github.com/goliatone/go-formfield/pkg/orchestrator"
)

var validateJSON bool

func init() {
	validateCmd.Flags().BoolVar(&validateJSON, "json", false,
		"output the outcome as JSON")
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate <field-id> [value]",
	Short: "Validate one value against a field's rules",
	Long: `Validate a single value against the rules configured for a field.

A missing value is validated as empty. For radios the value is the
selected item.

Exit codes:
  0 - Value is valid
  1 - Value is invalid or the field could not be loaded`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		gen, err := newOrchestrator(cfg, logger)
		if err != nil {
			return err
		}
		var value string
		if len(args) == 2 {
			value = args[1]
		}
		return runValidate(cmd.Context(), cmd.OutOrStdout(), gen, args[0], value, validateJSON)
	},
}

// validateResult is the JSON output structure.
type validateResult struct {
	Field string `json:"field"`
	model.Outcome
}

func runValidate(ctx context.Context, w io.Writer, gen *orchestrator.Orchestrator, id, value string, asJSON bool) error {
	outcome, err := gen.Validate(ctx, id, value)
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(validateResult{Field: id, Outcome: outcome}); err != nil {
			return err
		}
	} else if outcome.Valid {
		printPass(w, "%s is valid", id)
	} else {
		printFail(w, "%s: %s", id, outcome.Message)
	}

	if !outcome.Valid {
		return errValidationFailed
	}
	return nil
}
