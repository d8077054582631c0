package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formfield/pkg/orchestrator"
)

var (
	renderRenderer string
	renderValue    string
	renderValidate bool
	renderOutput   string
)

func init() {
	renderCmd.Flags().StringVarP(&renderRenderer, "renderer", "r", "",
		"renderer: govuk, json, text (env FORMFIELD_RENDERER)")
	renderCmd.Flags().StringVar(&renderValue, "value", "",
		"value to seed the field with")
	renderCmd.Flags().BoolVar(&renderValidate, "validate", false,
		"validate before rendering so errors are shown")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "",
		"output file (stdout if empty)")
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render <field-id>",
	Short: "Render a field",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		gen, err := newOrchestrator(cfg, logger)
		if err != nil {
			return err
		}
		req := orchestrator.Request{
			FieldID:  args[0],
			Renderer: renderRenderer,
			Value:    renderValue,
			Validate: renderValidate,
		}
		return runRender(cmd.Context(), cmd.OutOrStdout(), gen, req, renderOutput)
	},
}

func runRender(ctx context.Context, w io.Writer, gen *orchestrator.Orchestrator, req orchestrator.Request, output string) error {
	out, err := gen.Render(ctx, req)
	if err != nil {
		return err
	}

	if output == "" {
		_, err = fmt.Fprintln(w, string(out))
		return err
	}
	if err := os.WriteFile(output, out, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	printPass(w, "%s written to %s", req.FieldID, output)
	return nil
}
