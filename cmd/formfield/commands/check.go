package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formfield/pkg/orchestrator"
)

var (
	checkHTML   bool
	checkFields []string
)

func init() {
	checkCmd.Flags().BoolVar(&checkHTML, "html", false,
		"print summary entries as links to the failing fields")
	checkCmd.Flags().StringSliceVar(&checkFields, "fields", nil,
		"fields on the page, in order (default: every loaded field)")
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check [field-id=value ...]",
	Short: "Submit a page of fields and print the error summary",
	Long: `Build every field into one page, seed the given values and submit it.

Each failing field is listed in page order, the way an error summary
would show it. Fields without a value are submitted empty.

Exit codes:
  0 - Every field is valid
  1 - At least one field failed`,
	RunE: func(cmd *cobra.Command, args []string) error {
		values, err := parseAssignments(args)
		if err != nil {
			return err
		}
		gen, err := newOrchestrator(cfg, logger)
		if err != nil {
			return err
		}
		return runCheck(cmd.Context(), cmd.OutOrStdout(), gen, checkFields, values, checkHTML)
	},
}

func parseAssignments(args []string) (map[string]string, error) {
	values := make(map[string]string, len(args))
	for _, arg := range args {
		id, value, ok := strings.Cut(arg, "=")
		id = strings.TrimSpace(id)
		if !ok || id == "" {
			return nil, fmt.Errorf("invalid assignment %q: want field-id=value", arg)
		}
		values[id] = value
	}
	return values, nil
}

func runCheck(ctx context.Context, w io.Writer, gen *orchestrator.Orchestrator, ids []string, values map[string]string, asHTML bool) error {
	page, err := gen.NewPage(ctx, ids, values, nil)
	if err != nil {
		return err
	}

	failures := page.Submit()
	if len(failures) == 0 {
		printPass(w, "%d fields valid", len(page.IDs()))
		return nil
	}

	printLine(w, "There is a problem")
	for _, failure := range failures {
		if asHTML {
			printLine(w, "%s", failure.Link)
			continue
		}
		printFail(w, "%s: %s", failure.FieldID, failure.Message)
	}
	return errValidationFailed
}
