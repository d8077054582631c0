package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formfield/pkg/fieldschema"
	"github.com/goliatone/go-formfield/pkg/openapi"
)

var (
	openapiSchema   string
	openapiValidate bool
	openapiList     bool
	openapiOutput   string
)

func init() {
	openapiCmd.Flags().StringVarP(&openapiSchema, "schema", "s", "",
		"component schema to convert")
	openapiCmd.Flags().BoolVar(&openapiValidate, "validate", false,
		"validate the OpenAPI document first")
	openapiCmd.Flags().BoolVar(&openapiList, "list", false,
		"list the component schemas instead of converting one")
	openapiCmd.Flags().StringVarP(&openapiOutput, "output", "o", "",
		"output file (stdout if empty)")
	rootCmd.AddCommand(openapiCmd)
}

var openapiCmd = &cobra.Command{
	Use:   "openapi <document>",
	Short: "Generate an option file from an OpenAPI component schema",
	Long: `Convert the properties of an OpenAPI component schema into a field
option file (YAML).

Titles become headings, descriptions hints, integer and number types
numeric inputs, length and range keywords the matching limits, and
enums radios. Presentation options go under the x-formfield extension.`,
	Example: `  formfield openapi api.yaml --schema Applicant -o options/applicant.yaml
  formfield openapi api.yaml --list`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOpenAPI(cmd.Context(), cmd.OutOrStdout(), args[0], openapiSchema, openapiList, openapiValidate, openapiOutput)
	},
}

func runOpenAPI(ctx context.Context, w io.Writer, path, schema string, list, validate bool, output string) error {
	if list {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		names, err := openapi.SchemaNames(ctx, data)
		if err != nil {
			return err
		}
		for _, name := range names {
			printLine(w, "%s", name)
		}
		return nil
	}
	if schema == "" {
		return errors.New("--schema is required unless --list is set")
	}

	doc, err := openapi.LoadFile(ctx, path, schema,
		openapi.WithValidation(validate),
		openapi.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	if output == "" {
		return fieldschema.Encode(w, doc)
	}
	file, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := fieldschema.Encode(file, doc); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}
	printPass(w, "%d fields written to %s", len(doc.Fields), output)
	return nil
}
