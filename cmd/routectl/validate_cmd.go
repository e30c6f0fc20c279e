package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Gunvolt24/oncall_routes/pkg/validate"
)

// newValidateCmd — офлайн-проверка черновиков маршрутов; сервер не нужен.
func newValidateCmd() *cobra.Command {
	var (
		inputPath string
		formatStr string
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate route drafts from a JSON or JSONL file",
		Long: `Validate route drafts offline. Valid drafts are written to stdout in canonical
form, the summary goes to stderr. Without --in drafts are read from stdin as JSONL.`,
		Example: `  routectl validate --in routes.jsonl
  cat routes.json | routectl validate --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				format    = validate.InputFormat(formatStr)
				validator = validate.NewRouteValidator()
				summary   validate.Summary
				err       error
			)
			if inputPath == "" {
				if format == validate.FormatAuto {
					format = validate.FormatJSONL
				}
				summary, err = validate.ValidateStream(cmd.Context(), validator, cmd.InOrStdin(), format, cmd.OutOrStdout())
			} else {
				summary, err = validate.ValidateFile(cmd.Context(), validator, inputPath, format, cmd.OutOrStdout())
			}

			for _, rej := range summary.Rejected {
				fmt.Fprintf(cmd.ErrOrStderr(), "line %d: %v\n", rej.Line, rej.Err)
			}
			if err != nil {
				return fmt.Errorf("validation: %w (%s)", err, summary)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "validation ok (%s)\n", summary)
			return nil
		},
	}

	cmd.Flags().StringVar(&inputPath, "in", "", "path to input (.json or .jsonl); stdin when empty")
	cmd.Flags().StringVar(&formatStr, "format", "auto", "input format: auto|json|jsonl")
	return cmd
}
