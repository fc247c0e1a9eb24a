// Package cmd - review command
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bitterroot-intake/core/engine"
	"bitterroot-intake/core/types"
	"bitterroot-intake/internal/config"
	"bitterroot-intake/internal/errors"
)

var outputFormat string

// reviewCmd represents the review command
var reviewCmd = &cobra.Command{
	Use:   "review [form.json]",
	Short: "Review one estimate request form",
	Long: `Run a submitted request form through the full review pipeline.

The argument is a JSON file holding one request form snapshot.

Examples:
  bitterroot-intake review request.json
  bitterroot-intake review --format json request.json`,
	Args: cobra.ExactArgs(1),
	RunE: runReview,
}

func init() {
	reviewCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (report, json)")
}

func runReview(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return errors.Input("failed to read form file", err)
	}

	var form types.Form
	if err := json.Unmarshal(data, &form); err != nil {
		return errors.Input("failed to parse form JSON", err)
	}

	result := engine.New().Review(&form)

	format := outputFormat
	if format == "" {
		format = config.Get().Output.Format
	}

	if format == "json" {
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return errors.Internal("failed to serialize result", err)
		}
		fmt.Println(string(out))
		return nil
	}

	switch result.Outcome {
	case engine.OutcomeValidationFailed:
		fmt.Fprintln(os.Stderr, "Validation failed:")
		for _, failure := range result.Failures {
			fmt.Fprintf(os.Stderr, "  - %s\n", failure)
		}
		return errors.Validation(result.Error)
	case engine.OutcomeDeclined:
		fmt.Println(result.Rejection)
		return nil
	default:
		fmt.Println(result.Report)
		return nil
	}
}
