package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-tailor/internal/extraction"
	"github.com/jonathan/cv-tailor/internal/ingestion"
)

var extractCommand = &cobra.Command{
	Use:   "extract",
	Short: "Extract the requirement record from a job posting",
	Long: `Loads a job posting JSON file, runs requirement extraction, and prints
the resulting requirement record as JSON. Useful for inspecting what the
tailoring step will see without rendering anything.`,
	RunE: runExtractCmd,
}

var extractPosting string

func init() {
	extractCommand.Flags().StringVarP(&extractPosting, "posting", "j", "", "Path to job posting JSON file")
	_ = extractCommand.MarkFlagRequired("posting")

	rootCmd.AddCommand(extractCommand)
}

func runExtractCmd(cmd *cobra.Command, _ []string) error {
	encoded, err := extractRecord(extractPosting)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
	return nil
}

// extractRecord loads the posting and returns the requirement record as
// indented JSON.
func extractRecord(postingPath string) ([]byte, error) {
	posting, err := ingestion.LoadPosting(postingPath)
	if err != nil {
		return nil, err
	}

	record, err := extraction.Extract(posting)
	if err != nil {
		return nil, err
	}

	encoded, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode requirement record: %w", err)
	}
	return encoded, nil
}
