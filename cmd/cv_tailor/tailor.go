package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-tailor/internal/config"
	"github.com/jonathan/cv-tailor/internal/correspondence"
	"github.com/jonathan/cv-tailor/internal/observability"
	"github.com/jonathan/cv-tailor/internal/pipeline"
	"github.com/jonathan/cv-tailor/internal/rendering"
)

var tailorCommand = &cobra.Command{
	Use:   "tailor",
	Short: "Run the full tailoring pipeline end-to-end",
	Long: `Loads the applicant profile and job posting, extracts the requirement
signal, tailors the profile to it, and renders the requested output formats.
Cover letter and outreach email generation are opt-in via flags.`,
	RunE: runTailorCmd,
}

var (
	tailorProfile     string
	tailorPosting     string
	tailorFormats     []string
	tailorOutDir      string
	tailorBaseName    string
	tailorCoverLetter bool
	tailorEmail       bool
	tailorSeed        int64
	tailorDate        string
	tailorVerbose     bool
	tailorJSONLogs    bool
	tailorDebug       bool
)

func init() {
	tailorCommand.Flags().StringVarP(&tailorProfile, "profile", "p", "", "Path to applicant profile JSON file")
	tailorCommand.Flags().StringVarP(&tailorPosting, "posting", "j", "", "Path to job posting JSON file")
	tailorCommand.Flags().StringSliceVarP(&tailorFormats, "formats", "f", []string{"text"}, "Output formats to render (text, html, pdf)")
	tailorCommand.Flags().StringVarP(&tailorOutDir, "out-dir", "o", "", "Output directory (defaults to CVTAILOR_OUTPUT_DIR)")
	tailorCommand.Flags().StringVar(&tailorBaseName, "base-name", "", "Filename stem for all outputs (derived from profile and posting when unset)")
	tailorCommand.Flags().BoolVar(&tailorCoverLetter, "cover-letter", false, "Also compose a cover letter")
	tailorCommand.Flags().BoolVar(&tailorEmail, "email", false, "Also compose an outreach email")
	tailorCommand.Flags().Int64Var(&tailorSeed, "seed", 0, "Seed for correspondence phrasing variants (deterministic when set)")
	tailorCommand.Flags().StringVar(&tailorDate, "date", "", "Cover letter date line (defaults to today)")
	tailorCommand.Flags().BoolVarP(&tailorVerbose, "verbose", "v", false, "Print detailed progress boxes")
	tailorCommand.Flags().BoolVar(&tailorJSONLogs, "json-logs", false, "Emit logs as JSON")
	tailorCommand.Flags().BoolVar(&tailorDebug, "debug", false, "Enable debug logging")

	_ = tailorCommand.MarkFlagRequired("profile")
	_ = tailorCommand.MarkFlagRequired("posting")

	rootCmd.AddCommand(tailorCommand)
}

func runTailorCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	logger, err := observability.NewLogger(tailorJSONLogs, tailorDebug)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	formats, err := parseFormats(tailorFormats)
	if err != nil {
		return err
	}

	var picker correspondence.Picker
	if cmd.Flags().Changed("seed") {
		picker = correspondence.NewSeededPicker(tailorSeed)
	}

	date := tailorDate
	if date == "" && (tailorCoverLetter || tailorEmail) {
		date = time.Now().Format("January 2, 2006")
	}

	opts := pipeline.RunOptions{
		ProfilePath: tailorProfile,
		PostingPath: tailorPosting,
		Formats:     formats,
		OutputDir:   tailorOutDir,
		BaseName:    tailorBaseName,
		CoverLetter: tailorCoverLetter,
		Email:       tailorEmail,
		Date:        date,
		Picker:      picker,
		Verbose:     tailorVerbose,
		Config:      cfg,
		Logger:      logger,
		Out:         cmd.OutOrStdout(),
	}

	result, err := pipeline.Run(ctx, opts)
	if err != nil {
		return err
	}

	for _, path := range result.Written {
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	return nil
}

// parseFormats validates the format names and rejects duplicates.
func parseFormats(names []string) ([]rendering.Format, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("at least one format is required")
	}

	seen := make(map[rendering.Format]bool, len(names))
	formats := make([]rendering.Format, 0, len(names))
	for _, name := range names {
		format, err := rendering.ParseFormat(name)
		if err != nil {
			return nil, err
		}
		if seen[format] {
			return nil, fmt.Errorf("duplicate format %q", name)
		}
		seen[format] = true
		formats = append(formats, format)
	}
	return formats, nil
}
