// Package pipeline provides the high-level orchestration for a tailoring
// run: load and validate inputs, extract requirements, tailor the profile,
// render the requested formats, and write everything through the path
// guards.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/cv-tailor/internal/config"
	"github.com/jonathan/cv-tailor/internal/correspondence"
	"github.com/jonathan/cv-tailor/internal/extraction"
	"github.com/jonathan/cv-tailor/internal/ingestion"
	"github.com/jonathan/cv-tailor/internal/observability"
	"github.com/jonathan/cv-tailor/internal/pathguard"
	"github.com/jonathan/cv-tailor/internal/rendering"
	"github.com/jonathan/cv-tailor/internal/tailoring"
	"github.com/jonathan/cv-tailor/internal/types"
)

// RunOptions holds configuration for a tailoring run.
type RunOptions struct {
	ProfilePath string
	PostingPath string

	// Formats lists the document formats to render. At least one is required.
	Formats []rendering.Format

	// OutputDir overrides the configured output directory when non-empty.
	OutputDir string

	// BaseName overrides the derived output filename stem. It is sanitized
	// before use.
	BaseName string

	// CoverLetter and Email enable the correspondence outputs.
	CoverLetter bool
	Email       bool

	// Date is the letter date line. Supplied by the caller so runs stay
	// reproducible.
	Date string

	// Picker selects correspondence phrasing variants. Nil picks the first
	// variant of each set.
	Picker correspondence.Picker

	Verbose bool

	Config *config.Config
	Logger *zap.Logger

	// Out receives verbose printer output. Defaults to stdout.
	Out io.Writer
}

// Result reports what a run produced.
type Result struct {
	Record   *types.RequirementRecord
	Document *types.TailoredDocument
	Written  []string
}

// Run executes the full pipeline. Inputs load concurrently, document
// formats render concurrently, and every write goes through pathguard.
func Run(ctx context.Context, opts RunOptions) (*Result, error) {
	if len(opts.Formats) == 0 {
		return nil, fmt.Errorf("no output formats requested")
	}
	if opts.Config == nil {
		return nil, fmt.Errorf("missing configuration")
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	printer := observability.NewPrinter(out)

	profile, posting, err := loadInputs(ctx, opts, logger)
	if err != nil {
		return nil, err
	}

	logger.Info("extracting requirements",
		zap.String("title", observability.TruncateForLog(posting.Title, 60)),
		zap.String("company", observability.TruncateForLog(posting.Company, 60)))

	record, err := extraction.Extract(posting)
	if err != nil {
		return nil, err
	}
	if opts.Verbose {
		printer.PrintRequirements(record)
	}

	document := tailoring.Tailor(profile, record)
	if opts.Verbose {
		printer.PrintTailoredDocument(document)
	}

	outputDir, err := prepareOutputDir(opts)
	if err != nil {
		return nil, err
	}

	baseName, err := outputBaseName(opts, profile, record)
	if err != nil {
		return nil, err
	}

	renderer, err := rendering.NewRenderer(opts.Config.Style, opts.Config.TempDir, opts.Config.ConvertTimeout, logger)
	if err != nil {
		return nil, err
	}

	written, err := renderDocuments(ctx, renderer, document, outputDir, baseName, opts.Formats, logger)
	if err != nil {
		return nil, err
	}

	correspondenceOpts := correspondence.Options{Date: opts.Date, Picker: opts.Picker}

	if opts.CoverLetter {
		letter := correspondence.ComposeCoverLetter(profile, record, correspondenceOpts)
		if opts.Verbose {
			printer.PrintCoverLetter(letter)
		}
		path, err := writeOutput(outputDir, baseName+"_cover_letter.txt", []byte(formatCoverLetter(letter)))
		if err != nil {
			return nil, err
		}
		written = append(written, path)
	}

	if opts.Email {
		email := correspondence.ComposeEmail(profile, record, written, correspondenceOpts)
		path, err := writeOutput(outputDir, baseName+"_email.txt", []byte(formatEmail(email)))
		if err != nil {
			return nil, err
		}
		written = append(written, path)
	}

	if opts.Verbose {
		printer.PrintOutputs(written)
	}
	logger.Info("run complete", zap.Int("files", len(written)))

	return &Result{Record: record, Document: document, Written: written}, nil
}

// loadInputs reads and validates the profile and posting concurrently.
func loadInputs(ctx context.Context, opts RunOptions, logger *zap.Logger) (*types.ApplicantProfile, *types.JobPosting, error) {
	var (
		profile *types.ApplicantProfile
		posting *types.JobPosting
	)

	group, _ := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		profile, err = ingestion.LoadProfile(opts.ProfilePath)
		return err
	})
	group.Go(func() error {
		var err error
		posting, err = ingestion.LoadPosting(opts.PostingPath)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, nil, err
	}

	logger.Info("inputs loaded",
		zap.String("profile", opts.ProfilePath),
		zap.String("posting", opts.PostingPath))
	return profile, posting, nil
}

// prepareOutputDir normalizes and creates the output directory.
func prepareOutputDir(opts RunOptions) (string, error) {
	dir := opts.OutputDir
	if dir == "" {
		dir = opts.Config.OutputDir
	}
	normalized, err := pathguard.NormalizeOutputDir(dir, "")
	if err != nil {
		return "", err
	}
	if err := pathguard.EnsureDir(normalized); err != nil {
		return "", err
	}
	return normalized, nil
}

// outputBaseName derives the filename stem for all outputs of the run.
func outputBaseName(opts RunOptions, profile *types.ApplicantProfile, record *types.RequirementRecord) (string, error) {
	base := opts.BaseName
	if base == "" {
		base = fmt.Sprintf("%s_%s_cv", profile.Name, record.Company)
		base = strings.ReplaceAll(base, " ", "_")
	}
	return pathguard.SanitizeFileName(base)
}

// renderDocuments renders every requested format concurrently and writes
// each one into the output directory.
func renderDocuments(ctx context.Context, renderer *rendering.Renderer, document *types.TailoredDocument, outputDir, baseName string, formats []rendering.Format, logger *zap.Logger) ([]string, error) {
	paths := make([]string, len(formats))

	group, groupCtx := errgroup.WithContext(ctx)
	for i, format := range formats {
		group.Go(func() error {
			rendered, err := renderer.Render(groupCtx, document, format)
			if err != nil {
				return err
			}
			path, err := writeOutput(outputDir, baseName+"."+format.Extension(), rendered)
			if err != nil {
				return err
			}
			logger.Info("rendered document",
				zap.String("format", string(format)),
				zap.String("path", path))
			paths[i] = path
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}

// writeOutput joins the filename onto the output directory through the
// path guard and writes the content.
func writeOutput(outputDir, filename string, content []byte) (string, error) {
	path, err := pathguard.JoinSafely(outputDir, filename)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return path, nil
}

// formatCoverLetter lays the letter model out as plain text.
func formatCoverLetter(letter *types.CoverLetter) string {
	var sb strings.Builder
	if letter.Date != "" {
		sb.WriteString(letter.Date)
		sb.WriteString("\n\n")
	}
	sb.WriteString(letter.Recipient)
	sb.WriteString("\n\n")
	sb.WriteString(letter.Opening)
	sb.WriteString("\n\n")
	for _, paragraph := range letter.Body {
		sb.WriteString(paragraph)
		sb.WriteString("\n\n")
	}
	sb.WriteString(letter.Closing)
	sb.WriteString("\n\n")
	sb.WriteString(letter.Signature)
	sb.WriteString("\n")
	return sb.String()
}

// formatEmail lays the email model out as plain text with headers.
func formatEmail(email *types.OutreachEmail) string {
	var sb strings.Builder
	sb.WriteString("From: " + email.From + "\n")
	sb.WriteString("To: " + email.To + "\n")
	sb.WriteString("Subject: " + email.Subject + "\n")
	if len(email.Attachments) > 0 {
		sb.WriteString("Attachments: " + strings.Join(email.Attachments, ", ") + "\n")
	}
	sb.WriteString("\n")
	sb.WriteString(email.Body)
	sb.WriteString("\n")
	return sb.String()
}
