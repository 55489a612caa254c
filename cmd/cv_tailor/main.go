// Package main provides the entry point for the CV Tailor CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cv_tailor",
	Short: "CV Tailor command line",
	Long:  "CV Tailor derives a requirement signal from a job posting and renders a tailored CV, cover letter and outreach email from an applicant profile.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
