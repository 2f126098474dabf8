package main

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jackzampolin/scribe/version"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "scribe",
	Short: "Transcribe PDFs into structured text with a hosted generative model",
	Long: `Scribe batches the pages of each PDF in a directory into sequential
requests to a hosted generative model, asking it to transcribe the
content into a structured text format, and appends the results to a
per-PDF transcript file.

The pipeline:
  - Splits each PDF into fixed-size page ranges
  - Uploads the document and dispatches one request per range, in order
  - Appends each response to <name>_extracted.txt next to the PDF
  - Skips PDFs whose transcript already exists`,
	Version: version.GitRelease,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.scribe/config.yaml)",
	)

	// Load a local .env before any command runs; absence is fine.
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		_ = godotenv.Load()
	}

	rootCmd.AddCommand(versionCmd)
}
