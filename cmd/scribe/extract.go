package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/scribe/internal/config"
	"github.com/jackzampolin/scribe/internal/extract"
	"github.com/jackzampolin/scribe/internal/providers"
)

var (
	extractMode  string
	extractModel string
)

var extractCmd = &cobra.Command{
	Use:   "extract <directory> [chunk_size] [wait_seconds]",
	Short: "Transcribe every PDF in a directory",
	Long: `Transcribe every PDF in a directory into structured text.

Each PDF is split into page ranges of chunk_size pages (default 50) and
dispatched to the model one range at a time, pausing wait_seconds
(default 10) between requests. Results are appended to
<name>_extracted.txt next to the PDF; documents whose transcript already
exists are skipped.

Dispatch modes:
  chat   one conversation per document, so the model keeps its section
         numbering across chunks (default)
  batch  independent request per chunk; failures are recorded inline in
         the transcript

Examples:
  scribe extract ./books                 # defaults: 50 pages, 10s wait
  scribe extract ./books 30 5            # 30-page chunks, 5s between
  scribe extract ./books --mode batch    # independent per-chunk requests`,
	Args: cobra.RangeArgs(1, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))

		cm, err := config.NewManager(cfgFile)
		if err != nil {
			return err
		}
		cfg := cm.Get()

		// Positional overrides, then flag overrides
		if len(args) > 1 {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid chunk_size %q: %w", args[1], err)
			}
			cfg.ChunkSize = n
		}
		if len(args) > 2 {
			n, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid wait_seconds %q: %w", args[2], err)
			}
			cfg.WaitSeconds = n
		}
		if extractMode != "" {
			cfg.Mode = extractMode
		}
		if extractModel != "" {
			cfg.Model = extractModel
		}

		if err := cfg.Validate(); err != nil {
			return err
		}

		// Credential check happens before any scan or upload.
		apiKey := cfg.ResolvedAPIKey()
		if apiKey == "" {
			return fmt.Errorf("no API key configured: set OPENAI_API_KEY (or api_key in the config file)")
		}

		model := providers.NewOpenAIModel(providers.OpenAIConfig{
			APIKey:  apiKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
		})

		runner := extract.NewRunner(model, cfg, logger)

		// Runs take hours; watch the config file so the pauses can be
		// tuned mid-run. Chunk size, mode, and model stay fixed.
		cm.OnChange(func(updated *config.Config) {
			if err := updated.Validate(); err != nil {
				logger.Warn("ignoring invalid config reload", "error", err)
				return
			}
			runner.SetPauses(updated.Wait(), updated.UploadSettle())
			logger.Info("config reloaded",
				"wait_seconds", updated.WaitSeconds,
				"upload_settle_seconds", updated.UploadSettleSeconds)
		})
		cm.WatchConfig()

		return runner.Run(cmd.Context(), args[0])
	},
}

func init() {
	extractCmd.Flags().StringVar(&extractMode, "mode", "", "dispatch mode: chat or batch (default from config)")
	extractCmd.Flags().StringVar(&extractModel, "model", "", "model name (default from config)")

	rootCmd.AddCommand(extractCmd)
}
