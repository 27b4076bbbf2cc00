package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gyeh/schedh/internal/db"
	"github.com/gyeh/schedh/internal/exitcode"
	"github.com/gyeh/schedh/internal/extract"
	"github.com/gyeh/schedh/internal/ingest"
	"github.com/gyeh/schedh/internal/logging"
)

var configPath string

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract Schedule H filings into a wide table",
	RunE:  runExtract,
}

func init() {
	f := extractCmd.Flags()
	f.StringVar(&cfg.InputDir, "input", "", "Directory of release batch directories (required)")
	f.StringVar(&cfg.OutPath, "out", "", "Output file (required)")
	f.StringVar(&cfg.Format, "format", "", "Output format: csv, parquet or sqlite (default from --out extension)")
	f.StringVar(&cfg.CSVEncoding, "csv-encoding", "utf-8", "CSV encoding: utf-8 or windows-1252")
	f.StringVar(&configPath, "config", "", "YAML config file (normalize_indicators, progress_every, batches)")
	f.BoolVar(&cfg.NormalizeIndicators, "normalize-indicators", false, "Rewrite Schedule H checkbox fields to Yes/No (raw values by default)")
	f.BoolVar(&cfg.AllowFailures, "allow-failures", false, "Exit 0 even when some documents failed to parse")
	f.IntVar(&cfg.ProgressEvery, "progress-every", 0, "Log progress every N files (default 1000)")
	_ = extractCmd.MarkFlagRequired("input")
	_ = extractCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if configPath != "" {
		if err := cfg.MergeFile(configPath, cmd.Flags().Changed); err != nil {
			log.Error().Err(err).Msg("config load failed")
			os.Exit(exitcode.UsageError)
		}
	}
	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	x := extract.New(extract.Options{NormalizeIndicators: cfg.NormalizeIndicators})
	out, err := ingest.Run(ctx, log, &cfg, x)
	if err != nil {
		exitOnPipelineError(log, err)
	}

	if _, err := ingest.Write(log, &cfg, out); err != nil {
		exitOnPipelineError(log, err)
	}

	if cfg.DSN != "" {
		pool, err := db.NewPool(ctx, cfg.DSN)
		if err != nil {
			log.Error().Err(err).Msg("database connection failed")
			os.Exit(exitcode.DBConnError)
		}
		defer pool.Close()

		if err := db.ApplyMigrations(ctx, pool, log); err != nil {
			exitOnPipelineError(log, &ingest.PipelineError{Phase: ingest.PhaseLoad, Err: err})
		}
		res, err := db.LoadRecords(ctx, pool, log, out.Summary.RunID, cfg.InputDir, out.Records)
		if err != nil {
			exitOnPipelineError(log, &ingest.PipelineError{Phase: ingest.PhaseLoad, Err: err})
		}
		out.Summary.RowsLoaded = res.RowsLoaded
		out.Summary.DurationLoad = res.Duration
	}

	s := out.Summary
	s.DurationTotal = s.DurationScan + s.DurationWrite + s.DurationLoad
	fmt.Printf("Extract complete: %d files, %d rows written, %d skipped, %d failed (%.1fs)\n",
		s.FilesSeen, s.RowsWritten, s.Skipped, s.Failed, s.DurationTotal.Seconds())
	if s.RowsLoaded > 0 {
		fmt.Printf("Loaded %d rows into Postgres (run %s)\n", s.RowsLoaded, s.RunID)
	}

	if s.Failed > 0 && !cfg.AllowFailures {
		os.Exit(exitcode.PartialSuccess)
	}
	return nil
}

// exitOnPipelineError logs err and exits with the code for its phase.
func exitOnPipelineError(log zerolog.Logger, err error) {
	code := exitCodeFor(err)
	var pe *ingest.PipelineError
	switch {
	case code == exitcode.Interrupted:
		log.Warn().Err(err).Msg("extract interrupted")
	case errors.As(err, &pe):
		log.Error().Err(pe.Err).Str("phase", pe.Phase).Msg("extract failed")
	default:
		log.Error().Err(err).Msg("extract failed")
	}
	os.Exit(code)
}

// exitCodeFor maps a fatal extract error to its exit code. Cancellation wins
// over the phase it interrupted.
func exitCodeFor(err error) int {
	if errors.Is(err, context.Canceled) {
		return exitcode.Interrupted
	}
	var pe *ingest.PipelineError
	if !errors.As(err, &pe) {
		return exitcode.UsageError
	}
	switch pe.Phase {
	case ingest.PhaseEnumerate:
		return exitcode.EnumerateError
	case ingest.PhaseWrite:
		return exitcode.WriteError
	default:
		return exitcode.LoadError
	}
}
