package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/gyeh/schedh/internal/db"
	"github.com/gyeh/schedh/internal/exitcode"
	"github.com/gyeh/schedh/internal/logging"
	"github.com/gyeh/schedh/internal/normalize"
	"github.com/gyeh/schedh/internal/parquetread"
)

var loadFile string

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load a wide Parquet table into Postgres",
	RunE:  runLoad,
}

func init() {
	loadCmd.Flags().StringVar(&loadFile, "file", "", "Parquet file written by extract (required)")
	_ = loadCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(loadCmd)
}

func runLoad(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)
	ctx := context.Background()

	if err := cfg.ValidateDSN(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	sha, err := normalize.FileHash(loadFile)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash file")
		os.Exit(exitcode.ValidationError)
	}
	log.Info().Str("file", loadFile).Str("sha256", sha).Msg("loading parquet file")

	reader, err := parquetread.Open(loadFile)
	if err != nil {
		log.Error().Err(err).Msg("failed to open parquet file")
		os.Exit(exitcode.ValidationError)
	}
	defer reader.Close()

	if missing := parquetread.MissingColumns(reader.Schema()); len(missing) > 0 {
		log.Warn().Int("count", len(missing)).Strs("columns", missing).Msg("columns missing from file, loading as null")
	}

	records, err := reader.ReadAll()
	if err != nil {
		log.Error().Err(err).Msg("failed to read parquet rows")
		os.Exit(exitcode.ValidationError)
	}

	runID := reader.RunID()
	if _, err := uuid.Parse(runID); err != nil {
		runID = uuid.New().String()
		log.Info().Str("run_id", runID).Msg("file carries no run id, assigning one")
	}

	pool, err := db.NewPool(ctx, cfg.DSN)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		os.Exit(exitcode.DBConnError)
	}
	defer pool.Close()

	if err := db.ApplyMigrations(ctx, pool, log); err != nil {
		log.Error().Err(err).Msg("migration failed")
		os.Exit(exitcode.LoadError)
	}

	res, err := db.LoadRecords(ctx, pool, log, runID, loadFile+"@sha256:"+sha, records)
	if err != nil {
		log.Error().Err(err).Msg("load failed")
		os.Exit(exitcode.LoadError)
	}

	fmt.Printf("Load complete: %d rows into schedh.filings, run %s (%.1fs)\n",
		res.RowsLoaded, runID, res.Duration.Seconds())
	return nil
}
