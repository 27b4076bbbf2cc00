package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gyeh/schedh/internal/model"
	embedsql "github.com/gyeh/schedh/internal/sql"
)

const (
	filingsSchema = "schedh"
	filingsTable  = "filings"
	runIDColumn   = "run_id"
)

// FilingColumns returns the COPY column list: run_id followed by every
// catalog abbreviation, lower-cased, in catalog order.
func FilingColumns() []string {
	cols := make([]string, 0, len(model.Catalog)+1)
	cols = append(cols, runIDColumn)
	for _, f := range model.Catalog {
		cols = append(cols, strings.ToLower(f.Column))
	}
	return cols
}

// FilingsDDL returns the CREATE TABLE statement for schedh.filings, generated
// from the catalog so the table always matches the record width.
func FilingsDDL() string {
	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE IF NOT EXISTS %s.%s (\n", filingsSchema, filingsTable)
	fmt.Fprintf(&b, "    %s uuid NOT NULL REFERENCES %s.runs (run_id) ON DELETE CASCADE", runIDColumn, filingsSchema)
	for _, f := range model.Catalog {
		fmt.Fprintf(&b, ",\n    %s text", strings.ToLower(f.Column))
	}
	b.WriteString("\n)")
	return b.String()
}

// EnsureFilingsTable creates schedh.filings and its lookup index if missing.
func EnsureFilingsTable(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, FilingsDDL()); err != nil {
		return fmt.Errorf("create filings table: %w", err)
	}
	idx := fmt.Sprintf("CREATE INDEX IF NOT EXISTS filings_run_ein_idx ON %s.%s (%s, irs_filer_ein)",
		filingsSchema, filingsTable, runIDColumn)
	if _, err := pool.Exec(ctx, idx); err != nil {
		return fmt.Errorf("create filings index: %w", err)
	}
	return nil
}

// LoadResult holds metrics from the load phase.
type LoadResult struct {
	RowsLoaded int64
	Duration   time.Duration
}

// LoadRecords registers the run and COPY-loads records into schedh.filings
// via a channel-backed CopyFromSource. The schema must already exist
// (ApplyMigrations). Reloading the same run id replaces
// its earlier rows.
func LoadRecords(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, runID, source string, records []model.Record) (*LoadResult, error) {
	start := time.Now()

	id, err := uuid.Parse(runID)
	if err != nil {
		return nil, fmt.Errorf("run id: %w", err)
	}
	if _, err := pool.Exec(ctx, embedsql.InsertRun, id, source); err != nil {
		return nil, fmt.Errorf("register run: %w", err)
	}
	if _, err := pool.Exec(ctx, embedsql.DeleteRunFilings, id); err != nil {
		return nil, fmt.Errorf("clear previous rows: %w", err)
	}

	ch := make(chan model.Record, 1024)
	errCh := make(chan error, 1)

	// Producer goroutine: push records to channel
	go func() {
		defer close(ch)
		for _, rec := range records {
			select {
			case ch <- rec:
			case <-ctx.Done():
				errCh <- ctx.Err()
				return
			}
		}
		errCh <- nil
	}()

	rows, err := pool.CopyFrom(ctx,
		pgx.Identifier{filingsSchema, filingsTable},
		FilingColumns(),
		NewRecordSource(ch, id),
	)
	if err != nil {
		// Drain so the producer can exit.
		for range ch {
		}
	}

	prodErr := <-errCh
	if prodErr != nil {
		finishRun(ctx, pool, log, id, "failed", 0)
		return nil, fmt.Errorf("load producer: %w", prodErr)
	}
	if err != nil {
		finishRun(ctx, pool, log, id, "failed", 0)
		return nil, fmt.Errorf("load copy: %w", err)
	}
	if err := finishRun(ctx, pool, log, id, "loaded", rows); err != nil {
		return nil, err
	}

	dur := time.Since(start)
	log.Info().
		Str("run_id", runID).
		Int64("rows_loaded", rows).
		Str("duration", dur.String()).
		Float64("rows_per_sec", float64(rows)/dur.Seconds()).
		Msg("load complete")

	return &LoadResult{RowsLoaded: rows, Duration: dur}, nil
}

func finishRun(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, runID uuid.UUID, status string, rows int64) error {
	if _, err := pool.Exec(ctx, embedsql.FinishRun, runID, status, rows); err != nil {
		log.Warn().Err(err).Str("run_id", runID.String()).Msg("run status update failed")
		return fmt.Errorf("finish run: %w", err)
	}
	return nil
}
