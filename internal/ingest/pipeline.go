package ingest

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gyeh/schedh/internal/config"
	"github.com/gyeh/schedh/internal/extract"
	"github.com/gyeh/schedh/internal/model"
)

// PipelineError wraps an error with the phase where it occurred.
type PipelineError struct {
	Phase string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Phase, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// Phases reported in PipelineError.
const (
	PhaseEnumerate = "enumerate"
	PhaseWrite     = "write"
	PhaseLoad      = "load"
)

// Output is the materialized result of a scan: every extracted record in
// batch then file order, plus the run summary.
type Output struct {
	Records []model.Record
	Summary *model.RunSummary
}

// Run walks every batch directory under cfg.InputDir, extracts each filing
// and returns the records in memory. Per-document failures are logged and
// counted; only enumeration failures and cancellation abort the run.
func Run(ctx context.Context, log zerolog.Logger, cfg *config.Config, x *extract.Extractor) (*Output, error) {
	start := time.Now()
	registry := cfg.Registry()
	summary := &model.RunSummary{
		RunID:    uuid.New().String(),
		InputDir: cfg.InputDir,
	}

	log.Info().Str("input", cfg.InputDir).Str("run_id", summary.RunID).Msg("starting scan")
	batches, err := ListBatches(cfg.InputDir)
	if err != nil {
		return nil, &PipelineError{Phase: PhaseEnumerate, Err: err}
	}

	var records []model.Record
	seen := make(map[string]string)
	every := int64(cfg.Progress())

	for _, name := range batches {
		prov := registry.Resolve(name)
		summary.Batches++
		if prov.IsZero() {
			summary.BatchesUnknown++
			log.Warn().Str("batch", name).Msg("batch not in release registry, provenance left blank")
		}

		files, err := ListFiles(filepath.Join(cfg.InputDir, name))
		if err != nil {
			return nil, &PipelineError{Phase: PhaseEnumerate, Err: err}
		}
		log.Info().Str("batch", name).Int("files", len(files)).Str("year", prov.Year).Msg("scanning batch")

		batchStart := time.Now()
		var batchRows int64
		for _, path := range files {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			res := ProcessFile(x, path, prov)
			summary.FilesSeen++
			switch res.Status {
			case Extracted:
				if prev, dup := seen[res.SHA256]; dup {
					summary.Duplicates++
					log.Debug().Str("file", path).Str("same_as", prev).Msg("duplicate filing content")
				} else {
					seen[res.SHA256] = path
				}
				records = append(records, res.Record)
				summary.Extracted++
				batchRows++
			case Skipped:
				summary.Skipped++
			case Failed:
				summary.Failed++
				log.Warn().Err(res.Err).Str("file", path).Msg("document failed")
			}

			if summary.FilesSeen%every == 0 {
				log.Info().
					Int64("files", summary.FilesSeen).
					Int64("extracted", summary.Extracted).
					Int64("skipped", summary.Skipped).
					Int64("failed", summary.Failed).
					Msg("progress")
			}
		}

		log.Info().
			Str("batch", name).
			Int64("rows", batchRows).
			Str("duration", time.Since(batchStart).String()).
			Msg("batch complete")
	}

	summary.DurationScan = time.Since(start)
	summary.DurationTotal = summary.DurationScan

	log.Info().
		Int("batches", summary.Batches).
		Int64("files", summary.FilesSeen).
		Int64("extracted", summary.Extracted).
		Int64("skipped", summary.Skipped).
		Int64("failed", summary.Failed).
		Int64("duplicates", summary.Duplicates).
		Str("duration", summary.DurationScan.String()).
		Msg("scan complete")

	return &Output{Records: records, Summary: summary}, nil
}
