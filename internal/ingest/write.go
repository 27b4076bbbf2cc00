package ingest

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/gyeh/schedh/internal/config"
	"github.com/gyeh/schedh/internal/model"
	"github.com/gyeh/schedh/internal/output"
)

// WriteResult holds metrics from the write phase.
type WriteResult struct {
	RowsWritten int64
	Duration    time.Duration
}

// Write serializes the scanned records to cfg.OutPath in cfg.Format. Any
// failure is a PipelineError in the write phase.
func Write(log zerolog.Logger, cfg *config.Config, out *Output) (*WriteResult, error) {
	start := time.Now()

	sink, err := output.New(cfg.Format, cfg.OutPath, output.Options{
		CSVEncoding: cfg.CSVEncoding,
		RunID:       out.Summary.RunID,
	})
	if err != nil {
		return nil, &PipelineError{Phase: PhaseWrite, Err: err}
	}
	if err := sink.Write(out.Records); err != nil {
		sink.Close()
		return nil, &PipelineError{Phase: PhaseWrite, Err: err}
	}
	rows := sink.Count()
	if err := sink.Close(); err != nil {
		return nil, &PipelineError{Phase: PhaseWrite, Err: err}
	}

	res := &WriteResult{
		RowsWritten: rows,
		Duration:    time.Since(start),
	}
	out.Summary.RowsWritten = res.RowsWritten
	out.Summary.DurationWrite = res.Duration

	log.Info().
		Str("out", cfg.OutPath).
		Str("format", cfg.Format).
		Int("columns", len(model.Catalog)).
		Int64("rows", res.RowsWritten).
		Str("duration", res.Duration.String()).
		Msg("write complete")
	return res, nil
}
