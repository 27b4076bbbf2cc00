package db

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/gyeh/schedh/internal/model"
)

// RecordSource implements pgx.CopyFromSource by reading Records from a channel.
// This provides natural backpressure between the record producer and COPY writer.
type RecordSource struct {
	ch      <-chan model.Record
	runID   uuid.UUID
	current model.Record
	err     error
}

// NewRecordSource creates a CopyFromSource backed by a channel. Every row is
// prefixed with runID, matching FilingColumns.
func NewRecordSource(ch <-chan model.Record, runID uuid.UUID) *RecordSource {
	return &RecordSource{ch: ch, runID: runID}
}

// Next advances to the next row. Returns false when the channel is closed.
func (s *RecordSource) Next() bool {
	rec, ok := <-s.ch
	if !ok {
		return false
	}
	s.current = rec
	return true
}

// Values returns the current row's values in COPY column order.
func (s *RecordSource) Values() ([]any, error) {
	return append([]any{s.runID}, s.current.Values()...), nil
}

// Err returns any error encountered during iteration.
func (s *RecordSource) Err() error {
	return s.err
}

// Compile-time check that RecordSource satisfies the interface.
var _ pgx.CopyFromSource = (*RecordSource)(nil)
