// Package output writes extracted records as one wide table. Every sink
// emits the catalog columns in catalog order with nulls preserved where the
// format allows it.
package output

import (
	"fmt"

	"github.com/gyeh/schedh/internal/config"
	"github.com/gyeh/schedh/internal/model"
)

// Sink receives records and persists them. Write may be called more than
// once; Close flushes and releases the destination. Count reports the rows
// accepted so far.
type Sink interface {
	Write(records []model.Record) error
	Count() int64
	Close() error
}

// Options configures a sink.
type Options struct {
	CSVEncoding string // config.EncodingUTF8 or config.EncodingWindows1252
	RunID       string // stored as Parquet key/value metadata
}

// New creates a sink of the given format writing to path. Existing files are
// truncated.
func New(format, path string, opts Options) (Sink, error) {
	switch format {
	case config.FormatCSV, "":
		return NewCSV(path, opts.CSVEncoding)
	case config.FormatParquet:
		return NewParquet(path, opts.RunID)
	case config.FormatSQLite:
		return NewSQLite(path)
	}
	return nil, fmt.Errorf("unknown output format %q", format)
}
