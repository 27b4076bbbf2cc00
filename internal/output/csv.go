package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/gyeh/schedh/internal/config"
	"github.com/gyeh/schedh/internal/model"
)

// CSVSink writes a header of column abbreviations followed by one row per
// record. Null cells are written as empty fields.
type CSVSink struct {
	file  *os.File
	enc   io.WriteCloser // non-nil when transcoding
	w     *csv.Writer
	count int64
}

// NewCSV creates path and writes the header row. With windows-1252 encoding,
// characters outside the code page are replaced rather than failing the run.
func NewCSV(path, enc string) (*CSVSink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create csv file: %w", err)
	}

	s := &CSVSink{file: f}
	var out io.Writer = f
	switch enc {
	case "", config.EncodingUTF8:
	case config.EncodingWindows1252:
		e := encoding.ReplaceUnsupported(charmap.Windows1252.NewEncoder())
		s.enc = transform.NewWriter(f, e)
		out = s.enc
	default:
		f.Close()
		return nil, fmt.Errorf("unknown csv encoding %q", enc)
	}

	s.w = csv.NewWriter(out)
	if err := s.w.Write(model.Columns()); err != nil {
		f.Close()
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	return s, nil
}

// Write appends records to the file.
func (s *CSVSink) Write(records []model.Record) error {
	for _, rec := range records {
		if err := s.w.Write(rec.Strings()); err != nil {
			return fmt.Errorf("write csv row %d: %w", s.count+1, err)
		}
		s.count++
	}
	return nil
}

// Count returns the number of records written.
func (s *CSVSink) Count() int64 {
	return s.count
}

// Close flushes buffered rows and closes the file.
func (s *CSVSink) Close() error {
	s.w.Flush()
	if err := s.w.Error(); err != nil {
		s.file.Close()
		return fmt.Errorf("flush csv: %w", err)
	}
	if s.enc != nil {
		if err := s.enc.Close(); err != nil {
			s.file.Close()
			return fmt.Errorf("flush csv encoder: %w", err)
		}
	}
	return s.file.Close()
}
