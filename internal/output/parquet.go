package output

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"

	"github.com/gyeh/schedh/internal/model"
)

const parquetBatchSize = 1024

// Schema returns the wide-table Parquet schema: one optional string column
// per catalog field, named by its abbreviation. Parquet groups order their
// leaves by name, so the physical column order is alphabetical.
func Schema() *parquet.Schema {
	group := make(parquet.Group, len(model.Catalog))
	for _, f := range model.Catalog {
		group[f.Column] = parquet.Optional(parquet.String())
	}
	return parquet.NewSchema("filing", group)
}

// ParquetSink writes records to a zstd-compressed Parquet file.
type ParquetSink struct {
	file   *os.File
	writer *parquet.Writer
	// leaf[i] is the catalog position of physical column i.
	leaf  []int
	count int64
}

// NewParquet creates a Parquet writer at path. runID is stored in the file
// metadata when non-empty.
func NewParquet(path, runID string) (*ParquetSink, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create parquet file: %w", err)
	}

	schema := Schema()
	leaf, err := leafOrder(schema)
	if err != nil {
		file.Close()
		return nil, err
	}

	opts := []parquet.WriterOption{
		schema,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedDefault}),
		parquet.CreatedBy("schedh", "1.0", ""),
	}
	if runID != "" {
		opts = append(opts, parquet.KeyValueMetadata(model.RunIDKey, runID))
	}

	return &ParquetSink{
		file:   file,
		writer: parquet.NewWriter(file, opts...),
		leaf:   leaf,
	}, nil
}

func leafOrder(schema *parquet.Schema) ([]int, error) {
	cols := schema.Columns()
	leaf := make([]int, len(cols))
	for i, path := range cols {
		idx, ok := columnIndex[path[len(path)-1]]
		if !ok {
			return nil, fmt.Errorf("parquet column %v not in catalog", path)
		}
		leaf[i] = idx
	}
	return leaf, nil
}

var columnIndex = func() map[string]int {
	m := make(map[string]int, len(model.Catalog))
	for i, f := range model.Catalog {
		m[f.Column] = i
	}
	return m
}()

// Write appends records in batches of parquetBatchSize rows.
func (s *ParquetSink) Write(records []model.Record) error {
	rows := make([]parquet.Row, 0, parquetBatchSize)
	for _, rec := range records {
		rows = append(rows, s.row(rec))
		if len(rows) == parquetBatchSize {
			if err := s.flush(rows); err != nil {
				return err
			}
			rows = rows[:0]
		}
	}
	return s.flush(rows)
}

func (s *ParquetSink) row(rec model.Record) parquet.Row {
	row := make(parquet.Row, len(s.leaf))
	for col, idx := range s.leaf {
		var v *string
		if idx < len(rec) {
			v = rec[idx]
		}
		if v == nil {
			row[col] = parquet.NullValue().Level(0, 0, col)
		} else {
			row[col] = parquet.ByteArrayValue([]byte(*v)).Level(0, 1, col)
		}
	}
	return row
}

func (s *ParquetSink) flush(rows []parquet.Row) error {
	if len(rows) == 0 {
		return nil
	}
	n, err := s.writer.WriteRows(rows)
	s.count += int64(n)
	if err != nil {
		return fmt.Errorf("write parquet rows: %w", err)
	}
	return nil
}

// Count returns the number of records written.
func (s *ParquetSink) Count() int64 {
	return s.count
}

// Close flushes the final row group and closes the file.
func (s *ParquetSink) Close() error {
	if err := s.writer.Close(); err != nil {
		s.file.Close()
		return fmt.Errorf("close parquet writer: %w", err)
	}
	return s.file.Close()
}
