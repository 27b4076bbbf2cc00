package parquetread

import (
	"fmt"
	"io"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/gyeh/schedh/internal/model"
)

// Reader streams wide-table records out of a Parquet file written by the
// parquet sink, or any file whose columns are catalog abbreviations.
type Reader struct {
	file   *os.File
	pf     *parquet.File
	reader *parquet.Reader
	// catalog[i] is the catalog position of physical column i, or -1 for
	// columns the catalog does not know.
	catalog []int
	buf     []parquet.Row
}

// Open opens a Parquet file and returns a streaming Reader. The schema is
// checked with ValidateSchema before any rows are read.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open parquet file: %w", err)
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat parquet file: %w", err)
	}

	pf, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("open parquet: %w", err)
	}
	if err := ValidateSchema(pf.Schema()); err != nil {
		f.Close()
		return nil, err
	}

	r := parquet.NewReader(pf)
	return &Reader{
		file:    f,
		pf:      pf,
		reader:  r,
		catalog: catalogPositions(r.Schema()),
	}, nil
}

func catalogPositions(schema *parquet.Schema) []int {
	cols := schema.Columns()
	pos := make([]int, len(cols))
	for i, path := range cols {
		pos[i] = -1
		if f, ok := model.FieldByColumn(path[len(path)-1]); ok {
			pos[i], _ = model.FieldIndex(f.Name)
		}
	}
	return pos
}

// NumRows returns the total number of rows in the Parquet file.
func (r *Reader) NumRows() int64 {
	return r.reader.NumRows()
}

// RunID returns the run id stored in the file metadata, if any.
func (r *Reader) RunID() string {
	v, _ := r.pf.Lookup(model.RunIDKey)
	return v
}

// Read reads up to len(records) records into the provided slice.
// Returns the number of records read and io.EOF when done.
func (r *Reader) Read(records []model.Record) (int, error) {
	if cap(r.buf) < len(records) {
		r.buf = make([]parquet.Row, len(records))
	}
	rows := r.buf[:len(records)]
	n, err := r.reader.ReadRows(rows)
	for i := 0; i < n; i++ {
		records[i] = r.record(rows[i])
	}
	if err != nil && err != io.EOF {
		return n, fmt.Errorf("read parquet rows: %w", err)
	}
	return n, err
}

func (r *Reader) record(row parquet.Row) model.Record {
	rec := make(model.Record, len(model.Catalog))
	for _, v := range row {
		col := v.Column()
		if col < 0 || col >= len(r.catalog) || r.catalog[col] < 0 || v.IsNull() {
			continue
		}
		s := string(v.ByteArray())
		rec[r.catalog[col]] = &s
	}
	return rec
}

// ReadAll reads every remaining record.
func (r *Reader) ReadAll() ([]model.Record, error) {
	out := make([]model.Record, 0, r.NumRows())
	buf := make([]model.Record, 1024)
	for {
		n, err := r.Read(buf)
		out = append(out, buf[:n]...)
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
	}
}

// Schema returns the Parquet schema.
func (r *Reader) Schema() *parquet.Schema {
	return r.reader.Schema()
}

// Close releases all resources.
func (r *Reader) Close() error {
	if err := r.reader.Close(); err != nil {
		r.file.Close()
		return err
	}
	return r.file.Close()
}
