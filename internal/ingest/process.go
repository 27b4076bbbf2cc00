package ingest

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gyeh/schedh/internal/batch"
	"github.com/gyeh/schedh/internal/extract"
	"github.com/gyeh/schedh/internal/model"
	"github.com/gyeh/schedh/internal/normalize"
	"github.com/gyeh/schedh/internal/xmldoc"
)

// Status is the outcome of processing one document.
type Status int

const (
	Extracted Status = iota
	Skipped          // no Schedule H
	Failed           // unreadable or malformed
)

func (s Status) String() string {
	switch s {
	case Extracted:
		return "extracted"
	case Skipped:
		return "skipped"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Result is the outcome of ProcessFile. Record is set only when Status is
// Extracted; Err is set only when Status is Failed.
type Result struct {
	Path   string
	SHA256 string
	Status Status
	Record model.Record
	Err    error
}

// ProcessFile reads, parses and extracts one filing. It never panics: any
// failure in reading, parsing or extraction is reported as a Failed result.
func ProcessFile(x *extract.Extractor, path string, prov batch.Provenance) (res Result) {
	res.Path = path
	defer func() {
		if r := recover(); r != nil {
			res.Status = Failed
			res.Record = nil
			res.Err = fmt.Errorf("extract panic: %v", r)
		}
	}()

	data, err := os.ReadFile(path)
	if err != nil {
		res.Status = Failed
		res.Err = fmt.Errorf("read: %w", err)
		return res
	}
	res.SHA256 = normalize.ContentHash(data)

	doc, err := xmldoc.Parse(bytes.NewReader(data))
	if err != nil {
		res.Status = Failed
		res.Err = fmt.Errorf("parse: %w", err)
		return res
	}

	rec, err := x.Extract(doc, extract.Source{
		FileName:   filepath.Base(path),
		Provenance: prov,
	})
	switch {
	case errors.Is(err, extract.ErrNoScheduleH):
		res.Status = Skipped
	case err != nil:
		res.Status = Failed
		res.Err = fmt.Errorf("extract: %w", err)
	default:
		res.Status = Extracted
		res.Record = rec
	}
	return res
}
