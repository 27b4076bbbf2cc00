package ingest

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/gyeh/schedh/internal/batch"
	"github.com/gyeh/schedh/internal/config"
	"github.com/gyeh/schedh/internal/extract"
	"github.com/gyeh/schedh/internal/model"
	"github.com/gyeh/schedh/internal/parquetread"
)

const withScheduleH = `<?xml version="1.0" encoding="utf-8"?>
<Return xmlns="http://www.irs.gov/efile">
  <ReturnHeader><Filer><EIN>%s</EIN></Filer></ReturnHeader>
  <ReturnData><IRS990ScheduleH><HospitalFacilitiesCnt>1</HospitalFacilitiesCnt></IRS990ScheduleH></ReturnData>
</Return>`

const withoutScheduleH = `<Return><ReturnData><IRS990/></ReturnData></Return>`

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
}

func filing(ein string) string {
	return fmt.Sprintf(withScheduleH, ein)
}

// buildInput lays out two batches: one registered, one not.
func buildInput(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "2023_TEOS_XML_01A", "b.xml"), filing("222"))
	writeFile(t, filepath.Join(dir, "2023_TEOS_XML_01A", "a.xml"), filing("111"))
	writeFile(t, filepath.Join(dir, "2023_TEOS_XML_01A", "skip.xml"), withoutScheduleH)
	writeFile(t, filepath.Join(dir, "2023_TEOS_XML_01A", "broken.xml"), "<Return><IRS990ScheduleH>")
	writeFile(t, filepath.Join(dir, "2023_TEOS_XML_01A", "notes.txt"), "ignored")
	writeFile(t, filepath.Join(dir, "2023_TEOS_XML_01A", "UPPER.XML"), filing("999"))
	writeFile(t, filepath.Join(dir, "local_batch", "c.xml"), filing("333"))
	writeFile(t, filepath.Join(dir, "README"), "top-level files are not batches")
	return dir
}

func TestListBatches_SortedDirsOnly(t *testing.T) {
	dir := buildInput(t)
	got, err := ListBatches(dir)
	if err != nil {
		t.Fatalf("ListBatches: %v", err)
	}
	if len(got) != 2 || got[0] != "2023_TEOS_XML_01A" || got[1] != "local_batch" {
		t.Errorf("unexpected batches: %v", got)
	}
}

func TestListFiles_XMLSuffixOnly(t *testing.T) {
	dir := buildInput(t)
	got, err := ListFiles(filepath.Join(dir, "2023_TEOS_XML_01A"))
	if err != nil {
		t.Fatalf("ListFiles: %v", err)
	}
	want := []string{"a.xml", "b.xml", "broken.xml", "skip.xml"}
	if len(got) != len(want) {
		t.Fatalf("files: got %v, want %v", got, want)
	}
	for i, w := range want {
		if filepath.Base(got[i]) != w {
			t.Errorf("file %d: got %s, want %s", i, filepath.Base(got[i]), w)
		}
	}
}

func TestMissingBatches(t *testing.T) {
	registry := batch.Registry{"local_batch": {Year: "2026"}}
	present := []string{"2023_TEOS_XML_01A", "local_batch", "not_registered"}

	missing := MissingBatches(registry, present)
	if len(missing) != len(registry.Names())-2 {
		t.Fatalf("missing: got %d names, want %d", len(missing), len(registry.Names())-2)
	}
	for _, name := range missing {
		if name == "2023_TEOS_XML_01A" || name == "local_batch" || name == "not_registered" {
			t.Errorf("%s is present but reported missing", name)
		}
	}
	if missing[0] > missing[len(missing)-1] {
		t.Error("missing batches should be sorted")
	}
}

func TestProcessFile_Statuses(t *testing.T) {
	dir := buildInput(t)
	x := extract.New(extract.Options{})
	prov := batch.Resolve("2023_TEOS_XML_01A")
	b := filepath.Join(dir, "2023_TEOS_XML_01A")

	tests := []struct {
		file string
		want Status
	}{
		{"a.xml", Extracted},
		{"skip.xml", Skipped},
		{"broken.xml", Failed},
		{"missing.xml", Failed},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			res := ProcessFile(x, filepath.Join(b, tt.file), prov)
			if res.Status != tt.want {
				t.Fatalf("status: got %s, want %s (err %v)", res.Status, tt.want, res.Err)
			}
			if (res.Record != nil) != (tt.want == Extracted) {
				t.Errorf("record presence mismatch for %s", res.Status)
			}
			if (res.Err != nil) != (tt.want == Failed) {
				t.Errorf("error presence mismatch for %s: %v", res.Status, res.Err)
			}
		})
	}
}

func TestRun_CountsAndOrder(t *testing.T) {
	dir := buildInput(t)
	cfg := &config.Config{InputDir: dir, ProgressEvery: 1}

	out, err := Run(context.Background(), zerolog.Nop(), cfg, extract.New(extract.Options{}))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	s := out.Summary
	if s.Batches != 2 || s.BatchesUnknown != 1 {
		t.Errorf("batches: %d total, %d unknown", s.Batches, s.BatchesUnknown)
	}
	if s.FilesSeen != 5 || s.Extracted != 3 || s.Skipped != 1 || s.Failed != 1 {
		t.Errorf("counts: seen=%d extracted=%d skipped=%d failed=%d",
			s.FilesSeen, s.Extracted, s.Skipped, s.Failed)
	}
	if s.Duplicates != 0 {
		t.Errorf("duplicates: got %d, want 0", s.Duplicates)
	}
	if s.RunID == "" {
		t.Error("expected a run id")
	}

	if len(out.Records) != 3 {
		t.Fatalf("records: got %d, want 3", len(out.Records))
	}
	wantFiles := []string{"a.xml", "b.xml", "c.xml"}
	wantYears := []string{"2023", "2023", ""}
	for i, rec := range out.Records {
		if got := rec.Get("FileName"); got == nil || *got != wantFiles[i] {
			t.Errorf("record %d file: got %v, want %s", i, got, wantFiles[i])
		}
		if got := rec.Get("ReleaseYear"); got == nil || *got != wantYears[i] {
			t.Errorf("record %d year: got %v, want %q", i, got, wantYears[i])
		}
	}
}

func TestRun_DuplicateContent(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b1", "a.xml"), filing("1"))
	writeFile(t, filepath.Join(dir, "b2", "a.xml"), filing("1"))

	out, err := Run(context.Background(), zerolog.Nop(), &config.Config{InputDir: dir}, extract.New(extract.Options{}))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out.Summary.Duplicates != 1 || len(out.Records) != 2 {
		t.Errorf("expected both rows kept and 1 duplicate, got %d rows, %d duplicates",
			len(out.Records), out.Summary.Duplicates)
	}
}

func TestRun_MissingInput(t *testing.T) {
	cfg := &config.Config{InputDir: filepath.Join(t.TempDir(), "nope")}
	_, err := Run(context.Background(), zerolog.Nop(), cfg, extract.New(extract.Options{}))

	var pe *PipelineError
	if !errors.As(err, &pe) || pe.Phase != PhaseEnumerate {
		t.Fatalf("expected enumerate PipelineError, got %v", err)
	}
}

func TestRun_Cancelled(t *testing.T) {
	dir := buildInput(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, zerolog.Nop(), &config.Config{InputDir: dir}, extract.New(extract.Options{}))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestWrite_Parquet(t *testing.T) {
	dir := buildInput(t)
	cfg := &config.Config{
		InputDir: dir,
		OutPath:  filepath.Join(t.TempDir(), "out.parquet"),
		Format:   config.FormatParquet,
	}
	out, err := Run(context.Background(), zerolog.Nop(), cfg, extract.New(extract.Options{}))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	res, err := Write(zerolog.Nop(), cfg, out)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if res.RowsWritten != 3 || out.Summary.RowsWritten != 3 {
		t.Errorf("rows written: %d / %d", res.RowsWritten, out.Summary.RowsWritten)
	}

	r, err := parquetread.Open(cfg.OutPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer r.Close()
	if r.NumRows() != 3 {
		t.Errorf("parquet rows: got %d", r.NumRows())
	}
	if r.RunID() != out.Summary.RunID {
		t.Errorf("run id: got %q, want %q", r.RunID(), out.Summary.RunID)
	}
}

func TestWrite_BadDestination(t *testing.T) {
	out := &Output{Summary: &model.RunSummary{}}
	cfg := &config.Config{OutPath: filepath.Join(t.TempDir(), "missing", "out.csv"), Format: config.FormatCSV}
	_, err := Write(zerolog.Nop(), cfg, out)

	var pe *PipelineError
	if !errors.As(err, &pe) || pe.Phase != PhaseWrite {
		t.Fatalf("expected write PipelineError, got %v", err)
	}
}
