package output

import (
	"bytes"
	"database/sql"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gyeh/schedh/internal/config"
	"github.com/gyeh/schedh/internal/model"
)

func strPtr(s string) *string { return &s }

func sampleRecords() []model.Record {
	a := model.Project(map[string]*string{
		"FileName":           strPtr("a.xml"),
		"Filer_EIN":          strPtr("123456789"),
		"Filer_BusinessName": strPtr("Hôpital Général"),
		"ReleaseYear":        strPtr("2023"),
	})
	b := model.Project(map[string]*string{
		"FileName":  strPtr("b.xml"),
		"Filer_EIN": strPtr(""),
	})
	return []model.Record{a, b}
}

func column(t *testing.T, name string) int {
	t.Helper()
	i, ok := model.FieldIndex(name)
	if !ok {
		t.Fatalf("field %s not in catalog", name)
	}
	return i
}

func TestNew_UnknownFormat(t *testing.T) {
	if _, err := New("xlsx", filepath.Join(t.TempDir(), "x"), Options{}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestSink_CountAcrossWrites(t *testing.T) {
	dir := t.TempDir()
	for _, format := range []string{config.FormatCSV, config.FormatParquet, config.FormatSQLite} {
		t.Run(format, func(t *testing.T) {
			sink, err := New(format, filepath.Join(dir, "out."+format), Options{RunID: "r"})
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			defer sink.Close()
			if sink.Count() != 0 {
				t.Errorf("fresh sink count: got %d", sink.Count())
			}
			for i := 0; i < 2; i++ {
				if err := sink.Write(sampleRecords()); err != nil {
					t.Fatalf("Write: %v", err)
				}
			}
			if sink.Count() != 4 {
				t.Errorf("count after two writes: got %d, want 4", sink.Count())
			}
		})
	}
}

func TestCSV_HeaderAndNulls(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	sink, err := New(config.FormatCSV, path, Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := sink.Write(sampleRecords()); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := sink.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}

	header := rows[0]
	if len(header) != len(model.Catalog) {
		t.Fatalf("header width: got %d, want %d", len(header), len(model.Catalog))
	}
	if header[0] != "IRS_RELEASEYEAR" || header[len(header)-1] != "IRS_OHFZIPCODE" {
		t.Errorf("unexpected header bounds: %s .. %s", header[0], header[len(header)-1])
	}

	if got := rows[1][column(t, "Filer_BusinessName")]; got != "Hôpital Général" {
		t.Errorf("business name: got %q", got)
	}
	if got := rows[2][column(t, "ReleaseYear")]; got != "" {
		t.Errorf("null should render empty, got %q", got)
	}
}

func TestCSV_Windows1252(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	sink, err := NewCSV(path, config.EncodingWindows1252)
	if err != nil {
		t.Fatalf("NewCSV: %v", err)
	}
	rec := model.Project(map[string]*string{
		"Filer_BusinessName": strPtr("Café ☃"),
	})
	if err := sink.Write([]model.Record{rec}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := sink.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	// é is 0xE9 in windows-1252; the snowman has no mapping and is replaced.
	if !bytes.Contains(data, []byte("Caf\xe9 ")) {
		t.Errorf("expected windows-1252 encoded name in %q", data)
	}
	if bytes.Contains(data, []byte("☃")) {
		t.Error("unsupported rune should have been replaced")
	}
}

func TestCSV_UnknownEncoding(t *testing.T) {
	if _, err := NewCSV(filepath.Join(t.TempDir(), "out.csv"), "ebcdic"); err == nil {
		t.Fatal("expected error for unknown encoding")
	}
}

func TestSchema_CoversCatalog(t *testing.T) {
	cols := Schema().Columns()
	if len(cols) != len(model.Catalog) {
		t.Fatalf("schema columns: got %d, want %d", len(cols), len(model.Catalog))
	}
	leaf, err := leafOrder(Schema())
	if err != nil {
		t.Fatalf("leafOrder: %v", err)
	}
	seen := make(map[int]bool)
	for _, idx := range leaf {
		seen[idx] = true
	}
	if len(seen) != len(model.Catalog) {
		t.Errorf("leaf mapping is not a permutation: %d distinct of %d", len(seen), len(model.Catalog))
	}
}

func TestSQLite_WritesRowsAndNulls(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.db")
	sink, err := New(config.FormatSQLite, path, Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := sink.Write(sampleRecords()); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := sink.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	var n int
	if err := db.QueryRow("SELECT count(*) FROM filings").Scan(&n); err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 rows, got %d", n)
	}

	var year sql.NullString
	var ein sql.NullString
	err = db.QueryRow(`SELECT "IRS_RELEASEYEAR", "IRS_FILER_EIN" FROM filings WHERE "IRS_RELEASEXML" = 'b.xml'`).Scan(&year, &ein)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if year.Valid {
		t.Errorf("expected NULL release year, got %q", year.String)
	}
	if !ein.Valid || ein.String != "" {
		t.Errorf("expected empty-string EIN, got %+v", ein)
	}
}

func TestSQLite_ReplacesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.db")
	for i := 0; i < 2; i++ {
		sink, err := NewSQLite(path)
		if err != nil {
			t.Fatalf("NewSQLite run %d: %v", i, err)
		}
		if err := sink.Write(sampleRecords()[:1]); err != nil {
			t.Fatal(err)
		}
		if err := sink.Close(); err != nil {
			t.Fatal(err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	var n int
	if err := db.QueryRow("SELECT count(*) FROM filings").Scan(&n); err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("expected 1 row after rewrite, got %d", n)
	}
}

func TestInsertSQL_Placeholders(t *testing.T) {
	q := insertSQL()
	if got := strings.Count(q, "?"); got != len(model.Catalog) {
		t.Errorf("placeholders: got %d, want %d", got, len(model.Catalog))
	}
}
