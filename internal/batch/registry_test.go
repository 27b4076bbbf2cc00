package batch

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolve_Registered(t *testing.T) {
	p := Resolve("2025_TEOS_XML_04A")
	if p.Year != "2025" {
		t.Errorf("Year: got %q, want 2025", p.Year)
	}
	if p.Source != "https://apps.irs.gov/pub/epostcard/990/xml/2025/2025_TEOS_XML_04A.zip" {
		t.Errorf("Source: got %q", p.Source)
	}
	if p.DownloadDate != "2025-07-17" {
		t.Errorf("DownloadDate: got %q", p.DownloadDate)
	}
	if p.ArchiveName != "2025_TEOS_XML_04A.zip" {
		t.Errorf("ArchiveName: got %q", p.ArchiveName)
	}
}

func TestResolve_UnknownIsBlank(t *testing.T) {
	p := Resolve("my_local_batch")
	if !p.IsZero() {
		t.Fatalf("expected blank provenance, got %+v", p)
	}
	if p.Year != "" || p.Source != "" || p.DownloadDate != "" || p.ArchiveName != "" {
		t.Errorf("expected four empty strings, got %+v", p)
	}
}

func TestResolve_ExactMatchOnly(t *testing.T) {
	if !Resolve("2025_teos_xml_04a").IsZero() {
		t.Error("lookup should be case-sensitive")
	}
	if !Resolve(" 2025_TEOS_XML_04A").IsZero() {
		t.Error("lookup should not trim")
	}
}

func TestRegistry_OverrideShadowsBuiltin(t *testing.T) {
	r := Registry{"2025_TEOS_XML_04A": {Year: "changed"}}
	if got := r.Resolve("2025_TEOS_XML_04A").Year; got != "changed" {
		t.Errorf("override: got %q", got)
	}
	if Resolve("2025_TEOS_XML_04A").Year != "2025" {
		t.Error("override leaked into the built-in table")
	}
	if r.Resolve("2023_TEOS_XML_01A").IsZero() {
		t.Error("built-in entries should resolve through an override registry")
	}
}

func TestLoadFile_Merge(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "batches.yaml")
	body := "batches:\n" +
		"  2026_TEOS_XML_01A:\n" +
		"    year: \"2026\"\n" +
		"    source: https://example.org/2026_TEOS_XML_01A.zip\n" +
		"    download: \"2026-02-01\"\n" +
		"    archive: 2026_TEOS_XML_01A.zip\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	extra, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	r := Registry{}
	r.Merge(extra)
	if got := len(r.Names()); got != len(builtin)+1 {
		t.Errorf("expected %d names after merge, got %d", len(builtin)+1, got)
	}
	p := r.Resolve("2026_TEOS_XML_01A")
	if p.Year != "2026" || p.DownloadDate != "2026-02-01" || p.ArchiveName != "2026_TEOS_XML_01A.zip" {
		t.Errorf("unexpected merged provenance: %+v", p)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile("/nonexistent/batches.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadFile_YearRequired(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batches.yaml")
	if err := os.WriteFile(path, []byte("batches:\n  X:\n    source: s\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected error for batch without year")
	}
}

func TestLoadFile_IgnoresOtherKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("progress_every: 5\nnormalize_indicators: true\n"), 0644); err != nil {
		t.Fatal(err)
	}
	r, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if r == nil || len(r) != 0 {
		t.Errorf("expected empty registry, got %v", r)
	}
}

func TestNames_Sorted(t *testing.T) {
	r := Registry{
		"local_batch":       {Year: "2026"},
		"2025_TEOS_XML_04A": {Year: "2025"},
	}
	names := r.Names()
	if len(names) != len(builtin)+1 {
		t.Fatalf("got %d names, want %d", len(names), len(builtin)+1)
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("names not sorted at %d: %q > %q", i, names[i-1], names[i])
		}
	}
}
