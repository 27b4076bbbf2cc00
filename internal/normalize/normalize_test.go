package normalize

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gyeh/schedh/internal/xmldoc"
)

func strPtr(s string) *string { return &s }

func TestBool(t *testing.T) {
	for _, in := range []string{"x", "X", "1", "TRUE", "true", " X "} {
		if got := Bool(strPtr(in)); got != Yes {
			t.Errorf("Bool(%q): got %q, want Yes", in, got)
		}
	}
	if got := Bool(nil); got != No {
		t.Errorf("Bool(nil): got %q, want No", got)
	}
	for _, in := range []string{"", "N", "0", "false", "Y"} {
		if got := Bool(strPtr(in)); got != No {
			t.Errorf("Bool(%q): got %q, want No", in, got)
		}
	}
}

func TestPct(t *testing.T) {
	if got := Pct(nil); got != NotProvided {
		t.Errorf("Pct(nil): got %q", got)
	}
	if got := Pct(strPtr("")); got != NotProvided {
		t.Errorf("Pct(\"\"): got %q", got)
	}
	if got := Pct(strPtr("   ")); got != NotProvided {
		t.Errorf("Pct(blank): got %q", got)
	}
	if got := Pct(strPtr("150")); got != "150" {
		t.Errorf("Pct(150): got %q", got)
	}
	if got := Pct(strPtr("0.5")); got != "0.5" {
		t.Errorf("Pct(0.5): got %q", got)
	}
	for _, in := range []string{"true", "TRUE", "1", "x", "X"} {
		if got := Pct(strPtr(in)); got != "TRUE" {
			t.Errorf("Pct(%q): got %q, want TRUE", in, got)
		}
	}
	for _, in := range []string{"false", "0"} {
		if got := Pct(strPtr(in)); got != "FALSE" {
			t.Errorf("Pct(%q): got %q, want FALSE", in, got)
		}
	}
}

func TestSentinel(t *testing.T) {
	if got := Sentinel(nil); got != NotProvided {
		t.Errorf("Sentinel(nil): got %q", got)
	}
	if got := Sentinel(strPtr("  ")); got != NotProvided {
		t.Errorf("Sentinel(blank): got %q", got)
	}
	for _, in := range []string{"0", "1", "350", "true"} {
		if got := Sentinel(strPtr(in)); got != in {
			t.Errorf("Sentinel(%q): got %q, want verbatim", in, got)
		}
	}
}

func TestText(t *testing.T) {
	doc, err := xmldoc.Parse(strings.NewReader("<R><A>  42 </A><B>   </B><C/></R>"))
	if err != nil {
		t.Fatal(err)
	}
	if got := Text(doc.Find("A")); got == nil || *got != "42" {
		t.Errorf("Text(A): got %v", got)
	}
	if got := Text(doc.Find("B")); got != nil {
		t.Errorf("Text(B) whitespace-only: got %q, want nil", *got)
	}
	if got := Text(doc.Find("C")); got != nil {
		t.Errorf("Text(C) empty: got %q, want nil", *got)
	}
	if got := Text(doc.Find("Missing")); got != nil {
		t.Errorf("Text(missing): got %q, want nil", *got)
	}
}

func TestContentHash_MatchesFileHash(t *testing.T) {
	data := []byte("<Return/>")
	path := filepath.Join(t.TempDir(), "a.xml")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	fh, err := FileHash(path)
	if err != nil {
		t.Fatalf("FileHash: %v", err)
	}
	if ch := ContentHash(data); ch != fh {
		t.Errorf("ContentHash %s != FileHash %s", ch, fh)
	}
	if len(fh) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(fh))
	}
}
