package model

import "testing"

func TestCatalog_SizeAndUniqueness(t *testing.T) {
	if len(Catalog) != 296 {
		t.Fatalf("catalog size: got %d, want 296", len(Catalog))
	}
	names := make(map[string]bool)
	cols := make(map[string]bool)
	for _, f := range Catalog {
		if names[f.Name] {
			t.Errorf("duplicate field name %s", f.Name)
		}
		if cols[f.Column] {
			t.Errorf("duplicate column %s", f.Column)
		}
		names[f.Name] = true
		cols[f.Column] = true
	}
}

func TestCatalog_SectionSizes(t *testing.T) {
	want := map[Section]int{
		SectionRelease:          4,
		SectionFiler:            14,
		SectionFinancial:        34,
		SectionPartI:            21,
		SectionPartIGroups:      44,
		SectionPartII:           40,
		SectionPartIII:          11,
		SectionPartIV:           5,
		SectionFacilities:       22,
		SectionFacilityPolicies: 95,
		SectionSupplemental:     1,
		SectionOtherFacilities:  5,
	}
	for s, n := range want {
		if got := len(SectionFields(s)); got != n {
			t.Errorf("section %s: got %d fields, want %d", s, got, n)
		}
	}
}

func TestCatalog_Lookups(t *testing.T) {
	i, ok := FieldIndex("ReleaseYear")
	if !ok || i != 0 {
		t.Errorf("FieldIndex(ReleaseYear) = %d, %v", i, ok)
	}
	if _, ok := FieldIndex("NoSuchField"); ok {
		t.Error("unknown field should not resolve")
	}
	f, ok := FieldByColumn("IRS_CHNAVB3J")
	if !ok || f.Name != "CHNAOtherInd" {
		t.Errorf("FieldByColumn(IRS_CHNAVB3J) = %+v, %v", f, ok)
	}
	if len(Columns()) != len(Catalog) {
		t.Error("Columns should have one entry per catalog field")
	}
}

func TestRecord_ProjectAndRender(t *testing.T) {
	v := "x"
	empty := ""
	rec := Project(map[string]*string{"FileName": &v, "TaxYr": &empty, "Unknown": &v})
	if len(rec) != len(Catalog) {
		t.Fatalf("record width: got %d", len(rec))
	}
	if got := rec.Get("FileName"); got == nil || *got != "x" {
		t.Errorf("FileName: got %v", got)
	}
	if rec.Get("Filer_EIN") != nil {
		t.Error("missing key should be null")
	}

	i, _ := FieldIndex("Filer_EIN")
	if rec.Strings()[i] != "" || rec.Values()[i] != nil {
		t.Error("null should render as empty string and nil value")
	}
	j, _ := FieldIndex("TaxYr")
	if rec.Values()[j] != "" {
		t.Error("empty string should stay a non-null value")
	}
}
