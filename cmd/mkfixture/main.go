// mkfixture creates a small representative wide-table fixture from a larger
// Parquet output of `schedh extract`.
// Two-pass: first scans all rows to find diverse candidates, then selects the best N.
// Usage: go run ./cmd/mkfixture --in testdata/filings.parquet --out testdata/filings-small.parquet --rows 200
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gyeh/schedh/internal/model"
	"github.com/gyeh/schedh/internal/output"
	"github.com/gyeh/schedh/internal/parquetread"
)

// trait reports whether a record belongs in a bucket.
type trait func(model.Record) bool

func has(name string) trait {
	return func(r model.Record) bool {
		v := r.Get(name)
		return v != nil && *v != ""
	}
}

var (
	multiFacility = func(r model.Record) bool {
		v := r.Get("HospitalFacilitiesGrp")
		return v != nil && strings.Contains(*v, ";")
	}
	foreignFiler = func(r model.Record) bool {
		v := r.Get("Filer_Country")
		return v != nil && *v != "USA"
	}
	unregistered = func(r model.Record) bool {
		v := r.Get("ReleaseYear")
		return v == nil || *v == ""
	}
)

type bucket struct {
	name  string
	match trait
	rows  []model.Record
	want  int
}

// selector places each row in at most one bucket, the first in priority
// order that matches and has room. Rows no bucket takes go to general.
type selector struct {
	buckets []*bucket
	general []model.Record
	counts  map[string]int
	maxRows int
}

func newSelector(maxRows int) *selector {
	return &selector{
		buckets: []*bucket{
			{name: "multi_facility", match: multiFacility, want: 40},
			{name: "foreign_filer", match: foreignFiler, want: 10},
			{name: "chna_policies", match: has("CHNAConductedInd"), want: 40},
			{name: "management_co", match: has("ManagementCompany_BusinessNameLine1Txt"), want: 20},
			{name: "other_facility", match: has("OthHlthCareFcltsGrp_BusinessName"), want: 20},
			{name: "unregistered", match: unregistered, want: 10},
		},
		counts:  make(map[string]int),
		maxRows: maxRows,
	}
}

func (s *selector) add(row model.Record) {
	placed := false
	for _, b := range s.buckets {
		if !b.match(row) {
			continue
		}
		s.counts[b.name]++
		if !placed && len(b.rows) < b.want {
			b.rows = append(b.rows, row)
			placed = true
		}
	}
	if !placed && len(s.general) < s.maxRows {
		s.general = append(s.general, row)
	}
}

// selected merges buckets in priority order, then general rows, up to maxRows.
func (s *selector) selected() []model.Record {
	var out []model.Record
	for _, b := range s.buckets {
		out = append(out, b.rows...)
	}
	out = append(out, s.general...)
	if len(out) > s.maxRows {
		out = out[:s.maxRows]
	}
	return out
}

func main() {
	in := flag.String("in", "testdata/filings.parquet", "input parquet")
	out := flag.String("out", "testdata/filings-small.parquet", "output parquet")
	maxRows := flag.Int("rows", 200, "max rows to output")
	checkOnly := flag.Bool("check", false, "only print stats, don't write")
	flag.Parse()

	reader, err := parquetread.Open(*in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open input: %v\n", err)
		os.Exit(1)
	}
	defer reader.Close()

	// Pass 1: read ALL rows, bucket by interesting traits.
	sel := newSelector(*maxRows)

	buf := make([]model.Record, 1024)
	var totalRead int
	for {
		n, readErr := reader.Read(buf)
		for i := 0; i < n; i++ {
			totalRead++
			sel.add(buf[i])
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			fmt.Fprintf(os.Stderr, "read: %v\n", readErr)
			os.Exit(1)
		}
	}
	fmt.Printf("Scanned %d rows\n", totalRead)

	if *checkOnly {
		for _, b := range sel.buckets {
			fmt.Printf("  %-16s %d\n", b.name, sel.counts[b.name])
		}
		return
	}

	selected := sel.selected()

	// Write output
	sink, err := output.NewParquet(*out, reader.RunID())
	if err != nil {
		fmt.Fprintf(os.Stderr, "create output: %v\n", err)
		os.Exit(1)
	}
	if err := sink.Write(selected); err != nil {
		fmt.Fprintf(os.Stderr, "write: %v\n", err)
		os.Exit(1)
	}
	if err := sink.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "close writer: %v\n", err)
		os.Exit(1)
	}

	// Print summary
	fmt.Printf("Wrote %d rows to %s\n", len(selected), *out)
	fmt.Println("Trait distribution:")
	for _, b := range sel.buckets {
		var c int
		for _, row := range selected {
			if b.match(row) {
				c++
			}
		}
		fmt.Printf("  %-16s %d\n", b.name, c)
	}
}
