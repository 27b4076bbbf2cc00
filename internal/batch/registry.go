package batch

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Provenance describes the release a batch directory came from. Every record
// extracted from the batch carries these four values verbatim.
type Provenance struct {
	Year         string `yaml:"year"`
	Source       string `yaml:"source"`
	DownloadDate string `yaml:"download"`
	ArchiveName  string `yaml:"archive"`
}

// IsZero reports whether p is the unknown-batch default.
func (p Provenance) IsZero() bool {
	return p == Provenance{}
}

// Registry holds batch entries layered over the built-in release table.
// Entries in r shadow built-in entries of the same name.
type Registry map[string]Provenance

// Resolve looks up name in the built-in release table. Unregistered names
// resolve to the zero Provenance.
func Resolve(name string) Provenance {
	return builtin[name]
}

// Resolve looks up name by exact match, first in r and then in the built-in
// table. Unregistered names resolve to the zero Provenance rather than failing.
func (r Registry) Resolve(name string) Provenance {
	if p, ok := r[name]; ok {
		return p
	}
	return builtin[name]
}

// Merge adds or replaces entries from other.
func (r Registry) Merge(other Registry) {
	for k, v := range other {
		r[k] = v
	}
}

// Names returns every batch name r resolves, built-in and added, in sorted
// order.
func (r Registry) Names() []string {
	names := make([]string, 0, len(builtin)+len(r))
	for k := range builtin {
		names = append(names, k)
	}
	for k := range r {
		if _, ok := builtin[k]; !ok {
			names = append(names, k)
		}
	}
	sort.Strings(names)
	return names
}

type registryFile struct {
	Batches Registry `yaml:"batches"`
}

// LoadFile reads additional batch entries from the batches key of a YAML
// file. Other keys are ignored, so the run config can carry them:
//
//	batches:
//	  2026_TEOS_XML_01A:
//	    year: "2026"
//	    source: https://apps.irs.gov/pub/epostcard/990/xml/2026/2026_TEOS_XML_01A.zip
//	    download: "2026-02-01"
//	    archive: 2026_TEOS_XML_01A.zip
func LoadFile(path string) (Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read batch registry: %w", err)
	}
	var rf registryFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parse batch registry: %w", err)
	}
	for name, p := range rf.Batches {
		if p.Year == "" {
			return nil, fmt.Errorf("batch %q: year is required", name)
		}
	}
	if rf.Batches == nil {
		return Registry{}, nil
	}
	return rf.Batches, nil
}
