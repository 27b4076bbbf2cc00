// Package extract flattens one IRS Form 990 filing into a Schedule H record.
//
// Every lookup follows the same rule: when a group element is present its
// children are read, and when it is absent every field it would have supplied
// is null. Nothing in the document's shape is an error; the only non-record
// outcome is ErrNoScheduleH for filings without the schedule attached.
package extract

import (
	"errors"
	"strings"

	"github.com/gyeh/schedh/internal/batch"
	"github.com/gyeh/schedh/internal/model"
	"github.com/gyeh/schedh/internal/normalize"
	"github.com/gyeh/schedh/internal/xmldoc"
)

const scheduleHElement = "IRS990ScheduleH"

// ErrNoScheduleH signals that the filing has no Schedule H and yields no row.
var ErrNoScheduleH = errors.New("filing has no IRS990ScheduleH")

// Options controls optional value normalization.
type Options struct {
	// NormalizeIndicators rewrites Schedule H checkbox fields to "Yes"/"No".
	// Off by default: indicators are emitted as the raw text the filer sent.
	NormalizeIndicators bool
}

// Source identifies the document being extracted.
type Source struct {
	FileName   string // base name of the XML file
	Provenance batch.Provenance
}

// Extractor turns parsed filings into catalog-ordered records.
type Extractor struct {
	opts Options
}

// New returns an Extractor with the given options.
func New(opts Options) *Extractor {
	return &Extractor{opts: opts}
}

// Extract builds the record for one parsed document. It returns ErrNoScheduleH
// when the document has no Schedule H section.
func (x *Extractor) Extract(doc *xmldoc.Element, src Source) (model.Record, error) {
	sched := doc.Find(scheduleHElement)
	if sched == nil {
		return nil, ErrNoScheduleH
	}

	f := make(fields, len(model.Catalog))
	f.identity(doc, src.FileName)
	f.partI(sched)
	for _, g := range benefitGroups {
		f.group(sched, g, g, benefitSubfields)
	}
	f.partIII(sched)
	f.group(sched, managementGroup, managementPrefix, managementSubfields)
	f.facilities(sched)
	f.facilityPolicies(sched)
	f.otherFacilities(sched)
	f.outside(doc)
	f.provenance(src.Provenance)

	if x.opts.NormalizeIndicators {
		f.normalizeIndicators()
	}
	return model.Project(f), nil
}

// fields accumulates extracted values keyed by logical field name.
type fields map[string]*string

func (f fields) text(name string, el *xmldoc.Element) {
	f[name] = normalize.Text(el)
}

func (f fields) null(names ...string) {
	for _, n := range names {
		f[n] = nil
	}
}

func (f fields) provenance(p batch.Provenance) {
	f["ReleaseYear"] = normalize.Lit(p.Year)
	f["ReleaseSource"] = normalize.Lit(p.Source)
	f["ReleaseDownload"] = normalize.Lit(p.DownloadDate)
	f["ReleaseFileName"] = normalize.Lit(p.ArchiveName)
}

// group reads subs from the first descendant of scope named groupName into
// fields named prefix_sub. An absent group nulls all of them.
func (f fields) group(scope *xmldoc.Element, groupName, prefix string, subs []string) {
	g := scope.Find(groupName)
	for _, sub := range subs {
		name := prefix + "_" + sub
		if g == nil {
			f[name] = nil
			continue
		}
		f.text(name, g.Find(sub))
	}
}

// outside reads the core Form 990 totals from anywhere in the document.
func (f fields) outside(doc *xmldoc.Element) {
	for _, name := range outsideFields {
		f.text(name, doc.Find(name))
	}
}

func (f fields) normalizeIndicators() {
	for name := range indicatorFields {
		v := normalize.Bool(f[name])
		f[name] = &v
	}
}

var (
	outsideFields = model.SectionFields(model.SectionFinancial)

	indicatorFields = func() map[string]bool {
		set := map[string]bool{"FinancialAssistancePolicy": true}
		for _, s := range []model.Section{
			model.SectionPartI,
			model.SectionPartIII,
			model.SectionFacilities,
			model.SectionFacilityPolicies,
		} {
			for _, name := range model.SectionFields(s) {
				if strings.HasSuffix(name, "Ind") {
					set[name] = true
				}
			}
		}
		return set
	}()
)
