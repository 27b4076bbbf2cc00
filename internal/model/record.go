package model

// Record is one flattened filing. Values are positionally aligned to Catalog;
// a nil entry is a null cell.
type Record []*string

// Project lays a name-keyed field map out in catalog order. Names missing from
// the map become nil; names not in the catalog are ignored.
func Project(fields map[string]*string) Record {
	rec := make(Record, len(Catalog))
	for i, f := range Catalog {
		rec[i] = fields[f.Name]
	}
	return rec
}

// Get returns the value of the named field, or nil when the field is null or
// not in the catalog.
func (r Record) Get(name string) *string {
	i, ok := FieldIndex(name)
	if !ok || i >= len(r) {
		return nil
	}
	return r[i]
}

// Strings renders the record with nulls as empty strings.
func (r Record) Strings() []string {
	out := make([]string, len(r))
	for i, v := range r {
		if v != nil {
			out[i] = *v
		}
	}
	return out
}

// Values returns the record as driver values for COPY or INSERT, nil for nulls.
func (r Record) Values() []any {
	out := make([]any, len(r))
	for i, v := range r {
		if v != nil {
			out[i] = *v
		}
	}
	return out
}
