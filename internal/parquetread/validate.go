package parquetread

import (
	"fmt"
	"strings"

	"github.com/parquet-go/parquet-go"

	"github.com/gyeh/schedh/internal/model"
)

// requiredColumns identify a row when loading: without them a table cannot
// be traced back to its source filing.
var requiredColumns = []string{"IRS_RELEASEXML", "IRS_FILER_EIN"}

// ValidateSchema checks that the Parquet schema carries the identifying
// columns and that every column it does carry is a string.
func ValidateSchema(schema *parquet.Schema) error {
	columns := make(map[string]parquet.Field)
	for _, field := range schema.Fields() {
		columns[field.Name()] = field
	}

	for _, col := range requiredColumns {
		if _, ok := columns[col]; !ok {
			return fmt.Errorf("missing required column: %s", col)
		}
	}

	var bad []string
	for name, field := range columns {
		if _, ok := model.FieldByColumn(name); !ok {
			continue
		}
		if !field.Leaf() || field.Type().Kind() != parquet.ByteArray {
			bad = append(bad, name)
		}
	}
	if len(bad) > 0 {
		return fmt.Errorf("columns must be strings: %s", strings.Join(bad, ", "))
	}
	return nil
}

// MissingColumns returns the catalog columns absent from schema, in catalog
// order. Missing columns read back as null.
func MissingColumns(schema *parquet.Schema) []string {
	present := make(map[string]bool)
	for _, field := range schema.Fields() {
		present[field.Name()] = true
	}
	var missing []string
	for _, col := range model.Columns() {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	return missing
}
