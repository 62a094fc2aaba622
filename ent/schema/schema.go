// Package schema describes the stored attendance tables.
package schema

import (
	"regexp"

	"entgo.io/ent"
)

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Columns returns the column names of fields in declaration order.
func Columns(fields []ent.Field) []string {
	cols := make([]string, 0, len(fields))
	for _, f := range fields {
		cols = append(cols, f.Descriptor().Name)
	}
	return cols
}
