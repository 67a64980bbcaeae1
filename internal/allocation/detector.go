// Package allocation implements the two roster transforms: round-robin
// distribution of students to faculties by descending CGPA, and the
// per-faculty preference tally. Both share the faculty column detector.
//
// Schema problems (missing reference column, zero faculty columns) abort a
// transform with a coded error; per-cell parse problems never do - they are
// recorded on the caller-supplied roster.Diagnostics sink and skipped.
package allocation

import (
	"facalloc/domain/core"
	"facalloc/domain/roster"
	"facalloc/internal/errors"
)

// DefaultReferenceColumn is the boundary column when none is configured.
const DefaultReferenceColumn = "CGPA"

// FacultyColumns returns the ordered column names that appear strictly after
// refCol in the table schema. The order defines the faculty index used by the
// round-robin assignment.
//
// Returns a SCHEMA_ERROR when refCol is absent. When refCol is the last
// column the result is an empty slice; callers that cannot work with zero
// faculties must check for that themselves.
func FacultyColumns(t *roster.Table, refCol string, diags *roster.Diagnostics) ([]string, error) {
	idx := t.ColumnIndex(refCol)
	if idx < 0 {
		return nil, errors.SchemaError(
			"reference column \""+refCol+"\" is not present in the uploaded table",
			core.NewReferenceColumnError(refCol),
		)
	}

	faculties := make([]string, len(t.Headers)-idx-1)
	copy(faculties, t.Headers[idx+1:])

	if diags != nil {
		diags.Infof(refCol, "detected %d faculty columns: %v", len(faculties), faculties)
	}
	return faculties, nil
}
