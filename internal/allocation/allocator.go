package allocation

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"facalloc/domain/core"
	"facalloc/domain/roster"
	"facalloc/internal/errors"
)

// ColumnRoll and friends are the identity columns every roster is expected
// to carry. Missing identity cells become empty strings, never errors.
const (
	ColumnRoll  = "Roll"
	ColumnName  = "Name"
	ColumnEmail = "Email"
)

// sortableRow pairs a raw row with its parsed sort key and original position
type sortableRow struct {
	row      roster.Row
	cgpa     float64
	inputIdx int
}

// Distribute assigns every student to a faculty by descending refCol order:
// the row at sorted position i goes to faculty i mod F. Preferences are not
// consulted; the rotation alone balances the partition, so each faculty
// receives floor(N/F) or ceil(N/F) students.
//
// Ties on the sort key keep their input order, which makes the output a pure
// function of the uploaded table. A refCol cell that does not parse as a
// number sorts below every numeric value and produces a diagnostic.
func Distribute(t *roster.Table, refCol string, diags *roster.Diagnostics) ([]roster.AllocationRecord, error) {
	faculties, err := FacultyColumns(t, refCol, diags)
	if err != nil {
		return nil, err
	}
	// Checked before any modulo arithmetic can happen.
	if len(faculties) == 0 {
		return nil, errors.SchemaError(
			"no faculty columns found after \""+refCol+"\"; nothing to allocate to",
			core.NewNoFacultyColumnsError(refCol),
		)
	}

	sorted := make([]sortableRow, len(t.Rows))
	for i, row := range t.Rows {
		cgpa, ok := parseCGPA(row[refCol])
		if !ok {
			if diags != nil {
				diags.Warnf(refCol, i, "value %q is not numeric, sorting last", row[refCol])
			}
			cgpa = math.Inf(-1)
		}
		sorted[i] = sortableRow{row: row, cgpa: cgpa, inputIdx: i}
	}

	// Stable: equal CGPA values keep their original row order.
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].cgpa > sorted[j].cgpa
	})

	records := make([]roster.AllocationRecord, len(sorted))
	for i, sr := range sorted {
		cgpa := sr.cgpa
		if math.IsInf(cgpa, -1) {
			cgpa = 0
		}
		records[i] = roster.AllocationRecord{
			StudentRecord: roster.StudentRecord{
				Roll:  sr.row[ColumnRoll],
				Name:  sr.row[ColumnName],
				Email: sr.row[ColumnEmail],
				CGPA:  cgpa,
			},
			AssignedFaculty: faculties[i%len(faculties)],
		}
	}
	return records, nil
}

// parseCGPA parses a roster cell as a float, tolerating surrounding spaces.
func parseCGPA(cell string) (float64, bool) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}
