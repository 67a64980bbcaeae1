// Package roster holds the tabular data model for student preference rosters:
// the raw uploaded table, the typed student identity fields, and the two
// output artifacts (allocation records and the preference summary).
package roster

import (
	"facalloc/domain/core"
)

// Row represents one raw data row as header -> cell string pairs
type Row map[string]string

// Table represents an uploaded roster: a header row plus raw data rows.
// Cell values stay strings until a transform parses them.
type Table struct {
	Headers []string
	Rows    []Row
}

// ColumnIndex returns the position of the named column, or -1 if absent.
func (t *Table) ColumnIndex(name string) int {
	for i, h := range t.Headers {
		if h == name {
			return i
		}
	}
	return -1
}

// RowCount returns the number of data rows
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// StudentRecord holds the fixed identity fields of one student row
type StudentRecord struct {
	Roll  string  `json:"roll"`
	Name  string  `json:"name"`
	Email string  `json:"email"`
	CGPA  float64 `json:"cgpa"`
}

// AllocationRecord is one row of the allocation output. Created once by the
// allocator and never mutated afterwards.
type AllocationRecord struct {
	StudentRecord
	AssignedFaculty string `json:"assigned_faculty"`
}

// AllocationResult bundles the allocation table with the diagnostics the
// allocator collected while parsing CGPA cells.
type AllocationResult struct {
	RunID       core.RunID         `json:"run_id"`
	Records     []AllocationRecord `json:"records"`
	Diagnostics []Diagnostic       `json:"diagnostics,omitempty"`
	CreatedAt   core.Timestamp     `json:"created_at"`
}

// PreferenceSummary counts, per faculty, how many students gave it each rank.
// Counts[i][r-1] is the number of students that ranked Faculties[i] at r,
// for r in 1..len(Faculties).
type PreferenceSummary struct {
	Faculties []string `json:"faculties"`
	Counts    [][]int  `json:"counts"`
}

// RankCount returns the count for a faculty index and 1-based rank.
func (s *PreferenceSummary) RankCount(facultyIdx, rank int) int {
	if facultyIdx < 0 || facultyIdx >= len(s.Counts) {
		return 0
	}
	if rank < 1 || rank > len(s.Counts[facultyIdx]) {
		return 0
	}
	return s.Counts[facultyIdx][rank-1]
}

// Total returns the sum of all rank counts for a faculty index.
func (s *PreferenceSummary) Total(facultyIdx int) int {
	if facultyIdx < 0 || facultyIdx >= len(s.Counts) {
		return 0
	}
	total := 0
	for _, c := range s.Counts[facultyIdx] {
		total += c
	}
	return total
}
