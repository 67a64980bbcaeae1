package allocation

import (
	"strconv"
	"strings"

	"facalloc/domain/roster"
)

// SummarizePreferences tallies, for each faculty column, how many students
// gave it each rank in 1..F. Cells that do not parse as an integer, or that
// fall outside [1, F], are excluded from the counts and recorded as
// diagnostics; they never abort the tally. The only fatal failure is the
// detector's SCHEMA_ERROR.
//
// The result always has exactly one row per detected faculty, and the counts
// for any faculty sum to at most the number of input rows.
func SummarizePreferences(t *roster.Table, refCol string, diags *roster.Diagnostics) (*roster.PreferenceSummary, error) {
	faculties, err := FacultyColumns(t, refCol, diags)
	if err != nil {
		return nil, err
	}

	f := len(faculties)
	counts := make([][]int, f)
	for i := range counts {
		counts[i] = make([]int, f)
	}

	for rowIdx, row := range t.Rows {
		for facIdx, faculty := range faculties {
			rank, ok := parseRank(row[faculty])
			if !ok {
				if diags != nil {
					diags.Warnf(faculty, rowIdx, "invalid rank %q", row[faculty])
				}
				continue
			}
			if rank < 1 || rank > f {
				if diags != nil {
					diags.Warnf(faculty, rowIdx, "rank %d outside 1..%d", rank, f)
				}
				continue
			}
			counts[facIdx][rank-1]++
		}
	}

	return &roster.PreferenceSummary{
		Faculties: faculties,
		Counts:    counts,
	}, nil
}

// parseRank parses a preference cell as an integer rank. Whole-number
// floats ("2.0") are accepted since spreadsheet exports produce them.
func parseRank(cell string) (int, bool) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(cell); err == nil {
		return n, true
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil || v != float64(int(v)) {
		return 0, false
	}
	return int(v), true
}
