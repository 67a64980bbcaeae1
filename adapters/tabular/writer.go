package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"facalloc/domain/roster"
)

// Output headers for the two downloadable artifacts.
var allocationHeaders = []string{"Roll Number", "Full Name", "Email", "CGPA", "Assigned Faculty"}

// WriteAllocationCSV writes the allocation table with one row per record.
func WriteAllocationCSV(w io.Writer, records []roster.AllocationRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(allocationHeaders); err != nil {
		return fmt.Errorf("failed to write allocation header: %w", err)
	}
	for _, rec := range records {
		row := []string{
			rec.Roll,
			rec.Name,
			rec.Email,
			strconv.FormatFloat(rec.CGPA, 'f', -1, 64),
			rec.AssignedFaculty,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write allocation row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteSummaryCSV writes the preference summary: one row per faculty,
// columns Faculty, Pref 1 .. Pref F.
func WriteSummaryCSV(w io.Writer, summary *roster.PreferenceSummary) error {
	cw := csv.NewWriter(w)

	f := len(summary.Faculties)
	header := make([]string, 0, f+1)
	header = append(header, "Faculty")
	for i := 1; i <= f; i++ {
		header = append(header, fmt.Sprintf("Pref %d", i))
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write summary header: %w", err)
	}

	for i, faculty := range summary.Faculties {
		row := make([]string, 0, f+1)
		row = append(row, faculty)
		for rank := 1; rank <= f; rank++ {
			row = append(row, strconv.Itoa(summary.RankCount(i, rank)))
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write summary row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
