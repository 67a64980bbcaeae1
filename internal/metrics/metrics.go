// Package metrics computes the dashboard summary figures for a completed
// allocation run.
package metrics

import (
	"github.com/montanaflynn/stats"

	"facalloc/domain/roster"
)

// FacultyCount is one bar of the assignment-count chart
type FacultyCount struct {
	Faculty string `json:"faculty"`
	Count   int    `json:"count"`
}

// RunMetrics summarizes a completed allocation run
type RunMetrics struct {
	TotalStudents  int            `json:"total_students"`
	TotalFaculties int            `json:"total_faculties"`
	AverageCGPA    float64        `json:"average_cgpa"`
	FacultyCounts  []FacultyCount `json:"faculty_counts"`
}

// Compute derives run metrics from the allocation output. Faculty counts are
// reported in faculty column order so the chart is stable across runs.
func Compute(records []roster.AllocationRecord, faculties []string) RunMetrics {
	m := RunMetrics{
		TotalStudents:  len(records),
		TotalFaculties: len(faculties),
	}

	if len(records) > 0 {
		cgpas := make([]float64, len(records))
		for i, rec := range records {
			cgpas[i] = rec.CGPA
		}
		if mean, err := stats.Mean(cgpas); err == nil {
			m.AverageCGPA = mean
		}
	}

	byFaculty := make(map[string]int, len(faculties))
	for _, rec := range records {
		byFaculty[rec.AssignedFaculty]++
	}
	for _, f := range faculties {
		m.FacultyCounts = append(m.FacultyCounts, FacultyCount{Faculty: f, Count: byFaculty[f]})
	}

	return m
}
