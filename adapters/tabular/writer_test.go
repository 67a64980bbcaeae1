package tabular

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"facalloc/domain/roster"
)

func TestWriteAllocationCSV_ExactHeaders(t *testing.T) {
	var buf bytes.Buffer
	records := []roster.AllocationRecord{
		{
			StudentRecord:   roster.StudentRecord{Roll: "101", Name: "Asha", Email: "asha@example.edu", CGPA: 9.1},
			AssignedFaculty: "Dr. Rao",
		},
	}

	require.NoError(t, WriteAllocationCSV(&buf, records))

	out := buf.String()
	assert.Equal(t,
		"Roll Number,Full Name,Email,CGPA,Assigned Faculty\n101,Asha,asha@example.edu,9.1,Dr. Rao\n",
		out)
}

func TestWriteSummaryCSV_PrefColumnsMatchFacultyCount(t *testing.T) {
	var buf bytes.Buffer
	summary := &roster.PreferenceSummary{
		Faculties: []string{"Dr. Rao", "Dr. Iyer"},
		Counts:    [][]int{{2, 1}, {1, 2}},
	}

	require.NoError(t, WriteSummaryCSV(&buf, summary))

	assert.Equal(t,
		"Faculty,Pref 1,Pref 2\nDr. Rao,2,1\nDr. Iyer,1,2\n",
		buf.String())
}

func TestValidateUpload(t *testing.T) {
	cfg := DefaultUploadConfig()

	assert.NoError(t, ValidateUpload("roster.csv", "text/csv", 100, cfg))
	assert.NoError(t, ValidateUpload("roster.xlsx",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", 100, cfg))
	// Browsers often send application/octet-stream for CSV
	assert.NoError(t, ValidateUpload("roster.csv", "application/octet-stream", 100, cfg))

	assert.Error(t, ValidateUpload("", "text/csv", 100, cfg))
	assert.Error(t, ValidateUpload("roster.pdf", "application/pdf", 100, cfg))
	assert.Error(t, ValidateUpload("roster.csv", "text/csv", cfg.MaxFileSize+1, cfg))
	assert.Error(t, ValidateUpload("roster.csv", "application/vnd.ms-excel", 100, cfg))
}
