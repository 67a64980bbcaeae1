package tabular

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSV_ParsesHeadersAndRows(t *testing.T) {
	src := strings.NewReader(
		"Roll,Name,Email,CGPA,Dr. Rao,Dr. Iyer\n" +
			"101, Asha ,asha@example.edu,9.1,1,2\n" +
			"102,Bilal,bilal@example.edu,8.4,2,1\n")

	table, err := ReadCSV(src)
	require.NoError(t, err)

	assert.Equal(t, []string{"Roll", "Name", "Email", "CGPA", "Dr. Rao", "Dr. Iyer"}, table.Headers)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "Asha", table.Rows[0]["Name"], "cells should be trimmed")
	assert.Equal(t, "9.1", table.Rows[0]["CGPA"])
	assert.Equal(t, "1", table.Rows[1]["Dr. Iyer"])
}

func TestReadCSV_HeaderOnly(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("Roll,Name,Email,CGPA\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least a header row and one data row")
}

func TestReadCSV_RaggedRowsTolerated(t *testing.T) {
	src := strings.NewReader(
		"Roll,Name,Email,CGPA,A\n" +
			"101,Asha,asha@example.edu,9.1\n" +
			"102,Bilal,bilal@example.edu,8.4,1,extra\n")

	table, err := ReadCSV(src)
	require.NoError(t, err)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "", table.Rows[0]["A"], "short row leaves trailing cells empty")
	assert.Equal(t, "1", table.Rows[1]["A"], "cells past the header width are dropped")
}

func TestNewDataReader_DetectsFileType(t *testing.T) {
	assert.Equal(t, "csv", NewDataReader("/tmp/roster.CSV").fileType)
	assert.Equal(t, "xlsx", NewDataReader("/tmp/roster.xlsx").fileType)
}

func TestReadTable_MissingFile(t *testing.T) {
	_, err := NewDataReader("/nonexistent/roster.csv").ReadTable()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
