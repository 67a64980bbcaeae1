package allocation

import (
	"fmt"
	"reflect"
	"testing"

	"facalloc/domain/core"
	"facalloc/domain/roster"
)

func studentRow(roll, name, cgpa string, prefs map[string]string) roster.Row {
	row := roster.Row{
		"Roll":  roll,
		"Name":  name,
		"Email": name + "@example.edu",
		"CGPA":  cgpa,
	}
	for k, v := range prefs {
		row[k] = v
	}
	return row
}

func TestDistribute_RoundRobinBySortedCGPA(t *testing.T) {
	// CGPAs 9.0, 7.0, 8.0 with faculties A, B should sort to 9.0, 8.0, 7.0
	// and assign A, B, A.
	table := rosterTable(
		[]string{"Roll", "Name", "Email", "CGPA", "A", "B"},
		studentRow("1", "Asha", "9.0", nil),
		studentRow("2", "Bilal", "7.0", nil),
		studentRow("3", "Chen", "8.0", nil),
	)

	records, err := Distribute(table, "CGPA", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}

	wantCGPA := []float64{9.0, 8.0, 7.0}
	wantFaculty := []string{"A", "B", "A"}
	for i, rec := range records {
		if rec.CGPA != wantCGPA[i] {
			t.Errorf("position %d: expected CGPA %.1f, got %.1f", i, wantCGPA[i], rec.CGPA)
		}
		if rec.AssignedFaculty != wantFaculty[i] {
			t.Errorf("position %d: expected faculty %s, got %s", i, wantFaculty[i], rec.AssignedFaculty)
		}
	}
}

func TestDistribute_BalancedPartition(t *testing.T) {
	for _, tc := range []struct{ n, f int }{
		{10, 3}, {12, 4}, {1, 5}, {7, 2}, {100, 7},
	} {
		headers := []string{"Roll", "Name", "Email", "CGPA"}
		for i := 0; i < tc.f; i++ {
			headers = append(headers, fmt.Sprintf("Fac%d", i))
		}
		rows := make([]roster.Row, tc.n)
		for i := range rows {
			rows[i] = studentRow(fmt.Sprintf("r%d", i), "s", fmt.Sprintf("%.2f", float64(i%10)), nil)
		}
		table := &roster.Table{Headers: headers, Rows: rows}

		records, err := Distribute(table, "CGPA", nil)
		if err != nil {
			t.Fatalf("n=%d f=%d: unexpected error: %v", tc.n, tc.f, err)
		}
		if len(records) != tc.n {
			t.Fatalf("n=%d f=%d: expected %d records, got %d", tc.n, tc.f, tc.n, len(records))
		}

		counts := map[string]int{}
		for _, rec := range records {
			counts[rec.AssignedFaculty]++
		}
		lo, hi := tc.n/tc.f, (tc.n+tc.f-1)/tc.f
		for fac, c := range counts {
			if c != lo && c != hi {
				t.Errorf("n=%d f=%d: faculty %s got %d students, want %d or %d", tc.n, tc.f, fac, c, lo, hi)
			}
		}
	}
}

func TestDistribute_DescendingOrder(t *testing.T) {
	table := rosterTable(
		[]string{"Roll", "Name", "Email", "CGPA", "A"},
		studentRow("1", "a", "6.1", nil),
		studentRow("2", "b", "9.9", nil),
		studentRow("3", "c", "8.2", nil),
		studentRow("4", "d", "8.2", nil),
		studentRow("5", "e", "5.0", nil),
	)

	records, err := Distribute(table, "CGPA", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 1; i < len(records); i++ {
		if records[i-1].CGPA < records[i].CGPA {
			t.Errorf("position %d: CGPA %.2f < %.2f breaks descending order", i, records[i-1].CGPA, records[i].CGPA)
		}
	}
}

func TestDistribute_StableTieBreak(t *testing.T) {
	// Rows 2 and 3 tie on CGPA; input order must decide, deterministically.
	table := rosterTable(
		[]string{"Roll", "Name", "Email", "CGPA", "A", "B"},
		studentRow("1", "a", "9.0", nil),
		studentRow("2", "b", "8.0", nil),
		studentRow("3", "c", "8.0", nil),
	)

	first, err := Distribute(table, "CGPA", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first[1].Roll != "2" || first[2].Roll != "3" {
		t.Errorf("tie broke input order: got rolls %s, %s", first[1].Roll, first[2].Roll)
	}

	for i := 0; i < 5; i++ {
		again, err := Distribute(table, "CGPA", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d: allocation is not deterministic", i)
		}
	}
}

func TestDistribute_NoFacultyColumns(t *testing.T) {
	table := rosterTable(
		[]string{"Roll", "Name", "Email", "CGPA"},
		studentRow("1", "a", "9.0", nil),
	)

	records, err := Distribute(table, "CGPA", nil)
	if err == nil {
		t.Fatal("expected error for zero faculty columns")
	}
	if !core.IsSchemaError(err) {
		t.Errorf("expected schema error, got %v", err)
	}
	if records != nil {
		t.Errorf("expected no output, got %d records", len(records))
	}
}

func TestDistribute_MissingReferenceColumn(t *testing.T) {
	table := rosterTable(
		[]string{"Roll", "Name", "Email", "Marks", "A"},
		studentRow("1", "a", "9.0", nil),
	)

	if _, err := Distribute(table, "CGPA", nil); !core.IsSchemaError(err) {
		t.Fatalf("expected schema error, got %v", err)
	}
}

func TestDistribute_NonNumericCGPASortsLast(t *testing.T) {
	table := rosterTable(
		[]string{"Roll", "Name", "Email", "CGPA", "A", "B"},
		studentRow("1", "a", "n/a", nil),
		studentRow("2", "b", "7.5", nil),
		studentRow("3", "c", "9.1", nil),
	)
	diags := &roster.Diagnostics{}

	records, err := Distribute(table, "CGPA", diags)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if records[2].Roll != "1" {
		t.Errorf("expected non-numeric CGPA row to sort last, got roll %s", records[2].Roll)
	}
	if records[2].CGPA != 0 {
		t.Errorf("expected unparsed CGPA to surface as 0, got %f", records[2].CGPA)
	}
	if len(diags.Warnings()) != 1 {
		t.Errorf("expected 1 warning diagnostic, got %d", len(diags.Warnings()))
	}
}
