package roster

import "fmt"

// Severity classifies a diagnostic event
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Diagnostic records a non-fatal, per-cell problem encountered by a
// transform. RowIndex is the 0-based position in the input table, or -1
// when the event is not tied to a single row.
type Diagnostic struct {
	Severity Severity `json:"severity"`
	Column   string   `json:"column"`
	RowIndex int      `json:"row_index"`
	Message  string   `json:"message"`
}

func (d Diagnostic) String() string {
	if d.RowIndex >= 0 {
		return fmt.Sprintf("[%s] column %q row %d: %s", d.Severity, d.Column, d.RowIndex, d.Message)
	}
	return fmt.Sprintf("[%s] column %q: %s", d.Severity, d.Column, d.Message)
}

// Diagnostics is an append-only collector passed into transforms so they do
// not depend on process-wide logging.
type Diagnostics struct {
	events []Diagnostic
}

// Warnf records a warning diagnostic
func (d *Diagnostics) Warnf(column string, rowIndex int, format string, args ...interface{}) {
	d.events = append(d.events, Diagnostic{
		Severity: SeverityWarning,
		Column:   column,
		RowIndex: rowIndex,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Infof records an informational diagnostic
func (d *Diagnostics) Infof(column string, format string, args ...interface{}) {
	d.events = append(d.events, Diagnostic{
		Severity: SeverityInfo,
		Column:   column,
		RowIndex: -1,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Events returns the collected diagnostics in order of occurrence
func (d *Diagnostics) Events() []Diagnostic {
	return d.events
}

// Warnings returns only the warning-severity events
func (d *Diagnostics) Warnings() []Diagnostic {
	var out []Diagnostic
	for _, e := range d.events {
		if e.Severity == SeverityWarning {
			out = append(out, e)
		}
	}
	return out
}
