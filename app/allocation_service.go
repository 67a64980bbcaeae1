// Package app wires the roster transforms into a single synchronous
// allocation run the UI can trigger.
package app

import (
	"context"

	"facalloc/domain/core"
	"facalloc/domain/roster"
	"facalloc/internal"
	"facalloc/internal/allocation"
	"facalloc/internal/metrics"
)

// RunResult bundles everything one allocation run produces
type RunResult struct {
	RunID       core.RunID                `json:"run_id"`
	CreatedAt   core.Timestamp            `json:"created_at"`
	Filename    string                    `json:"filename"`
	Faculties   []string                  `json:"faculties"`
	Allocation  []roster.AllocationRecord `json:"allocation"`
	Summary     *roster.PreferenceSummary `json:"summary"`
	Metrics     metrics.RunMetrics        `json:"metrics"`
	Diagnostics []roster.Diagnostic       `json:"diagnostics,omitempty"`
}

// AllocationService runs the distribution and preference tally over an
// uploaded roster. Each Run works on its own table copy; the service itself
// holds no mutable state.
type AllocationService struct {
	refCol string
	logger *internal.Logger
}

// NewAllocationService creates an allocation service sorting on refCol
func NewAllocationService(refCol string, logger *internal.Logger) *AllocationService {
	if refCol == "" {
		refCol = allocation.DefaultReferenceColumn
	}
	if logger == nil {
		logger = internal.NewDefaultLogger()
	}
	return &AllocationService{refCol: refCol, logger: logger}
}

// ReferenceColumn returns the configured sort/boundary column
func (s *AllocationService) ReferenceColumn() string {
	return s.refCol
}

// Run executes both transforms over the table and computes run metrics.
// A schema error from either transform aborts the run with no partial
// output; per-cell problems come back in Diagnostics.
func (s *AllocationService) Run(ctx context.Context, table *roster.Table, filename string) (*RunResult, error) {
	_ = ctx // runs complete in well under a second; no suspension points

	diags := &roster.Diagnostics{}

	records, err := allocation.Distribute(table, s.refCol, diags)
	if err != nil {
		s.logger.Error("allocation failed for %q: %v", filename, err)
		return nil, err
	}

	// Independent of the allocator; consumes the raw, unsorted table.
	summary, err := allocation.SummarizePreferences(table, s.refCol, diags)
	if err != nil {
		s.logger.Error("preference summary failed for %q: %v", filename, err)
		return nil, err
	}

	result := &RunResult{
		RunID:       core.RunID(core.NewID()),
		CreatedAt:   core.Now(),
		Filename:    filename,
		Faculties:   summary.Faculties,
		Allocation:  records,
		Summary:     summary,
		Metrics:     metrics.Compute(records, summary.Faculties),
		Diagnostics: diags.Events(),
	}

	if warnings := diags.Warnings(); len(warnings) > 0 {
		s.logger.Warn("run %s completed with %d cell warnings", result.RunID, len(warnings))
	}
	s.logger.Info("run %s: allocated %d students across %d faculties",
		result.RunID, len(records), len(summary.Faculties))

	return result, nil
}
