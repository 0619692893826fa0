package docs

import (
	"context"
	"time"
)

// Health statuses. Failures degrade the report but never make the check
// itself fail.
const (
	StatusHealthy  = "healthy"
	StatusDegraded = "degraded"
)

// HealthReport describes index and catalog accessibility at check time.
type HealthReport struct {
	Status          string
	Uptime          time.Duration
	DocsAccessible  bool
	DocsCount       int
	ComponentsCount int
	Errors          []string
}

// Check independently attempts a document scan and a catalog derivation.
// Each failure is recorded and degrades the status without aborting the
// other check. Check never returns an error.
func (s *Store) Check(ctx context.Context) HealthReport {
	report := HealthReport{
		Status: StatusHealthy,
		Uptime: time.Since(s.startTime),
		Errors: []string{},
	}

	entries, err := s.Scan(ctx)
	if err != nil {
		report.Status = StatusDegraded
		report.Errors = append(report.Errors, "document scan failed: "+err.Error())
	} else {
		report.DocsAccessible = true
		report.DocsCount = len(entries)
	}

	names, err := s.ListComponents(ctx)
	if err != nil {
		report.Status = StatusDegraded
		report.Errors = append(report.Errors, "component listing failed: "+err.Error())
	} else {
		report.ComponentsCount = len(names)
	}

	return report
}
