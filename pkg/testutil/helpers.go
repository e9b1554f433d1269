// Package testutil provides common utility functions for testing.
package testutil

import (
	"testing"

	"github.com/iwvelando/finlit/internal/config"
	"github.com/iwvelando/finlit/internal/scenario"
	"go.uber.org/zap"
)

// FindReport finds a report by scenario name in the reports slice.
// Returns a pointer to the report if found, nil otherwise.
func FindReport(reports []scenario.Report, name string) *scenario.Report {
	for i := range reports {
		if reports[i].Name == name {
			return &reports[i]
		}
	}
	return nil
}

// DemoReports computes the reports of the built-in demonstration and fails
// the test on error.
func DemoReports(t testing.TB) []scenario.Report {
	t.Helper()
	reports, err := scenario.GetReports(zap.NewNop(), *config.DefaultConfiguration())
	if err != nil {
		t.Fatalf("GetReports() error = %v", err)
	}
	return reports
}
