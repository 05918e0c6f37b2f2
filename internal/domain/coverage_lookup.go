package domain

import (
	"context"
	"log/slog"

	"covquest.dev/pkg/covquest/internal/adapter"
	m "covquest.dev/pkg/covquest/internal/model"
)

// CoverageLookup correlates source files with their coverage reports.
type CoverageLookup interface {
	// Lookup never fails: a source without a readable report yields a
	// candidate whose report is absent.
	Lookup(ctx context.Context, reportRoot, source m.Path) m.Candidate
}

type coverageLookup struct {
	adapter.ReportReader
	naming ReportNaming
}

// NewCoverageLookup creates a CoverageLookup using naming to find artifacts.
func NewCoverageLookup(reader adapter.ReportReader, naming ReportNaming) CoverageLookup {
	return &coverageLookup{ReportReader: reader, naming: naming}
}

func (l *coverageLookup) Lookup(ctx context.Context, reportRoot, source m.Path) m.Candidate {
	candidate := m.Candidate{Source: source, Report: m.AbsentReport()}

	location, ok := l.naming.Locate(reportRoot, source)
	if !ok {
		slog.Debug("no report location", "source", source, "layout", l.naming.Name())
		return candidate
	}

	candidate.Location = location
	candidate.Located = true

	report, err := l.ReadReport(ctx, location.Path)
	if err != nil {
		slog.Debug("coverage report unavailable", "source", source, "report", location.Path, "error", err)
		return candidate
	}

	candidate.Report = report

	return candidate
}
