package adapter

import (
	"context"
	"fmt"
	"os"

	"github.com/PuerkitoBio/goquery"

	m "covquest.dev/pkg/covquest/internal/model"
)

// Line status classes used by JaCoCo-style HTML source reports.
const (
	coveredLineClass   = "fc"
	partialLineClass   = "pc"
	uncoveredLineClass = "nc"
)

// ReportReader parses a coverage artifact into line counts.
type ReportReader interface {
	ReadReport(ctx context.Context, path m.Path) (m.CoverageReport, error)
}

var _ ReportReader = (*HTMLReportReader)(nil)

// HTMLReportReader counts line markers in HTML source reports.
type HTMLReportReader struct{}

// NewHTMLReportReader constructs an HTMLReportReader.
func NewHTMLReportReader() *HTMLReportReader {
	return &HTMLReportReader{}
}

// ReadReport opens the report at path and counts covered, partially covered
// and uncovered line elements. Branch markers (bpc, bnc, ...) are separate
// class tokens and are not counted.
func (r *HTMLReportReader) ReadReport(ctx context.Context, path m.Path) (m.CoverageReport, error) {
	if err := ctx.Err(); err != nil {
		return m.CoverageReport{}, err
	}

	// #nosec G304 - report paths are derived from the configured report root
	file, err := os.Open(string(path))
	if err != nil {
		return m.CoverageReport{}, fmt.Errorf("open report %s: %w", path, err)
	}

	defer func() { _ = file.Close() }()

	doc, err := goquery.NewDocumentFromReader(file)
	if err != nil {
		return m.CoverageReport{}, fmt.Errorf("parse report %s: %w", path, err)
	}

	return m.CoverageReport{
		Covered:   doc.Find("." + coveredLineClass).Length(),
		Partial:   doc.Find("." + partialLineClass).Length(),
		Uncovered: doc.Find("." + uncoveredLineClass).Length(),
	}, nil
}
