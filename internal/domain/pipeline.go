package domain

import (
	"fmt"

	"covquest.dev/pkg/covquest/internal/adapter"
	m "covquest.dev/pkg/covquest/internal/model"
)

// DefaultReportRoot is where JaCoCo's Maven plugin writes its HTML report.
const DefaultReportRoot = m.Path("target/site/jacoco")

// Settings configures every stage of the challenge pipeline.
type Settings struct {
	ReportRoot      m.Path // relative to the workspace unless absolute
	Limits          HistoryLimits
	ExcludeSegments []string // nil selects DefaultExcludedSegments
	Exclude         []string // regular expressions matched against changed paths
	Layout          string
	Naming          NamingOptions
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		ReportRoot: DefaultReportRoot,
		Limits:     HistoryLimits{MaxAuthored: DefaultMaxAuthored, MaxVisited: DefaultMaxVisited},
		Layout:     LayoutJacoco,
		Naming:     DefaultNamingOptions(),
	}
}

// Pipeline holds the wired stages for one set of Settings.
type Pipeline struct {
	Walker    HistoryWalker
	Lookup    CoverageLookup
	Selector  ChallengeSelector
	Inspector Inspector
	Generator Generator
	Naming    ReportNaming
}

// NewPipeline wires the pipeline stages. It fails on an unknown layout or an
// invalid exclude pattern.
func NewPipeline(
	opener adapter.RepositoryOpener,
	reader adapter.ReportReader,
	fsAdapter adapter.WorkspaceFSAdapter,
	settings Settings,
	random RandomSource,
) (*Pipeline, error) {
	filter, err := NewPathFilter(settings.ExcludeSegments, settings.Exclude)
	if err != nil {
		return nil, fmt.Errorf("path filter: %w", err)
	}

	naming, err := NamingByName(settings.Layout, settings.Naming)
	if err != nil {
		return nil, err
	}

	reportRoot := settings.ReportRoot
	if reportRoot == "" {
		reportRoot = DefaultReportRoot
	}

	walker := NewHistoryWalker(opener, NewDiffExtractor(), filter, settings.Limits)
	lookup := NewCoverageLookup(reader, naming)
	selector := NewChallengeSelector(lookup, random)

	return &Pipeline{
		Walker:    walker,
		Lookup:    lookup,
		Selector:  selector,
		Inspector: NewInspector(lookup),
		Generator: NewGenerator(walker, selector, fsAdapter, reportRoot),
		Naming:    naming,
	}, nil
}
