package model

import "strings"

// CoverageReport holds the line counts parsed from one coverage artifact.
type CoverageReport struct {
	Covered   int  `json:"covered" yaml:"covered"`
	Partial   int  `json:"partial" yaml:"partial"`
	Uncovered int  `json:"uncovered" yaml:"uncovered"`
	Absent    bool `json:"absent,omitempty" yaml:"absent,omitempty"` // no artifact, or it could not be read
}

// AbsentReport is the result for a source without a readable report.
func AbsentReport() CoverageReport {
	return CoverageReport{Absent: true}
}

// Eligible reports whether the class still has partially or not covered lines.
func (r CoverageReport) Eligible() bool {
	return r.Partial > 0 || r.Uncovered > 0
}

// Lines returns the total number of instrumented lines.
func (r CoverageReport) Lines() int {
	return r.Covered + r.Partial + r.Uncovered
}

// ReportLocation names a class and the artifact holding its coverage.
type ReportLocation struct {
	Package string `json:"package" yaml:"package"`
	Class   string `json:"class" yaml:"class"`
	Path    Path   `json:"report" yaml:"report"`
}

// QualifiedName returns the package-qualified class name.
func (l ReportLocation) QualifiedName() string {
	if l.Package == "" {
		return l.Class
	}

	return strings.Join([]string{l.Package, l.Class}, ".")
}

// Candidate is a changed source file together with its coverage data.
type Candidate struct {
	Source   Path           `json:"source" yaml:"source"`
	Location ReportLocation `json:"location" yaml:"location"`
	Located  bool           `json:"located" yaml:"located"` // a report location could be derived
	Report   CoverageReport `json:"coverage" yaml:"coverage"`
}

// Eligible reports whether the candidate can become a challenge.
func (c Candidate) Eligible() bool {
	return c.Located && c.Report.Eligible()
}
