package model

import (
	"fmt"
	"time"
)

// Challenge asks a user to improve the coverage of one class.
type Challenge struct {
	ID         string         `json:"id" yaml:"id"`
	Author     string         `json:"author" yaml:"author"`
	Package    string         `json:"package" yaml:"package"`
	Class      string         `json:"class" yaml:"class"`
	Source     Path           `json:"source" yaml:"source"`
	ReportPath Path           `json:"report" yaml:"report"`
	Coverage   CoverageReport `json:"coverage" yaml:"coverage"`
	CreatedAt  time.Time      `json:"createdAt" yaml:"createdAt"`
}

// QualifiedName returns the package-qualified name of the target class.
func (c Challenge) QualifiedName() string {
	return ReportLocation{Package: c.Package, Class: c.Class}.QualifiedName()
}

// String renders the challenge the way it is shown to users.
func (c Challenge) String() string {
	return fmt.Sprintf("increase coverage of `%s`", c.QualifiedName())
}

// Check is the outcome of one workspace diagnostic.
type Check struct {
	Name   string `json:"name" yaml:"name"`
	OK     bool   `json:"ok" yaml:"ok"`
	Detail string `json:"detail,omitempty" yaml:"detail,omitempty"`
}
