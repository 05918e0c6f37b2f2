package domain

import (
	"fmt"
	"path"
	"path/filepath"
	"slices"
	"strings"

	m "covquest.dev/pkg/covquest/internal/model"
)

// Report layouts.
const (
	LayoutJacoco = "jacoco"
	LayoutNested = "nested"
)

// DefaultPackage names classes that live outside any package.
const DefaultPackage = "default"

// NamingOptions configures how source paths map to report artifacts.
type NamingOptions struct {
	SourceRoots []string // segments that precede the package directories
	Extensions  []string // locatable file extensions; empty means any
	Suffix      string   // appended to the source file name
}

// DefaultNamingOptions returns the JaCoCo HTML conventions for Java and Kotlin.
func DefaultNamingOptions() NamingOptions {
	return NamingOptions{
		SourceRoots: []string{"src", "main", "java", "kotlin"},
		Extensions:  []string{".java", ".kt"},
		Suffix:      ".html",
	}
}

// ReportNaming maps a source path to the coverage artifact describing it.
type ReportNaming interface {
	Name() string
	// Locate returns the report location for source under reportRoot, or
	// false when the source cannot have a report.
	Locate(reportRoot, source m.Path) (m.ReportLocation, bool)
}

// NamingByName returns the strategy registered under layout.
func NamingByName(layout string, opts NamingOptions) (ReportNaming, error) {
	switch layout {
	case "", LayoutJacoco:
		return NewJacocoNaming(opts), nil
	case LayoutNested:
		return NewNestedNaming(opts), nil
	default:
		return nil, fmt.Errorf("unknown report layout %q (want %s or %s)", layout, LayoutJacoco, LayoutNested)
	}
}

type packageNaming struct {
	name   string
	opts   NamingOptions
	nested bool
}

// NewJacocoNaming places reports in one directory per dotted package name:
// src/main/java/a/b/Foo.java -> <root>/a.b/Foo.java.html.
func NewJacocoNaming(opts NamingOptions) ReportNaming {
	return &packageNaming{name: LayoutJacoco, opts: opts}
}

// NewNestedNaming places reports in nested package directories:
// src/main/java/a/b/Foo.java -> <root>/a/b/Foo.java.html.
func NewNestedNaming(opts NamingOptions) ReportNaming {
	return &packageNaming{name: LayoutNested, opts: opts, nested: true}
}

func (n *packageNaming) Name() string {
	return n.name
}

func (n *packageNaming) Locate(reportRoot, source m.Path) (m.ReportLocation, bool) {
	segments := source.Segments()
	if len(segments) == 0 {
		return m.ReportLocation{}, false
	}

	fileName := segments[len(segments)-1]
	if !n.locatable(fileName) {
		return m.ReportLocation{}, false
	}

	pkgSegments := n.packageSegments(segments[:len(segments)-1])

	pkg := strings.Join(pkgSegments, ".")
	if pkg == "" {
		pkg = DefaultPackage
	}

	class, _, _ := strings.Cut(fileName, ".")

	dir := []string{string(reportRoot)}
	if n.nested && len(pkgSegments) > 0 {
		dir = append(dir, pkgSegments...)
	} else {
		dir = append(dir, pkg)
	}

	report := filepath.Join(append(dir, fileName+n.opts.Suffix)...)

	return m.ReportLocation{Package: pkg, Class: class, Path: m.Path(report)}, true
}

func (n *packageNaming) locatable(fileName string) bool {
	if strings.HasPrefix(fileName, ".") {
		return false
	}

	if len(n.opts.Extensions) == 0 {
		return true
	}

	return slices.Contains(n.opts.Extensions, path.Ext(fileName))
}

// packageSegments drops everything up to and including the first run of
// source-root segments. Without a source root every directory is kept.
func (n *packageNaming) packageSegments(dirs []string) []string {
	start := slices.IndexFunc(dirs, n.isSourceRoot)
	if start < 0 {
		return dirs
	}

	end := start
	for end < len(dirs) && n.isSourceRoot(dirs[end]) {
		end++
	}

	return dirs[end:]
}

func (n *packageNaming) isSourceRoot(segment string) bool {
	return slices.Contains(n.opts.SourceRoots, segment)
}
